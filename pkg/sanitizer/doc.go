// Package sanitizer normalizes user input before validation.
// Markup is stripped with bluemonday's strict policy.
package sanitizer
