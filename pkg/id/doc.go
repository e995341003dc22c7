// Package id generates request and order identifiers.
package id
