// Package contact handles the two ways a visitor reaches the shop outside
// of an order: the contact form, forwarded by email to the shop inbox, and
// the newsletter sign-up offered on the confirmation page.
//
// A subscription is stored in the visitor bucket, so signing up twice with
// the same address sends a single welcome email.
package contact
