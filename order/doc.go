// Package order holds the order record created at checkout, the visitor's
// last order, and everything the confirmation page derives from it:
// delivery estimates, the text receipt and the confirmation email.
//
// Resolve never fails on an unknown id. It returns the sample order and
// logs the mismatch, so a stale confirmation link still renders.
package order
