// Package checkout runs the checkout session of a visitor: delivery choice,
// promo codes, form validation and payment.
//
// A session moves Idle → FormEntry → Validating → Processing → Succeeded.
// Validation failures go to Rejected and back to FormEntry on the next
// edit. When a payment gateway is configured a refused intent goes to
// Declined; without one the payment is simulated with a cancellable delay
// and always succeeds.
//
// Basic usage:
//
//	svc := checkout.NewService(carts, orders, log, checkout.WithNotifier(notifier))
//	summary, err := svc.Begin(ctx, bucket)
//	o, err := svc.Submit(ctx, bucket, form, locale.French)
//	if validator.IsValidationError(err) {
//		// re-render the form with err's field messages
//	}
package checkout
