// Package cart models the shopping cart and its price totals, and persists
// it per visitor.
//
// Cart operations are pure; Store wraps them with load, mutate and save
// against the visitor's kv.Bucket:
//
//	c, err := store.Add(ctx, bucket, product)
//	totals := c.Totals(checkout.TaxRate, shipping, promo)
package cart
