// Package catalog holds the shop's products, loaded once at startup from
// the embedded products.yaml, and answers category, search and price
// queries over them.
package catalog
