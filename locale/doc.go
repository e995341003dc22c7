// Package locale defines the storefront UI strings in French and English.
//
// Keys are a typed enum. Each language is a Table, an array sized by the
// number of keys, so adding a key without translating it is caught by the
// tests instead of surfacing as raw key names in the UI.
package locale
