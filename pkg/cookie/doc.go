// Package cookie reads and writes HTTP cookies with shared attributes and
// optional HMAC signatures. The storefront keeps only the visitor id in a
// cookie; everything else lives in the visitor store.
package cookie
