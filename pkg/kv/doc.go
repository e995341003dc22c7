// Package kv provides the key-value storage that holds per-visitor state
// between requests.
//
// Two backends implement Store: Memory (single process, LRU + TTL) and
// Redis. A Bucket scopes keys to one owner and the generic Load and Save
// helpers move JSON values in and out of it:
//
//	store := kv.NewMemory()
//	bucket, _ := kv.NewBucket(store, visitorID, 30*24*time.Hour)
//
//	if err := kv.Save(ctx, bucket, "language", "fr"); err != nil {
//	    return err
//	}
//
//	lang, err := kv.LoadOr(ctx, bucket, "language", "en")
//
// Load reports undecodable data with ErrCorrupt so callers can fall back to
// an empty value instead of failing the request.
package kv
