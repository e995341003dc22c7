// Package redis opens go-redis clients for the visitor store.
//
//	client, err := redis.Open(ctx, cfg.RedisURL)
//	if err != nil {
//	    return err
//	}
//	store := kv.NewRedis(client)
package redis
