package redis

import "errors"

var (
	ErrEmptyConnectionURL = errors.New("redis: REDIS_URL is empty")
	ErrFailedToParseURL   = errors.New("redis: invalid redis:// or rediss:// URL")
	ErrConnectionFailed   = errors.New("redis: server did not answer PING")
	ErrHealthcheckFailed  = errors.New("redis: healthcheck failed")
	// ErrNilClient is joined to ErrHealthcheckFailed when no client was opened.
	ErrNilClient = errors.New("redis: nil client")
)
