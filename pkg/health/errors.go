package health

import "errors"

var (
	// ErrCheckFailed wraps the error returned by a failing dependency check.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout is reported when a check outlives the readiness deadline.
	ErrCheckTimeout = errors.New("health: check timeout")
)
