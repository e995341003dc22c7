// Package health serves liveness and readiness endpoints.
//
// Liveness only proves the process is up. Readiness runs dependency checks
// (the visitor store, Redis) concurrently under a shared deadline:
//
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "redis": redis.Healthcheck(client),
//	}, health.WithLogger(log)))
package health
