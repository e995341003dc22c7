// Package logger builds the structured slog logger used across the
// storefront: JSON (or text) on stdout, request scoped attributes pulled
// from the context, and optional Sentry reporting.
//
//	log, flush := logger.New(cfg.Log,
//	    middlewares.RequestIDExtractor(),
//	    middlewares.VisitorIDExtractor(),
//	)
//	defer flush(2 * time.Second)
package logger
