// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers so every component uses the same keys.
//
// APP_ENV selects a preset (text at debug in development, JSON at info in
// staging and production) and LOG_LEVEL overrides its level. Registered
// ContextExtractor callbacks run on every record, which is how the request id
// reaches the access log and the login events:
//
//	log := logger.NewFromConfig(cfg.Logger,
//	    logger.WithContextExtractors(requestid.LoggerExtractor),
//	)
//	log.InfoContext(ctx, "login succeeded",
//	    logger.Username(name),
//	    logger.Host(host),
//	)
//
// Error and Username return an empty Attr for zero values, so they can be
// passed unconditionally.
package logger
