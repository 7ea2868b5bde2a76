// Package logger builds *slog.Logger values with functional options and
// provides attribute helpers so log keys stay consistent across packages.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs ContextExtractor callbacks on
// every record (for example to add the request id):
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "registro"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "submission rejected",
//	    logger.Component("register"),
//	    logger.FieldErrors(verrs.Map()),
//	)
//
// Error, Errors, RequestID and FieldErrors return an empty Attr for empty
// input, which slog drops, so callers do not need nil checks.
package logger
