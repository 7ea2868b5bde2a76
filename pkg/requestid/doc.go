// Package requestid attaches a correlation id to every HTTP request.
//
// The middleware reuses a well-formed X-Request-ID header or generates a
// UUIDv7 with github.com/google/uuid, stores it in the request context and
// echoes it back. LoggerExtractor plugs the id into pkg/logger:
//
//	r.Use(requestid.Middleware)
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
