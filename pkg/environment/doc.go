// Package environment propagates the deployment environment (development,
// staging, production) through context.Context, HTTP requests and logs.
//
//	env := environment.Parse(cfg.Env) // "prod" -> Production
//	r.Use(environment.Middleware(env))
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//
// Missing values have the zero value "".
package environment
