// Package httpserver runs an http.Handler with sane timeouts, graceful
// shutdown on context cancellation or SIGINT/SIGTERM, and lifecycle logging.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// LivenessHandler and ReadinessHandler implement the probe endpoints.
// Start failures wrap ErrStart and shutdown failures wrap ErrShutdown.
package httpserver
