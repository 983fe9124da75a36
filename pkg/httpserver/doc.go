// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts and lifecycle hooks.
//
// Run binds the listener first, so address errors surface before any start
// hook runs and hooks can report the real bound address. It then serves until
// the context is cancelled, SIGINT/SIGTERM arrives or Shutdown is called.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP,
//		httpserver.WithLogger(log),
//		httpserver.WithStartHook(func(log *slog.Logger, addr net.Addr) {
//			log.Info("ready", slog.String("addr", addr.String()))
//		}),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Listen and serve failures are joined with ErrStart and shutdown failures with
// ErrShutdown; use errors.Is to tell them apart.
package httpserver
