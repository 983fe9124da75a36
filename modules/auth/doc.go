// Package auth is the request dispatcher of the SameSite demo. It routes
// "/", "/login" and "/logout", checks the presented session once per request
// and answers every request with a rendered view.
//
// Each request gets its own RequestState, built by middleware from the Host
// and Cookie headers before any handler runs. Handlers read it from the
// context and produce a page: a view name, its variables, a status and the
// Set-Cookie directives scoped with the serving site's SameSite policy.
//
//	svc := auth.NewFromConfig(cfg.Auth, store, sessions, sites, views,
//		auth.WithLogger(log),
//	)
//	srv.Run(ctx, svc.Handle())
package auth
