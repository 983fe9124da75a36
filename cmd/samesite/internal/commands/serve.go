package commands

import (
	"context"
	"log/slog"
	"net"

	"github.com/kamataryo/sandbox-same-site-cookies/modules/auth"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/cookie"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/credentials"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/httpserver"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/logger"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/requestid"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/session"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/site"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/view"
)

type ServeCmd struct {
	Addr string `help:"Listen address; overrides HTTP_ADDR." placeholder:":80"`
}

func (c *ServeCmd) Run(ctx context.Context, globals *Globals) error {
	cfg, err := loadConfig(globals)
	if err != nil {
		return err
	}
	if c.Addr != "" {
		cfg.HTTP.Addr = c.Addr
	}

	log := logger.NewFromConfig(cfg.Logger,
		logger.WithContextExtractors(requestid.LoggerExtractor),
		logger.WithAttr(slog.String("version", globals.Version)),
	)
	logger.SetAsDefault(log)

	sites, err := loadSites(cfg)
	if err != nil {
		log.Error("failed to load site registry", logger.Error(err))
		return err
	}

	views, err := view.Load(cfg.ViewsDir)
	if err != nil {
		log.Error("failed to load views", slog.String("dir", cfg.ViewsDir), logger.Error(err))
		return err
	}

	store := credentials.New(cfg.Users)
	sessions, err := session.NewFromConfig(store, cfg.Session)
	if err != nil {
		log.Error("invalid session configuration", logger.Error(err))
		return err
	}
	log.Info("credential store seeded",
		slog.Any("users", store.Users()),
		slog.Bool("origin_binding", sessions.OriginBinding()),
	)
	if !sessions.Unbiased() {
		log.Warn("session token alphabet does not divide 256; tokens are biased",
			slog.Int("alphabet_len", len(cfg.Session.Alphabet)),
		)
	}

	svc := auth.NewFromConfig(cfg.Auth, store, sessions, sites, views,
		auth.WithLogger(log),
		auth.WithCookieManager(cookie.NewFromConfig(cfg.Cookie)),
	)

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(announceSites(sites)),
	)

	return srv.Run(ctx, svc.Handle())
}

func announceSites(sites *site.Registry) httpserver.StartHook {
	return func(log *slog.Logger, addr net.Addr) {
		for _, s := range sites.All() {
			log.Info("http://"+s.Host+" is listening...",
				logger.Host(s.Host),
				logger.SameSite(s.Policy.String()),
				slog.String("addr", addr.String()),
			)
		}
	}
}
