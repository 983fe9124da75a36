package commands

import (
	"errors"

	"github.com/kamataryo/sandbox-same-site-cookies/modules/auth"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/config"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/cookie"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/httpserver"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/logger"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/session"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/site"
)

type Globals struct {
	EnvFile string
	Version string
}

// AppConfig is the full process configuration read from the environment.
type AppConfig struct {
	Logger  logger.Config
	HTTP    httpserver.Config
	Session session.Config
	Cookie  cookie.Config
	Auth    auth.Config

	ViewsDir  string            `env:"VIEWS_DIR" envDefault:"htmls"`
	SitesFile string            `env:"SITES_FILE"`
	Users     map[string]string `env:"USERS" envDefault:"admin:admin,user1:user1,user2:user2" envSeparator:"," envKeyValSeparator:":"`
}

var ErrNoUsers = errors.New("commands.no_users")

func loadConfig(globals *Globals) (AppConfig, error) {
	var cfg AppConfig
	if globals.EnvFile != "" {
		if err := config.LoadEnv(globals.EnvFile); err != nil {
			return cfg, err
		}
	}
	if err := config.Load(&cfg); err != nil {
		return cfg, err
	}
	if len(cfg.Users) == 0 {
		return cfg, ErrNoUsers
	}
	if err := cfg.Session.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadSites(cfg AppConfig) (*site.Registry, error) {
	if cfg.SitesFile == "" {
		return site.Default(), nil
	}
	return site.LoadFile(cfg.SitesFile)
}
