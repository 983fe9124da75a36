package logger

import "log/slog"

// Config holds environment-driven logger settings.
type Config struct {
	Env     string     `env:"APP_ENV" envDefault:"development"`
	Level   slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	Service string     `env:"SERVICE_NAME" envDefault:"samesite"`
}

// NewFromConfig builds a logger from the environment preset for cfg.Env with
// cfg.Level applied on top. Extra options run last.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	service := cfg.Service
	if service == "" {
		service = "samesite"
	}
	base := []Option{
		WithEnvironment(cfg.Env, service),
		WithLevel(cfg.Level),
	}
	return New(append(base, opts...)...)
}
