package cookie

// Config holds cookie manager configuration
type Config struct {
	Path   string `env:"COOKIE_PATH" envDefault:"/"`
	MaxAge int    `env:"COOKIE_MAX_AGE" envDefault:"86400"`
}

// DefaultConfig returns default cookie configuration
func DefaultConfig() Config {
	return Config{
		Path:   DefaultPath,
		MaxAge: DefaultMaxAge,
	}
}

// NewFromConfig creates a new Manager from the provided Config.
// Only non-zero values from the config are applied.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := make([]Option, 0, 2)

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.MaxAge > 0 {
		configOpts = append(configOpts, WithMaxAge(cfg.MaxAge))
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
