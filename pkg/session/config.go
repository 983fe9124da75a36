package session

import "fmt"

// Config holds session configuration
type Config struct {
	// TokenLength is the number of characters in an issued token
	TokenLength int `env:"SESSION_TOKEN_LENGTH" envDefault:"16"`

	// Alphabet is the set of characters tokens are drawn from
	Alphabet string `env:"SESSION_TOKEN_ALPHABET" envDefault:"abcdef0123456789"`

	// BindOrigin restricts a session to the host that issued it
	BindOrigin bool `env:"SESSION_BIND_ORIGIN" envDefault:"false"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		TokenLength: DefaultTokenLength,
		Alphabet:    DefaultAlphabet,
		BindOrigin:  false,
	}
}

// Validate reports settings that cannot produce cookie-safe tokens.
// A zero TokenLength and an empty Alphabet mean the package defaults.
func (c Config) Validate() error {
	if c.TokenLength < 0 {
		return fmt.Errorf("%w: token length must be >= 0, got %d", ErrInvalidConfig, c.TokenLength)
	}
	if c.Alphabet != "" {
		if err := validateAlphabet(c.Alphabet); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// NewFromConfig creates a new Manager from the provided Config.
// Zero values fall back to package defaults.
func NewFromConfig(store Store, cfg Config, opts ...Option) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	configOpts := make([]Option, 0, 3)

	if cfg.TokenLength > 0 {
		configOpts = append(configOpts, WithTokenLength(cfg.TokenLength))
	}
	if cfg.Alphabet != "" {
		configOpts = append(configOpts, WithAlphabet(cfg.Alphabet))
	}
	configOpts = append(configOpts, WithOriginBinding(cfg.BindOrigin))

	configOpts = append(configOpts, opts...)

	return New(store, configOpts...), nil
}
