package cookie

type Options struct {
	Path     string
	MaxAge   int
	SameSite string
}

type Option func(*Options)

func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

// WithMaxAge sets the lifetime in seconds written on issuance.
func WithMaxAge(seconds int) Option {
	return func(o *Options) {
		o.MaxAge = seconds
	}
}

// WithSameSite sets the SameSite attribute value ("Strict", "Lax", "None").
// An empty value omits the attribute.
func WithSameSite(sameSite string) Option {
	return func(o *Options) {
		o.SameSite = sameSite
	}
}

// applyOptions copies base and applies opts to the copy.
func applyOptions(base Options, opts []Option) Options {
	result := base
	for _, opt := range opts {
		opt(&result)
	}
	return result
}
