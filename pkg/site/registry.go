package site

import (
	"fmt"
	"strings"
)

// Site is a serving origin with its cookie policy and display name.
type Site struct {
	Host   string `yaml:"host"`
	Name   string `yaml:"name"`
	Policy Policy `yaml:"same_site"`
}

// Registry is an immutable, ordered set of sites keyed by host.
type Registry struct {
	sites  []Site
	byHost map[string]int
}

// New validates sites and builds a registry. Hosts are matched case-insensitively.
func New(sites ...Site) (*Registry, error) {
	r := &Registry{
		sites:  make([]Site, 0, len(sites)),
		byHost: make(map[string]int, len(sites)),
	}

	for i, s := range sites {
		host := normalizeHost(s.Host)
		if host == "" {
			return nil, fmt.Errorf("%w: entry %d has no host", ErrInvalidSite, i)
		}
		if !s.Policy.Valid() {
			return nil, fmt.Errorf("%w: %q for host %s", ErrInvalidPolicy, s.Policy, host)
		}
		if _, dup := r.byHost[host]; dup {
			return nil, fmt.Errorf("%w: duplicate host %s", ErrInvalidSite, host)
		}
		if s.Name == "" {
			s.Name = host
		}
		s.Host = host
		r.byHost[host] = len(r.sites)
		r.sites = append(r.sites, s)
	}

	return r, nil
}

// Default returns the three demo origins, one per SameSite policy.
func Default() *Registry {
	r, err := New(
		Site{Host: "strict.test", Name: "website A", Policy: Strict},
		Site{Host: "lax.test", Name: "website B", Policy: Lax},
		Site{Host: "none.test", Name: "website C", Policy: None},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup finds the site serving host. The host may carry a port; an entry
// registered with the port wins over one without it.
func (r *Registry) Lookup(host string) (Site, error) {
	host = normalizeHost(host)
	if i, ok := r.byHost[host]; ok {
		return r.sites[i], nil
	}
	if name, _, ok := strings.Cut(host, ":"); ok {
		if i, ok := r.byHost[name]; ok {
			return r.sites[i], nil
		}
	}
	return Site{}, fmt.Errorf("%w: %s", ErrSiteNotFound, host)
}

// All returns the sites in declaration order.
func (r *Registry) All() []Site {
	out := make([]Site, len(r.sites))
	copy(out, r.sites)
	return out
}

// Len returns the number of registered sites.
func (r *Registry) Len() int {
	return len(r.sites)
}

func normalizeHost(host string) string {
	return strings.ToLower(strings.TrimSpace(host))
}
