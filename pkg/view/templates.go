package view

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrTemplateLoad indicates a view file could not be read at startup
	ErrTemplateLoad = errors.New("view.template_load")

	// ErrUnknownView indicates a render call for a view that was never loaded
	ErrUnknownView = errors.New("view.unknown_view")
)

// Templates holds view sources read from disk.
type Templates struct {
	views map[string]string
}

// Load reads <dir>/<name>.html for every name. Any failure aborts the load so
// a server never starts with a partial view set.
func Load(dir string, names ...string) (*Templates, error) {
	if len(names) == 0 {
		names = Names()
	}

	t := &Templates{views: make(map[string]string, len(names))}
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name+".html"))
		if err != nil {
			return nil, errors.Join(ErrTemplateLoad, fmt.Errorf("view %q: %w", name, err))
		}
		t.views[name] = string(data)
	}
	return t, nil
}

// FromMap builds templates from in-memory sources.
func FromMap(views map[string]string) *Templates {
	t := &Templates{views: make(map[string]string, len(views))}
	for k, v := range views {
		t.views[k] = v
	}
	return t
}

// Render substitutes vars into the named view.
func (t *Templates) Render(name string, vars map[string]string) ([]byte, error) {
	src, ok := t.views[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownView, name)
	}
	return []byte(Format(src, vars)), nil
}

// Has reports whether name was loaded.
func (t *Templates) Has(name string) bool {
	_, ok := t.views[name]
	return ok
}
