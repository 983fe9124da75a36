package view

import (
	"context"
	"io"
	"slices"
	"strings"

	"github.com/a-h/templ"
)

// View names loaded at startup.
const (
	Home             = "home"
	HomeUser         = "home-user"
	Login            = "login"
	LoginSuccess     = "login-success"
	LoginFailed      = "login-failed"
	Logout           = "logout"
	BadRequest       = "400"
	NotFound         = "404"
	MethodNotAllowed = "405"
	InternalError    = "500"
)

// Names lists every view the server needs before it can accept connections.
func Names() []string {
	return []string{
		Home, HomeUser, Login, LoginSuccess, LoginFailed, Logout,
		BadRequest, NotFound, MethodNotAllowed, InternalError,
	}
}

// Renderer turns a named view and its variables into a response body.
type Renderer interface {
	Render(name string, vars map[string]string) ([]byte, error)
}

// Func adapts a plain function to Renderer.
type Func func(name string, vars map[string]string) ([]byte, error)

func (f Func) Render(name string, vars map[string]string) ([]byte, error) {
	return f(name, vars)
}

// Component exposes a rendered view as a templ component.
func Component(r Renderer, name string, vars map[string]string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		body, err := r.Render(name, vars)
		if err != nil {
			return err
		}
		_, err = w.Write(body)
		return err
	})
}

// Format replaces every "%key" in text with vars[key], verbatim.
// Longer keys are replaced first so "%user" cannot clobber "%username".
func Format(text string, vars map[string]string) string {
	if len(vars) == 0 {
		return text
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		if k != "" {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, "%"+k, vars[k])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
