package auth

import (
	"context"
	"strings"

	"github.com/a-h/templ"
)

// renderFragment renders an in-memory component. The fragments only fail if
// the writer does, which a strings.Builder never does.
func renderFragment(c templ.Component) string {
	var b strings.Builder
	_ = c.Render(context.Background(), &b)
	return b.String()
}
