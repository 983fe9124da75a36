package auth

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/kamataryo/sandbox-same-site-cookies/handler"
)

// LoginForm is the POST /login payload.
type LoginForm struct {
	Username string
	Password string
}

// ParseLoginForm splits body on '&' and each pair on its first '='.
// Values are taken verbatim: no percent-decoding and no '+' handling.
// Unknown keys are ignored and later duplicates win.
func ParseLoginForm(body string) LoginForm {
	var f LoginForm
	for pair := range strings.SplitSeq(body, "&") {
		name, value, _ := strings.Cut(pair, "=")
		switch name {
		case "username":
			f.Username = value
		case "password":
			f.Password = value
		}
	}
	return f
}

// loginFormBinder reads the whole body, bounded by maxBytes, before the
// handler runs. It only applies to POST requests.
func loginFormBinder(maxBytes int64) handler.Bind {
	return func(r *http.Request, v any) error {
		form, ok := v.(*LoginForm)
		if !ok || r.Method != http.MethodPost {
			return handler.ErrBinderNotApplicable
		}
		if r.Body == nil {
			return nil
		}

		body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return errors.Join(handler.ErrEntityTooLarge, err)
			}
			return errors.Join(handler.ErrBadRequest, err)
		}
		*form = ParseLoginForm(string(body))
		return nil
	}
}
