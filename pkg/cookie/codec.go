package cookie

import (
	"strconv"
	"strings"
)

// Directive is a single outgoing Set-Cookie value.
type Directive struct {
	Name     string
	Value    string
	MaxAge   int
	Path     string
	SameSite string
}

// String serializes the directive in Set-Cookie form.
func (d Directive) String() string {
	return Serialize(d.Name, d.Value, d.MaxAge, d.Path, d.SameSite)
}

// Serialize produces "Name=Value; Max-Age=S; Path=P; SameSite=X".
// The SameSite attribute is left out when sameSite is empty so the browser
// default applies. Max-Age=0 with an empty value deletes the cookie.
func Serialize(name, value string, maxAge int, path, sameSite string) string {
	var b strings.Builder
	b.Grow(len(name) + len(value) + len(path) + len(sameSite) + 40)

	b.WriteString(name)
	b.WriteByte('=')
	b.WriteString(value)
	b.WriteString("; Max-Age=")
	b.WriteString(strconv.Itoa(maxAge))
	b.WriteString("; Path=")
	b.WriteString(path)
	if sameSite != "" {
		b.WriteString("; SameSite=")
		b.WriteString(sameSite)
	}
	return b.String()
}

// Parse splits a Cookie request header into name/value pairs.
// Pairs are separated by ';' and split on the first '='. A pair without '='
// yields its name with an empty value. Empty names are skipped and later
// duplicates replace earlier ones. An empty header yields an empty map.
func Parse(header string) map[string]string {
	cookies := make(map[string]string)
	if header == "" {
		return cookies
	}

	for part := range strings.SplitSeq(header, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, _ := strings.Cut(part, "=")
		if name == "" {
			continue
		}
		cookies[name] = value
	}
	return cookies
}
