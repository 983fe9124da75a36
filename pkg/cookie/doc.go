// Package cookie parses Cookie request headers and serializes Set-Cookie
// directives with an explicit SameSite attribute.
//
// The codec is deliberately literal. Serialize always emits attributes in the
// order Name=Value; Max-Age; Path; SameSite, and a Max-Age of zero is written
// as "Max-Age=0" rather than dropped. Parse never fails: malformed pairs are
// kept with an empty value and parsing continues.
//
// # Usage
//
//	man := cookie.New(cookie.WithMaxAge(86400))
//
//	d := man.Issue("Session-Id", token, cookie.WithSameSite("Strict"))
//	w.Header().Add("Set-Cookie", d.String())
//	// Set-Cookie: Session-Id=...; Max-Age=86400; Path=/; SameSite=Strict
//
//	w.Header().Add("Set-Cookie", man.Expire("Session-Id").String())
//	// Set-Cookie: Session-Id=; Max-Age=0; Path=/
//
//	token, err := man.Get(r, "Session-Id") // cookie.ErrCookieNotFound when absent
package cookie
