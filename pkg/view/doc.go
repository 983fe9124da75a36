// Package view is the rendering collaborator: it loads HTML views from disk
// once at startup and fills "%name" placeholders with string variables.
//
// The HTTP layer only depends on the Renderer interface. Values are inserted
// verbatim, so callers escape anything that came from a request before
// passing it in. Component wraps a render call as a templ.Component.
package view
