// Package site is the static registry of serving origins. Each origin has a
// display name and the SameSite policy its session cookies are issued with.
//
// Lookups are explicit: an unregistered host yields ErrSiteNotFound and never
// falls back to another entry.
package site
