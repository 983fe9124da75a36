package site

import "errors"

var (
	// ErrSiteNotFound indicates the host is not registered
	ErrSiteNotFound = errors.New("site.not_found")

	// ErrInvalidPolicy indicates an unknown SameSite policy
	ErrInvalidPolicy = errors.New("site.invalid_policy")

	// ErrInvalidSite indicates a site entry is missing its host or duplicates another
	ErrInvalidSite = errors.New("site.invalid")

	// ErrLoadRegistry indicates the registry file could not be read or decoded
	ErrLoadRegistry = errors.New("site.load_failed")
)
