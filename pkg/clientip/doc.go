// Package clientip resolves the address of the HTTP client for access logs.
//
// Proxy headers are spoofable, so they are ignored unless the server is known
// to sit behind a reverse proxy that overwrites them.
package clientip
