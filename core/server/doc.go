// Package server holds the HTTP server configuration.
//
// While the serve command handles the actual server startup, this package
// defines the configuration structure and derived settings such as the
// listen address.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the serve command to bind the Fiber listener.
package server
