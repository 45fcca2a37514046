// Package utils provides common utility functions for the sentinel
// application. It holds small string helpers shared by the renderers and
// the CLI that don't fit into domain-specific packages.
package utils
