// Package file provides file-based configuration for the storefront
// MCP server. Configuration lives in a single TOML document; secrets
// can be supplied through the environment instead of on disk.
package file
