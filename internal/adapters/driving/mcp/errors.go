// Package mcp provides the MCP (Model Context Protocol) server adapter
// for the storefront. It exposes the product-catalog operations as
// schema-validated tools that AI assistants can discover and invoke.
package mcp

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("mcp: catalog service is required")
