// Package domain defines the core entities for the storefront MCP server.
//
// This package is part of the hexagonal architecture's innermost layer.
// It holds the transient shapes exchanged with the remote retrieval
// index; nothing here is persisted:
//
//   - SearchRequest: A query against a named index
//   - ResultItem: A single ranked hit, every field optional
//   - SearchResponse: The ordered hit sequence for one request
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
