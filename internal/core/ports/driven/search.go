package driven

import (
	"context"

	"github.com/tastebud-labs/storefront-mcp/internal/core/domain"
)

// SearchIndex is the remote semantic retrieval capability.
// Implementations perform a single managed-index query per call and
// return ranked hits; there is no retry or caching at this layer.
type SearchIndex interface {
	// Search runs the query against the named index and returns ranked
	// hits. The response may be nil or carry no results; callers must
	// treat both the same way. Errors cover network failures,
	// service-side errors and malformed responses alike.
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error)
}
