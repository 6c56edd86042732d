package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tastebud-labs/storefront-mcp/internal/core/domain"
	"github.com/tastebud-labs/storefront-mcp/internal/core/ports/driven"
	"github.com/tastebud-labs/storefront-mcp/internal/core/ports/driving"
	"github.com/tastebud-labs/storefront-mcp/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// Result limits per operation. Only the general search accepts a
// caller-supplied limit; the purpose-scoped tools keep theirs fixed.
const (
	DefaultSearchLimit = 10
	detailLimit        = 3
	dietaryLimit       = 10
	recommendLimit     = 5
)

// CatalogService answers product-catalog questions by querying the
// remote retrieval index and rendering the hits as text. It holds no
// mutable state, so a single instance is safe to share across
// concurrent invocations.
type CatalogService struct {
	search driven.SearchIndex
	index  string
}

// NewCatalogService creates a catalog service that searches the given
// index via the provided retrieval capability.
func NewCatalogService(search driven.SearchIndex, index string) *CatalogService {
	return &CatalogService{
		search: search,
		index:  index,
	}
}

// resultFormat is the per-operation rendering configuration. Each of
// the four operations is the shared run path plus one of these records.
type resultFormat struct {
	// errPrefix is the text before ": <message>" on the failure path,
	// e.g. "Error searching products".
	errPrefix string

	// empty is the complete response text for the no-results case.
	empty string

	// render turns a non-empty ranked hit sequence into response text.
	render func(items []domain.ResultItem) string
}

// run executes one search and folds every outcome into response text.
// Retrieval errors are terminal and never retried; they surface as a
// message inside the response rather than as a failure of the
// operation itself.
func (s *CatalogService) run(ctx context.Context, query string, limit int, f resultFormat) string {
	logger.Debug("query %q against index %q (limit %d)", query, s.index, limit)

	resp, err := s.search.Search(ctx, domain.SearchRequest{
		Index:      s.index,
		Query:      query,
		MaxResults: limit,
	})
	if err != nil {
		logger.Warn("retrieval failed: %v", err)
		return fmt.Sprintf("%s: %s", f.errPrefix, err.Error())
	}
	if resp.Empty() {
		logger.Debug("no results for %q", query)
		return f.empty
	}

	logger.Debug("%d result(s) for %q", len(resp.Results), query)
	return f.render(resp.Results)
}

// SearchProducts runs a general catalog search with the caller's raw
// query. maxResults <= 0 selects the default limit of 10.
func (s *CatalogService) SearchProducts(ctx context.Context, query string, maxResults int) string {
	limit := maxResults
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	return s.run(ctx, query, limit, resultFormat{
		errPrefix: "Error searching products",
		empty:     fmt.Sprintf("No products found for query: %q", query),
		render: func(items []domain.ResultItem) string {
			var b strings.Builder
			fmt.Fprintf(&b, "Found %d products:", len(items))
			for i, item := range items {
				fmt.Fprintf(&b, "\n\n%d. %s\n   URL: %s\n   %s",
					i+1, item.DisplayTitle(), item.DisplayURL(), item.DisplaySnippet())
			}
			return b.String()
		},
	})
}

// ProductDetails renders a detail view of the best match for the given
// product name. The index is asked for a few candidates but only the
// top-ranked one is shown.
func (s *CatalogService) ProductDetails(ctx context.Context, productName string) string {
	return s.run(ctx, productName, detailLimit, resultFormat{
		errPrefix: "Error getting product details",
		empty:     fmt.Sprintf("Product not found: %q", productName),
		render: func(items []domain.ResultItem) string {
			top := items[0]
			return fmt.Sprintf("Product: %s\nURL: %s\n\nDescription:\n%s",
				top.DisplayTitle(), top.DisplayURL(), top.Description())
		},
	})
}

// DietaryOptions lists products matching a dietary restriction,
// optionally narrowed to a meal type.
func (s *CatalogService) DietaryOptions(ctx context.Context, restriction, mealType string) string {
	query := restriction
	if mealType != "" {
		query += " " + mealType
	}

	empty := fmt.Sprintf("No %s products found", restriction)
	if mealType != "" {
		empty += " for " + mealType
	}

	return s.run(ctx, query, dietaryLimit, resultFormat{
		errPrefix: "Error finding dietary options",
		empty:     empty,
		render: func(items []domain.ResultItem) string {
			var b strings.Builder
			if mealType != "" {
				fmt.Fprintf(&b, "Found %d %s products for %s:", len(items), restriction, mealType)
			} else {
				fmt.Fprintf(&b, "Found %d %s products:", len(items), restriction)
			}
			for i, item := range items {
				fmt.Fprintf(&b, "\n%d. %s\n   %s", i+1, item.DisplayTitle(), item.DisplayURL())
			}
			return b.String()
		},
	})
}

// Recommendations suggests products for an occasion. The query is
// anchored with "gift meal" so the index leans towards giftable and
// meal-sized products, then optionally biased by free-form preferences.
func (s *CatalogService) Recommendations(ctx context.Context, occasion, preferences string) string {
	query := occasion + " gift meal"
	if preferences != "" {
		query += " " + preferences
	}

	return s.run(ctx, query, recommendLimit, resultFormat{
		errPrefix: "Error getting recommendations",
		empty:     fmt.Sprintf("No recommendations found for %s", occasion),
		render: func(items []domain.ResultItem) string {
			var b strings.Builder
			if preferences != "" {
				fmt.Fprintf(&b, "Top recommendations for %s (%s):", occasion, preferences)
			} else {
				fmt.Fprintf(&b, "Top recommendations for %s:", occasion)
			}
			for i, item := range items {
				fmt.Fprintf(&b, "\n\n%d. %s\n   %s\n   %s",
					i+1, item.DisplayTitle(), item.DisplayURL(), item.DisplaySnippet())
			}
			return b.String()
		},
	})
}
