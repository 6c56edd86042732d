package driving

import "context"

// CatalogService exposes the product-catalog search operations.
//
// Every method returns the complete, human-readable response text.
// Retrieval failures and empty result sets are folded into that text;
// the methods never fail, so callers can hand the string straight to
// the transport layer as a single content block.
type CatalogService interface {
	// SearchProducts runs a general catalog search. maxResults <= 0
	// selects the default limit.
	SearchProducts(ctx context.Context, query string, maxResults int) string

	// ProductDetails looks up a single product by name or search term
	// and renders a detail view of the best match.
	ProductDetails(ctx context.Context, productName string) string

	// DietaryOptions lists products matching a dietary restriction,
	// optionally narrowed to a meal type. mealType may be empty.
	DietaryOptions(ctx context.Context, restriction, mealType string) string

	// Recommendations suggests products for an occasion, optionally
	// biased by free-form preferences. preferences may be empty.
	Recommendations(ctx context.Context, occasion, preferences string) string
}
