package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchProductsInput is the input schema for the search_products tool.
type SearchProductsInput struct {
	Query      string `json:"query" jsonschema:"the search query to find products"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// ProductDetailsInput is the input schema for the get_product_details tool.
type ProductDetailsInput struct {
	ProductName string `json:"product_name" jsonschema:"the product name or search term to look up"`
}

// DietaryOptionsInput is the input schema for the find_dietary_options tool.
type DietaryOptionsInput struct {
	DietaryRestriction string `json:"dietary_restriction" jsonschema:"the dietary restriction, e.g. vegan or gluten-free"`
	MealType           string `json:"meal_type,omitempty" jsonschema:"optional meal type to narrow results, e.g. breakfast"`
}

// RecommendationsInput is the input schema for the get_recommendations tool.
type RecommendationsInput struct {
	Occasion    string `json:"occasion" jsonschema:"the occasion to recommend products for, e.g. birthday"`
	Preferences string `json:"preferences,omitempty" jsonschema:"optional free-form taste preferences"`
}

// registerTools registers the four catalog tools with a protocol
// session. Input validation happens in the SDK's schema layer, so the
// handlers only ever see well-typed arguments.
func (s *Server) registerTools(session *mcp.Server) {
	mcp.AddTool(session, &mcp.Tool{
		Name:        "search_products",
		Description: "Search the product catalog",
	}, s.handleSearchProducts)

	mcp.AddTool(session, &mcp.Tool{
		Name:        "get_product_details",
		Description: "Get detailed information about a single product",
	}, s.handleProductDetails)

	mcp.AddTool(session, &mcp.Tool{
		Name:        "find_dietary_options",
		Description: "Find products matching a dietary restriction",
	}, s.handleDietaryOptions)

	mcp.AddTool(session, &mcp.Tool{
		Name:        "get_recommendations",
		Description: "Get product recommendations for an occasion",
	}, s.handleRecommendations)
}

// textResult wraps response text in the single-block envelope every
// tool invocation produces. Handlers never return an error: retrieval
// failures arrive here already folded into the text.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func (s *Server) handleSearchProducts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchProductsInput,
) (*mcp.CallToolResult, any, error) {
	return textResult(s.ports.Catalog.SearchProducts(ctx, input.Query, input.MaxResults)), nil, nil
}

func (s *Server) handleProductDetails(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ProductDetailsInput,
) (*mcp.CallToolResult, any, error) {
	return textResult(s.ports.Catalog.ProductDetails(ctx, input.ProductName)), nil, nil
}

func (s *Server) handleDietaryOptions(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DietaryOptionsInput,
) (*mcp.CallToolResult, any, error) {
	return textResult(s.ports.Catalog.DietaryOptions(ctx, input.DietaryRestriction, input.MealType)), nil, nil
}

func (s *Server) handleRecommendations(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RecommendationsInput,
) (*mcp.CallToolResult, any, error) {
	return textResult(s.ports.Catalog.Recommendations(ctx, input.Occasion, input.Preferences)), nil, nil
}
