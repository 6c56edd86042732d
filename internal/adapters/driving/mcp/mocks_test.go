package mcp

import (
	"context"
)

// mockCatalogService is a mock implementation of driving.CatalogService.
// It records the arguments of the last call and returns canned text.
type mockCatalogService struct {
	text string

	lastQuery       string
	lastMaxResults  int
	lastProductName string
	lastRestriction string
	lastMealType    string
	lastOccasion    string
	lastPreferences string
}

func (m *mockCatalogService) SearchProducts(_ context.Context, query string, maxResults int) string {
	m.lastQuery = query
	m.lastMaxResults = maxResults
	return m.text
}

func (m *mockCatalogService) ProductDetails(_ context.Context, productName string) string {
	m.lastProductName = productName
	return m.text
}

func (m *mockCatalogService) DietaryOptions(_ context.Context, restriction, mealType string) string {
	m.lastRestriction = restriction
	m.lastMealType = mealType
	return m.text
}

func (m *mockCatalogService) Recommendations(_ context.Context, occasion, preferences string) string {
	m.lastOccasion = occasion
	m.lastPreferences = preferences
	return m.text
}
