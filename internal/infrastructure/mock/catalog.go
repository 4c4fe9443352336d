// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/storefrontkit/catalog-query-service/internal/domain/model"
)

// MockCatalog is an in-memory implementation of both catalog ports:
// it supplies filter definitions with live counts and executes filtered
// product queries. This demonstrates how the clean architecture allows
// easy swapping of implementations.
type MockCatalog struct {
	products         []model.Product
	definitions      []model.FilterDefinition
	definitionsError error
	queryError       error
	isReadyError     error
}

// NewMockCatalog creates a new mock catalog with some sample data
func NewMockCatalog() *MockCatalog {
	return &MockCatalog{
		definitions: []model.FilterDefinition{
			{
				Attribute:   "Color",
				DisplayType: "swatch",
				Options: []model.FilterOption{
					{Label: "Red", Value: "red"},
					{Label: "Blue", Value: "blue"},
					{Label: "Green", Value: "green"},
				},
			},
			{
				Attribute:   "Size",
				DisplayType: "list",
				Options: []model.FilterOption{
					{Label: "S", Value: "s"},
					{Label: "M", Value: "m"},
					{Label: "L", Value: "l"},
				},
			},
			{
				Attribute:   "Brand",
				DisplayType: "list",
				Options: []model.FilterOption{
					{Label: "Acme", Value: "acme"},
					{Label: "Globex", Value: "globex"},
				},
			},
		},
		products: []model.Product{
			{
				ID:   "sku-1001",
				Name: "Crewneck Tee",
				Data: map[string]any{"color": "red", "size": "m", "brand": "acme", "price": 19.90},
			},
			{
				ID:   "sku-1002",
				Name: "Crewneck Tee",
				Data: map[string]any{"color": "blue", "size": "m", "brand": "acme", "price": 19.90},
			},
			{
				ID:   "sku-1003",
				Name: "Zip Hoodie",
				Data: map[string]any{"color": "red", "size": "l", "brand": "globex", "price": 49.00},
			},
			{
				ID:   "sku-1004",
				Name: "Running Shorts",
				Data: map[string]any{"color": "green", "size": "s", "brand": "globex", "price": 29.50},
			},
			{
				ID:   "sku-1005",
				Name: "Baseball Cap",
				Data: map[string]any{"color": "blue", "size": "m", "brand": "acme", "price": 14.00},
			},
		},
	}
}

// FilterDefinitions implements the FilterDefinitionSource interface.
// Option counts are recomputed from the current product set on every call,
// so repeated calls within one request observe live catalog counts.
func (m *MockCatalog) FilterDefinitions(ctx context.Context) ([]model.FilterDefinition, error) {
	if m.definitionsError != nil {
		return nil, m.definitionsError
	}

	definitions := make([]model.FilterDefinition, len(m.definitions))
	for i, definition := range m.definitions {
		definitions[i] = model.FilterDefinition{
			Attribute:   definition.Attribute,
			DisplayType: definition.DisplayType,
			Options:     make([]model.FilterOption, len(definition.Options)),
		}
		field := attributeField(definition.Attribute)
		for j, option := range definition.Options {
			count := 0
			for _, product := range m.products {
				if value, ok := product.Data[field].(string); ok && value == option.Value {
					count++
				}
			}
			definitions[i].Options[j] = model.FilterOption{
				Label: option.Label,
				Value: option.Value,
				Count: count,
			}
		}
	}

	slog.DebugContext(ctx, "mock filter definitions served", "facets", len(definitions))
	return definitions, nil
}

// QueryProducts implements the CatalogSearcher interface with mock data
func (m *MockCatalog) QueryProducts(ctx context.Context, query model.CatalogQuery) (*model.CatalogResult, error) {
	slog.DebugContext(ctx, "executing mock catalog query", "query", query)

	if m.queryError != nil {
		return nil, m.queryError
	}

	// AND across params, OR within a param's values.
	var matched []model.Product
	for _, product := range m.products {
		if m.matches(product, query.Filters) {
			matched = append(matched, product)
		}
	}

	m.sortProducts(matched, query.SortBy, query.SortOrder)

	total := len(matched)
	start := (query.Page - 1) * query.PageSize
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := start + query.PageSize
	if end > total {
		end = total
	}

	result := &model.CatalogResult{
		Products:   matched[start:end],
		TotalCount: total,
	}

	slog.DebugContext(ctx, "mock catalog query completed",
		"results_count", len(result.Products),
		"total_count", result.TotalCount,
	)
	return result, nil
}

// IsReady implements the CatalogSearcher interface (always ready for mock)
func (m *MockCatalog) IsReady(ctx context.Context) error {
	if m.isReadyError != nil {
		return m.isReadyError
	}
	return nil
}

func (m *MockCatalog) matches(product model.Product, params []model.FilterParam) bool {
	for _, param := range params {
		value, ok := product.Data[attributeField(param.Attribute)].(string)
		if !ok {
			return false
		}
		anyValue := false
		for _, required := range param.Values {
			if value == required {
				anyValue = true
				break
			}
		}
		if !anyValue {
			return false
		}
	}
	return true
}

// sortProducts orders the result set; only name sorting is supported by
// the mock, which is enough for the query layer's contract.
func (m *MockCatalog) sortProducts(products []model.Product, sortBy, sortOrder string) {
	if sortBy != "" && sortBy != "name" {
		return
	}
	sort.SliceStable(products, func(i, j int) bool {
		if sortOrder == "desc" {
			return products[i].Name > products[j].Name
		}
		return products[i].Name < products[j].Name
	})
}

// attributeField maps a facet attribute label to the product data field
// carrying its values.
func attributeField(attribute string) string {
	return strings.ToLower(attribute)
}

// AddProduct adds a product to the mock data (useful for testing)
func (m *MockCatalog) AddProduct(product model.Product) {
	m.products = append(m.products, product)
}

// ClearProducts clears all products (useful for testing)
func (m *MockCatalog) ClearProducts() {
	m.products = nil
}

// ProductCount returns the total number of products
func (m *MockCatalog) ProductCount() int {
	return len(m.products)
}

// SetDefinitions replaces the seeded filter definitions
func (m *MockCatalog) SetDefinitions(definitions []model.FilterDefinition) {
	m.definitions = definitions
}

// Test helper methods for setting up mock failures

// SetDefinitionsError sets the mock error for FilterDefinitions calls
func (m *MockCatalog) SetDefinitionsError(err error) {
	m.definitionsError = err
}

// SetQueryError sets the mock error for QueryProducts calls
func (m *MockCatalog) SetQueryError(err error) {
	m.queryError = err
}

// SetIsReadyError sets the mock error for IsReady calls
func (m *MockCatalog) SetIsReadyError(err error) {
	m.isReadyError = err
}
