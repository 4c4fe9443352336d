// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"net/http/httptest"
	"testing"

	"github.com/storefrontkit/catalog-query-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestToQuery(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected model.SearchQuery
	}{
		{
			name: "defaults",
			url:  "/search",
			expected: model.SearchQuery{
				PageSize: 24,
			},
		},
		{
			name: "paging and sort",
			url:  "/search?page=3&page_size=10&sort=name_desc",
			expected: model.SearchQuery{
				Page:      3,
				PageSize:  10,
				SortBy:    "name",
				SortOrder: "desc",
			},
		},
		{
			name: "price sort and language",
			url:  "/search?sort=price_asc&lang=de",
			expected: model.SearchQuery{
				PageSize:  24,
				SortBy:    "price",
				SortOrder: "asc",
				Language:  "de",
			},
		},
		{
			name: "unknown sort ignored",
			url:  "/search?sort=rank_desc",
			expected: model.SearchQuery{
				PageSize: 24,
			},
		},
		{
			name: "non-numeric paging ignored",
			url:  "/search?page=abc&page_size=xyz",
			expected: model.SearchQuery{
				PageSize: 24,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			query := requestToQuery(httptest.NewRequest("GET", tc.url, nil))
			assert.Equal(t, tc.expected, query)
		})
	}
}

func TestRequestToQueryNavToken(t *testing.T) {
	query := requestToQuery(httptest.NewRequest("GET", "/search?state=abc123", nil))
	require.NotNil(t, query.NavToken)
	assert.Equal(t, "abc123", *query.NavToken)

	query = requestToQuery(httptest.NewRequest("GET", "/search", nil))
	assert.Nil(t, query.NavToken)
}

func TestNewSearchResponse(t *testing.T) {
	token := "tok"
	result := &model.SearchResult{
		Products: []model.Product{
			{ID: "sku-1", Name: "Cap", Data: map[string]any{"color": "blue"}},
		},
		Pagination: model.Pagination{TotalResults: 45, Results: 1, Pages: 5, Page: 3},
		NavToken:   token,
		NextQuery: &model.SearchQuery{
			NavToken: &token,
			Facets: []model.Facet{
				{
					Label:       "Color",
					DisplayType: "swatch",
					Filters: []model.Filter{
						{Label: "Red", Value: "red", Count: 2, Active: true},
						{Label: "Blue", Value: "blue", Count: 3},
					},
				},
			},
		},
	}

	response := NewSearchResponse(result)

	require.Len(t, response.Products, 1)
	assert.Equal(t, "sku-1", response.Products[0].ID)
	assert.Equal(t, PaginationResponse{TotalResults: 45, Results: 1, Pages: 5, Page: 3}, response.Pagination)
	assert.Equal(t, "tok", response.NavToken)

	require.Len(t, response.Facets, 1)
	assert.Equal(t, "Color", response.Facets[0].Label)
	assert.Equal(t, []FilterResponse{
		{Label: "Red", Count: 2, Active: true},
		{Label: "Blue", Count: 3, Active: false},
	}, response.Facets[0].Filters)
}

func TestNewSearchResponseEmptyResult(t *testing.T) {
	response := NewSearchResponse(&model.SearchResult{
		Pagination: model.Pagination{Page: 1},
	})

	assert.Empty(t, response.Products)
	assert.Empty(t, response.Facets)
	assert.Empty(t, response.NavToken)
}
