// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"net/http"
	"strconv"

	"github.com/storefrontkit/catalog-query-service/internal/domain/model"
	"github.com/storefrontkit/catalog-query-service/pkg/constants"
)

// SearchResponse is the transport shape of a faceted search result
type SearchResponse struct {
	Products   []ProductResponse  `json:"products"`
	Pagination PaginationResponse `json:"pagination"`
	Facets     []FacetResponse    `json:"facets"`
	NavToken   string             `json:"nav_token,omitempty"`
}

// ProductResponse is the transport shape of a single product
type ProductResponse struct {
	ID   string         `json:"id"`
	Name string         `json:"name,omitempty"`
	Data map[string]any `json:"data,omitempty"`
}

// PaginationResponse is the transport shape of the pagination block
type PaginationResponse struct {
	TotalResults int `json:"total_results"`
	Results      int `json:"results"`
	Pages        int `json:"pages"`
	Page         int `json:"page"`
}

// FacetResponse is the transport shape of one facet of the next query
type FacetResponse struct {
	Label       string           `json:"label"`
	DisplayType string           `json:"display_type,omitempty"`
	Filters     []FilterResponse `json:"filters"`
}

// FilterResponse is the transport shape of one selectable filter
type FilterResponse struct {
	Label  string `json:"label"`
	Count  int    `json:"count"`
	Active bool   `json:"active"`
}

// requestToQuery converts the HTTP request parameters to a domain search query
func requestToQuery(r *http.Request) model.SearchQuery {
	values := r.URL.Query()

	query := model.SearchQuery{
		PageSize: constants.DefaultPageSize,
		Language: values.Get("lang"),
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil {
		query.Page = page
	}
	if pageSize, err := strconv.Atoi(values.Get("page_size")); err == nil {
		query.PageSize = pageSize
	}

	switch values.Get("sort") {
	case "name_asc":
		query.SortBy = "name"
		query.SortOrder = "asc"
	case "name_desc":
		query.SortBy = "name"
		query.SortOrder = "desc"
	case "price_asc":
		query.SortBy = "price"
		query.SortOrder = "asc"
	case "price_desc":
		query.SortBy = "price"
		query.SortOrder = "desc"
	}

	if state := values.Get("state"); state != "" {
		query.NavToken = &state
	}

	return query
}

// NewSearchResponse converts a domain search result to the transport shape.
// Exported so the one-shot CLI command can print the same representation the
// HTTP endpoint serves.
func NewSearchResponse(result *model.SearchResult) *SearchResponse {
	response := &SearchResponse{
		Products: make([]ProductResponse, len(result.Products)),
		Pagination: PaginationResponse{
			TotalResults: result.Pagination.TotalResults,
			Results:      result.Pagination.Results,
			Pages:        result.Pagination.Pages,
			Page:         result.Pagination.Page,
		},
		NavToken: result.NavToken,
	}

	for i, product := range result.Products {
		response.Products[i] = ProductResponse{
			ID:   product.ID,
			Name: product.Name,
			Data: product.Data,
		}
	}

	if result.NextQuery != nil {
		response.Facets = make([]FacetResponse, len(result.NextQuery.Facets))
		for i, facet := range result.NextQuery.Facets {
			facetResponse := FacetResponse{
				Label:       facet.Label,
				DisplayType: facet.DisplayType,
				Filters:     make([]FilterResponse, len(facet.Filters)),
			}
			for j, filter := range facet.Filters {
				facetResponse.Filters[j] = FilterResponse{
					Label:  filter.Label,
					Count:  filter.Count,
					Active: filter.Active,
				}
			}
			response.Facets[i] = facetResponse
		}
	}

	return response
}
