// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package model

// SearchQuery encapsulates all parameters of a single faceted search
// request. It is constructed by the caller and consumed once; the
// provider replaces Facets wholesale with a freshly built template.
type SearchQuery struct {
	// Page is the requested page number, 1-based
	Page int
	// PageSize is the number of products per page
	PageSize int
	// SortBy is the product field to order results by
	SortBy string
	// SortOrder is the sort direction, asc or desc
	SortOrder string
	// Language is the locale context forwarded to the catalog store
	Language string
	// NavToken is the opaque navigation-state token of the incoming request
	NavToken *string
	// Facets is the facet template describing active selections
	Facets []Facet
}

// Pagination describes where the returned page sits in the full result set.
type Pagination struct {
	// TotalResults is the total number of products matching the query
	TotalResults int
	// Results is the number of products on the current page
	Results int
	// Pages is the total number of pages
	Pages int
	// Page is the current page number, 1-based
	Page int
}

// SearchResult contains the outcome of one faceted search request.
type SearchResult struct {
	// Products found on the current page
	Products []Product
	// Pagination block for the current page
	Pagination Pagination
	// NextQuery is pre-populated with the refreshed facet template,
	// ready to be submitted as the next request
	NextQuery *SearchQuery
	// NavToken is the encoded navigation state of NextQuery
	NavToken string
}

// CatalogQuery is the request shape the catalog store executes.
type CatalogQuery struct {
	// PageSize is the number of products per page
	PageSize int
	// Page is the requested page number, 1-based
	Page int
	// SortBy is the product field to order results by
	SortBy string
	// SortOrder is the sort direction, asc or desc
	SortOrder string
	// Language is the locale context for localized attributes
	Language string
	// Filters are the required attribute-value constraints
	Filters []FilterParam
}

// CatalogResult is the raw outcome of a filtered catalog query.
type CatalogResult struct {
	// Products found on the requested page
	Products []Product
	// TotalCount is the total number of matching products
	TotalCount int
}
