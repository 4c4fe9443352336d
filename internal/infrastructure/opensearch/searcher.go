// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/storefrontkit/catalog-query-service/internal/domain/model"

	"github.com/opensearch-project/opensearch-go/v4"
	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"
)

// facetBucketSize caps the number of option buckets fetched per facet.
const facetBucketSize = 50

// Catalog implements the CatalogSearcher and FilterDefinitionSource
// interfaces for OpenSearch
type Catalog struct {
	client    SearchClientRetriever
	index     string
	facets    []FacetMapping
	templates *SearchTemplates
}

// SearchClientRetriever defines the interface for OpenSearch operations
// This allows for easy mocking and testing
type SearchClientRetriever interface {
	Search(ctx context.Context, index string, query []byte) (*SearchResponse, error)
	Ping(ctx context.Context) error
}

// QueryProducts implements the CatalogSearcher interface
func (c *Catalog) QueryProducts(ctx context.Context, query model.CatalogQuery) (*model.CatalogResult, error) {
	slog.DebugContext(ctx, "executing opensearch catalog query",
		"page", query.Page,
		"page_size", query.PageSize,
		"filters", len(query.Filters),
	)

	clauses, err := c.filterClauses(query.Filters)
	if err != nil {
		return nil, err
	}

	body, err := c.templates.RenderProductQuery(ProductQueryData{
		From:      (query.Page - 1) * query.PageSize,
		Size:      query.PageSize,
		SortField: query.SortBy,
		SortOrder: query.SortOrder,
		Language:  query.Language,
		Filters:   clauses,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render product query: %w", err)
	}

	response, err := c.client.Search(ctx, c.index, body)
	if err != nil {
		return nil, fmt.Errorf("opensearch search failed: %w", err)
	}

	result := c.convertResponse(ctx, response)

	slog.DebugContext(ctx, "opensearch catalog query completed",
		"results_count", len(result.Products),
		"total_count", result.TotalCount,
	)
	return result, nil
}

// FilterDefinitions implements the FilterDefinitionSource interface by
// aggregating product counts per configured facet field. Bucket keys become
// both option label and value; counts reflect the live index.
func (c *Catalog) FilterDefinitions(ctx context.Context) ([]model.FilterDefinition, error) {
	body, err := c.templates.RenderFacetCountsQuery(FacetCountsData{
		Facets:     c.facets,
		BucketSize: facetBucketSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render facet counts query: %w", err)
	}

	response, err := c.client.Search(ctx, c.index, body)
	if err != nil {
		return nil, fmt.Errorf("opensearch aggregation failed: %w", err)
	}

	definitions := make([]model.FilterDefinition, 0, len(c.facets))
	for _, facet := range c.facets {
		aggregation, ok := response.Aggregations[facet.Label]
		if !ok {
			slog.DebugContext(ctx, "no aggregation returned for facet",
				"facet", facet.Label,
			)
			continue
		}

		definition := model.FilterDefinition{
			Attribute:   facet.Label,
			DisplayType: facet.DisplayType,
			Options:     make([]model.FilterOption, 0, len(aggregation.Buckets)),
		}
		for _, bucket := range aggregation.Buckets {
			definition.Options = append(definition.Options, model.FilterOption{
				Label: bucket.Key,
				Value: bucket.Key,
				Count: bucket.DocCount,
			})
		}
		definitions = append(definitions, definition)
	}

	slog.DebugContext(ctx, "opensearch filter definitions built",
		"facets", len(definitions),
	)
	return definitions, nil
}

// IsReady implements the CatalogSearcher interface
func (c *Catalog) IsReady(ctx context.Context) error {
	return c.client.Ping(ctx)
}

// filterClauses maps facet attribute labels to indexed fields. Params are
// derived from definitions this adapter produced, so an unknown attribute
// means the configuration changed mid-request.
func (c *Catalog) filterClauses(params []model.FilterParam) ([]FilterClause, error) {
	clauses := make([]FilterClause, 0, len(params))
	for _, param := range params {
		field := ""
		for _, facet := range c.facets {
			if facet.Label == param.Attribute {
				field = facet.Field
				break
			}
		}
		if field == "" {
			return nil, fmt.Errorf("no field mapping for attribute %q", param.Attribute)
		}
		clauses = append(clauses, FilterClause{
			Field:  field,
			Values: param.Values,
		})
	}
	return clauses, nil
}

// convertResponse converts an OpenSearch response to domain products
func (c *Catalog) convertResponse(ctx context.Context, response *SearchResponse) *model.CatalogResult {

	result := &model.CatalogResult{
		Products:   make([]model.Product, 0, len(response.Hits.Hits)),
		TotalCount: response.Hits.Total.Value,
	}

	for _, hit := range response.Hits.Hits {
		product, err := c.convertHit(hit)
		if err != nil {
			// Log error but continue processing other hits
			slog.ErrorContext(ctx, "failed to convert hit", "hit_id", hit.ID, "error", err)
			continue
		}
		result.Products = append(result.Products, product)
	}

	return result
}

// convertHit converts a single OpenSearch hit to a domain product
func (c *Catalog) convertHit(hit Hit) (model.Product, error) {
	product := model.Product{
		ID: hit.ID,
	}

	if hit.Source != nil {
		sourceData := make(map[string]any)
		if err := json.Unmarshal(hit.Source, &sourceData); err != nil {
			return product, fmt.Errorf("failed to unmarshal source data: %w", err)
		}

		if name, ok := sourceData["name"].(string); ok {
			product.Name = name
		}
		product.Data = sourceData
	}

	return product, nil
}

// NewCatalog returns a new OpenSearch-backed Catalog implementation
func NewCatalog(ctx context.Context, config Config) (*Catalog, error) {

	if config.URL == "" {
		slog.ErrorContext(ctx, "opensearch URL is required")
		return nil, fmt.Errorf("opensearch URL is required")
	}
	if config.Index == "" {
		slog.ErrorContext(ctx, "opensearch index is required")
		return nil, fmt.Errorf("opensearch index is required")
	}
	if len(config.Facets) == 0 {
		slog.ErrorContext(ctx, "at least one facet mapping is required")
		return nil, fmt.Errorf("at least one facet mapping is required")
	}

	templates, errTemplates := NewSearchTemplates()
	if errTemplates != nil {
		return nil, errTemplates
	}

	opensearchClient, errOpensearchClient := opensearchapi.NewClient(opensearchapi.Config{
		Client: opensearch.Config{
			Addresses: []string{config.URL},
			Transport: &http.Transport{
				MaxIdleConnsPerHost:   10,
				ResponseHeaderTimeout: time.Second,
				DialContext:           (&net.Dialer{Timeout: 3 * time.Second}).DialContext,
			},
		},
	})
	if errOpensearchClient != nil {
		slog.ErrorContext(ctx, "failed to create OpenSearch client", "error", errOpensearchClient)
		return nil, fmt.Errorf("failed to create OpenSearch client: %w", errOpensearchClient)
	}

	return &Catalog{
		client:    &httpClient{client: opensearchClient},
		index:     config.Index,
		facets:    config.Facets,
		templates: templates,
	}, nil
}
