// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/storefrontkit/catalog-query-service/internal/domain/port"
	"github.com/storefrontkit/catalog-query-service/internal/infrastructure/mock"
	"github.com/storefrontkit/catalog-query-service/internal/infrastructure/opensearch"
	searchsvc "github.com/storefrontkit/catalog-query-service/internal/service"
	"github.com/storefrontkit/catalog-query-service/pkg/global"
)

// defaultFacetMappings is used when OPENSEARCH_FACETS is not configured
const defaultFacetMappings = "Color:color:swatch,Size:size:list,Brand:brand:list"

// ProductSearcherImpl injects the fully wired faceted search provider
func ProductSearcherImpl(ctx context.Context) port.ProductSearcher {
	definitions, catalog := catalogImpl(ctx)
	return searchsvc.NewProductSearch(definitions, catalog, global.NavTokenSecret(ctx))
}

// catalogImpl injects the catalog implementation based on configuration
func catalogImpl(ctx context.Context) (port.FilterDefinitionSource, port.CatalogSearcher) {

	// Catalog source implementation configuration
	searchSource := os.Getenv("SEARCH_SOURCE")
	if searchSource == "" {
		searchSource = "opensearch"
	}

	switch searchSource {
	case "mock":
		slog.InfoContext(ctx, "initializing mock catalog")
		catalog := mock.NewMockCatalog()
		return catalog, catalog

	case "opensearch":
		opensearchURL := os.Getenv("OPENSEARCH_URL")
		if opensearchURL == "" {
			opensearchURL = "http://localhost:9200"
		}

		opensearchIndex := os.Getenv("OPENSEARCH_INDEX")
		if opensearchIndex == "" {
			opensearchIndex = "products"
		}

		facetMappings := os.Getenv("OPENSEARCH_FACETS")
		if facetMappings == "" {
			facetMappings = defaultFacetMappings
		}

		slog.InfoContext(ctx, "initializing opensearch catalog",
			"url", opensearchURL,
			"index", opensearchIndex,
			"facets", facetMappings,
		)

		catalog, err := opensearch.NewCatalog(ctx, opensearch.Config{
			URL:    opensearchURL,
			Index:  opensearchIndex,
			Facets: parseFacetMappings(facetMappings),
		})
		if err != nil {
			log.Fatalf("failed to initialize OpenSearch catalog: %v", err)
		}
		return catalog, catalog

	default:
		log.Fatalf("unsupported catalog implementation: %s", searchSource)
		return nil, nil
	}
}

// parseFacetMappings parses the "Label:field:displayType" comma-separated
// facet configuration. The display type is optional.
func parseFacetMappings(raw string) []opensearch.FacetMapping {
	var mappings []opensearch.FacetMapping
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", 3)
		mapping := opensearch.FacetMapping{Label: parts[0]}
		if len(parts) > 1 {
			mapping.Field = parts[1]
		} else {
			mapping.Field = strings.ToLower(parts[0])
		}
		if len(parts) > 2 {
			mapping.DisplayType = parts[2]
		}
		mappings = append(mappings, mapping)
	}
	return mappings
}
