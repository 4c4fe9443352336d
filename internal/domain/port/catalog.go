// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package port

import (
	"context"

	"github.com/storefrontkit/catalog-query-service/internal/domain/model"
)

// FilterDefinitionSource supplies the legacy filter definitions the facet
// template is built from. Definitions reflect live catalog counts and are
// fetched fresh on every request, never cached by the query layer.
type FilterDefinitionSource interface {
	// FilterDefinitions returns the current filter definitions in source order
	FilterDefinitions(ctx context.Context) ([]model.FilterDefinition, error)
}

// CatalogSearcher defines the behavior for filtered product queries.
// This abstraction allows different catalog implementations (OpenSearch, etc.)
// without the domain layer knowing about specific implementations.
type CatalogSearcher interface {
	// QueryProducts executes a filtered, paginated product query.
	// Filter params are required constraints: AND across params,
	// OR within a single param's values.
	QueryProducts(ctx context.Context, query model.CatalogQuery) (*model.CatalogResult, error)

	// IsReady checks if the catalog store is reachable
	IsReady(ctx context.Context) error
}
