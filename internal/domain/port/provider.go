// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package port

import (
	"context"

	"github.com/storefrontkit/catalog-query-service/internal/domain/model"
)

// ProductSearcher is the inbound port of the faceted search pipeline.
// The transport layer depends on this abstraction rather than on the
// concrete provider implementation.
type ProductSearcher interface {
	// Search runs one faceted, paginated product query
	Search(ctx context.Context, query model.SearchQuery) (*model.SearchResult, error)

	// IsReady checks if the underlying catalog store is reachable
	IsReady(ctx context.Context) error
}
