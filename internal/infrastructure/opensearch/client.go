// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"
)

type httpClient struct {
	client *opensearchapi.Client
}

func (c *httpClient) Search(ctx context.Context, index string, query []byte) (*SearchResponse, error) {

	slog.DebugContext(ctx, "executing opensearch search",
		"index", index,
		"query", string(query),
	)

	searchRequest := opensearchapi.SearchReq{
		Indices: []string{index},
		Body:    bytes.NewReader(query),
	}

	searchResponse, errSearchResponse := c.client.Search(ctx, &searchRequest)
	if errSearchResponse != nil {
		return nil, fmt.Errorf("failed to execute search: %w", errSearchResponse)
	}

	if searchResponse.Errors {
		return nil, fmt.Errorf("opensearch search returned errors")
	}

	result := &SearchResponse{
		Hits: Hits{
			Total: Total{
				Value: searchResponse.Hits.Total.Value,
			},
			Hits: make([]Hit, len(searchResponse.Hits.Hits)),
		},
	}
	for i, hit := range searchResponse.Hits.Hits {
		result.Hits.Hits[i] = Hit{
			ID:     hit.ID,
			Source: hit.Source,
		}
	}

	if len(searchResponse.Aggregations) > 0 {
		aggregations := make(map[string]TermsAggregation)
		if err := json.Unmarshal(searchResponse.Aggregations, &aggregations); err != nil {
			return nil, fmt.Errorf("failed to unmarshal aggregations: %w", err)
		}
		result.Aggregations = aggregations
	}

	return result, nil
}

func (c *httpClient) Ping(ctx context.Context) error {
	if _, err := c.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("opensearch ping failed: %w", err)
	}
	return nil
}
