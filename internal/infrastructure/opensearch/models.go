// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package opensearch

import "encoding/json"

// Config represents OpenSearch catalog configuration
type Config struct {
	URL    string         `json:"url"`
	Index  string         `json:"index"`
	Facets []FacetMapping `json:"facets"`
}

// FacetMapping binds a facet attribute label to the indexed product field
// carrying its values.
type FacetMapping struct {
	Label       string `json:"label"`
	Field       string `json:"field"`
	DisplayType string `json:"display_type"`
}

// SearchResponse represents the OpenSearch search response
type SearchResponse struct {
	Hits         `json:"hits"`
	Aggregations map[string]TermsAggregation `json:"aggregations,omitempty"`
}

// AggregationBucket represents a single aggregation bucket.
type AggregationBucket struct {
	Key      string `json:"key"`
	DocCount int    `json:"doc_count"`
}

// TermsAggregation represents a terms aggregation response.
type TermsAggregation struct {
	DocCountErrorUpperBound int                 `json:"doc_count_error_upper_bound"`
	SumOtherDocCount        int                 `json:"sum_other_doc_count"`
	Buckets                 []AggregationBucket `json:"buckets"`
}

// Hits represents the hits in the search response
type Hits struct {
	Total `json:"total"`
	Hits  []Hit `json:"hits"`
}

// Total represents the total number of hits
type Total struct {
	Value int `json:"value"`
}

// Hit represents a single search result hit
type Hit struct {
	ID     string          `json:"_id"`
	Score  float64         `json:"_score"`
	Source json.RawMessage `json:"_source"`
}
