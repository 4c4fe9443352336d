// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package opensearch

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"
)

// SearchTemplates contains all OpenSearch query templates
type SearchTemplates struct {
	productQueryTemplate *template.Template
	facetCountsTemplate  *template.Template
}

// NewSearchTemplates creates a new instance of SearchTemplates
func NewSearchTemplates() (*SearchTemplates, error) {
	funcs := template.FuncMap{
		"quote": strconv.Quote,
	}

	productQueryTemplate, err := template.New("productQuery").Funcs(funcs).Parse(productQuerySource)
	if err != nil {
		return nil, fmt.Errorf("failed to parse product query template: %w", err)
	}

	facetCountsTemplate, err := template.New("facetCounts").Funcs(funcs).Parse(facetCountsSource)
	if err != nil {
		return nil, fmt.Errorf("failed to parse facet counts template: %w", err)
	}

	return &SearchTemplates{
		productQueryTemplate: productQueryTemplate,
		facetCountsTemplate:  facetCountsTemplate,
	}, nil
}

// ProductQueryData represents the data structure for product query rendering
type ProductQueryData struct {
	From      int
	Size      int
	SortField string
	SortOrder string
	Language  string
	Filters   []FilterClause
}

// FilterClause is one required attribute constraint of a product query
type FilterClause struct {
	Field  string
	Values []string
}

// FacetCountsData represents the data structure for facet aggregation rendering
type FacetCountsData struct {
	Facets     []FacetMapping
	BucketSize int
}

// RenderProductQuery renders the filtered product query template
func (st *SearchTemplates) RenderProductQuery(data ProductQueryData) ([]byte, error) {
	var buf bytes.Buffer
	if err := st.productQueryTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render product query: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderFacetCountsQuery renders the terms-aggregation query used to build
// the live filter definitions
func (st *SearchTemplates) RenderFacetCountsQuery(data FacetCountsData) ([]byte, error) {
	var buf bytes.Buffer
	if err := st.facetCountsTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render facet counts query: %w", err)
	}
	return buf.Bytes(), nil
}

// productQuerySource is the filtered product query template. Every clause in
// the filter array carries a trailing comma; the closing match_all keeps the
// rendered JSON valid for any combination of clauses.
const productQuerySource = `{
  "from": {{.From}},
  "size": {{.Size}},
  "query": {
    "bool": {
      "filter": [
        {{- if .Language}}
        { "term": { "language": {{quote .Language}} } },
        {{- end}}
        {{- range .Filters}}
        { "terms": { {{quote .Field}}: [{{range $i, $v := .Values}}{{if $i}}, {{end}}{{quote $v}}{{end}}] } },
        {{- end}}
        { "match_all": {} }
      ]
    }
  },
  "sort": [
    { {{quote .SortField}}: { "order": {{quote .SortOrder}} } }
  ]
}`

// facetCountsSource aggregates product counts per facet field without
// fetching any documents.
const facetCountsSource = `{
  "size": 0,
  "aggs": {
    {{- range $i, $f := .Facets}}
    {{- if $i}},{{end}}
    {{quote $f.Label}}: { "terms": { "field": {{quote $f.Field}}, "size": {{$.BucketSize}} } }
    {{- end}}
  }
}`
