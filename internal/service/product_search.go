// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"

	"github.com/storefrontkit/catalog-query-service/internal/converter"
	"github.com/storefrontkit/catalog-query-service/internal/domain/model"
	"github.com/storefrontkit/catalog-query-service/internal/domain/port"
	"github.com/storefrontkit/catalog-query-service/pkg/constants"
	"github.com/storefrontkit/catalog-query-service/pkg/errors"
	"github.com/storefrontkit/catalog-query-service/pkg/navstate"
)

// ProductSearch orchestrates a single faceted search request: decode the
// incoming navigation state, build a fresh facet template, mark active
// filters, run the catalog query, assemble pagination, and encode the
// navigation state of the next request.
// It depends on abstractions (interfaces) rather than concrete implementations.
type ProductSearch struct {
	definitions port.FilterDefinitionSource
	catalog     port.CatalogSearcher
	tokenSecret *[32]byte
}

// Search performs one faceted product query.
func (s *ProductSearch) Search(ctx context.Context, query model.SearchQuery) (*model.SearchResult, error) {

	query = normalizeQuery(query)

	slog.DebugContext(ctx, "starting faceted search",
		"page", query.Page,
		"page_size", query.PageSize,
		"sort_by", query.SortBy,
		"sort_order", query.SortOrder,
		"language", query.Language,
	)

	// A broken bookmark degrades to an unfiltered browse instead of
	// failing the whole page, so decode errors are not surfaced here.
	state := s.decodeState(ctx, query.NavToken)

	template, err := s.buildTemplate(ctx)
	if err != nil {
		return nil, err
	}
	applyActivation(ctx, template, state)

	params, err := converter.ToFilterParams(template)
	if err != nil {
		slog.ErrorContext(ctx, "failed to derive filter params from template", "error", err)
		return nil, err
	}

	catalogResult, err := s.catalog.QueryProducts(ctx, model.CatalogQuery{
		PageSize:  query.PageSize,
		Page:      query.Page,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
		Language:  query.Language,
		Filters:   params,
	})
	if err != nil {
		slog.ErrorContext(ctx, "catalog query failed", "error", err)
		return nil, errors.NewQueryExecution("catalog query failed", err)
	}

	pagination := buildPagination(catalogResult, query.Page, query.PageSize)

	// Rebuild the template so the next query carries refreshed counts.
	// The activation that was just queried is re-applied: encoding a
	// never-activated template would always yield an empty token and lose
	// the selection on the very next request.
	nextTemplate, err := s.buildTemplate(ctx)
	if err != nil {
		return nil, err
	}
	applyActivation(ctx, nextTemplate, state)

	token, err := navstate.Encode(ctx, activeSelections(nextTemplate), s.tokenSecret)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode navigation token", "error", err)
		return nil, err
	}

	nextQuery := &model.SearchQuery{
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
		Language:  query.Language,
		Facets:    nextTemplate,
	}
	if token != "" {
		nextQuery.NavToken = &token
	}

	slog.DebugContext(ctx, "faceted search completed",
		"results_count", pagination.Results,
		"total_results", pagination.TotalResults,
		"pages", pagination.Pages,
	)

	return &model.SearchResult{
		Products:   catalogResult.Products,
		Pagination: pagination,
		NextQuery:  nextQuery,
		NavToken:   token,
	}, nil
}

// IsReady reports whether the catalog store can serve queries.
func (s *ProductSearch) IsReady(ctx context.Context) error {
	return s.catalog.IsReady(ctx)
}

// decodeState decodes the incoming navigation token. A missing token and a
// malformed token both yield an empty activation state; the latter is logged.
func (s *ProductSearch) decodeState(ctx context.Context, token *string) navstate.State {
	if token == nil || *token == "" {
		return nil
	}

	state, err := navstate.Decode(ctx, *token, s.tokenSecret)
	if err != nil {
		slog.WarnContext(ctx, "discarding malformed navigation token",
			"error", err,
		)
		return nil
	}
	return state
}

// buildTemplate fetches the live filter definitions and converts them into
// a fresh facet template with no activation applied.
func (s *ProductSearch) buildTemplate(ctx context.Context) ([]model.Facet, error) {
	definitions, err := s.definitions.FilterDefinitions(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch filter definitions", "error", err)
		return nil, errors.NewQueryExecution("failed to fetch filter definitions", err)
	}

	template, err := converter.ToFacets(definitions)
	if err != nil {
		slog.ErrorContext(ctx, "failed to build facet template", "error", err)
		return nil, err
	}
	return template, nil
}

// applyActivation joins the decoded selection state onto a fresh template.
// Facet counts are small, so linear label scans beat building an index.
// Labels that no longer exist in the template are skipped: the catalog may
// have changed between requests and a stale selection must not fail the query.
func applyActivation(ctx context.Context, template []model.Facet, state navstate.State) {
	for _, selection := range state {
		var facet *model.Facet
		for i := range template {
			if template[i].Label == selection.Facet {
				facet = &template[i]
				break
			}
		}
		if facet == nil {
			slog.DebugContext(ctx, "ignoring selection for unknown facet",
				"facet", selection.Facet,
			)
			continue
		}

		for _, label := range selection.Filters {
			filter := facet.Filter(label)
			if filter == nil {
				slog.DebugContext(ctx, "ignoring selection for unknown filter",
					"facet", selection.Facet,
					"filter", label,
				)
				continue
			}
			filter.SetActive(true)
		}
	}
}

// activeSelections collects the active filters of a template into the
// ordered state the navigation codec encodes. Inactive filters are omitted
// entirely to keep tokens minimal.
func activeSelections(template []model.Facet) navstate.State {
	var state navstate.State
	for _, facet := range template {
		var labels []string
		for _, filter := range facet.Filters {
			if filter.Active {
				labels = append(labels, filter.Label)
			}
		}
		if len(labels) > 0 {
			state = append(state, navstate.Selection{
				Facet:   facet.Label,
				Filters: labels,
			})
		}
	}
	return state
}

// buildPagination derives the pagination block for the current page.
func buildPagination(result *model.CatalogResult, page, pageSize int) model.Pagination {
	pages := 0
	if pageSize > 0 {
		pages = (result.TotalCount + pageSize - 1) / pageSize
	}
	return model.Pagination{
		TotalResults: result.TotalCount,
		Results:      len(result.Products),
		Pages:        pages,
		Page:         page,
	}
}

// normalizeQuery applies paging and sorting defaults.
func normalizeQuery(query model.SearchQuery) model.SearchQuery {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize <= 0 {
		query.PageSize = constants.DefaultPageSize
	}
	if query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.MaxPageSize
	}
	if query.SortBy == "" {
		query.SortBy = constants.DefaultSortField
	}
	if query.SortOrder != "asc" && query.SortOrder != "desc" {
		query.SortOrder = constants.DefaultSortOrder
	}
	return query
}

// NewProductSearch creates a new ProductSearch instance. The filter
// definition source, the catalog searcher, and the token secret are
// injected; the provider holds no ambient state.
func NewProductSearch(definitions port.FilterDefinitionSource, catalog port.CatalogSearcher, tokenSecret *[32]byte) port.ProductSearcher {
	return &ProductSearch{
		definitions: definitions,
		catalog:     catalog,
		tokenSecret: tokenSecret,
	}
}
