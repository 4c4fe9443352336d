// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"net/http"

	"github.com/storefrontkit/catalog-query-service/internal/domain/port"
)

// CatalogQueryService exposes the faceted search pipeline over HTTP.
// It depends on the inbound port only; all wiring happens in the providers.
type CatalogQueryService struct {
	searcher port.ProductSearcher
}

// NewCatalogQueryService creates a new CatalogQueryService instance
func NewCatalogQueryService(searcher port.ProductSearcher) *CatalogQueryService {
	return &CatalogQueryService{
		searcher: searcher,
	}
}

// Search handles GET /search
func (s *CatalogQueryService) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := s.searcher.Search(ctx, requestToQuery(r))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, NewSearchResponse(result))
}

// Readyz handles GET /readyz
func (s *CatalogQueryService) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := s.searcher.IsReady(ctx); err != nil {
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK\n"))
}

// Livez handles GET /livez
func (s *CatalogQueryService) Livez(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK\n"))
}
