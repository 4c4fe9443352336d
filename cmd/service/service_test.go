// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/storefrontkit/catalog-query-service/internal/infrastructure/mock"
	searchsvc "github.com/storefrontkit/catalog-query-service/internal/service"
	"github.com/storefrontkit/catalog-query-service/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*CatalogQueryService, *mock.MockCatalog) {
	secretKey := [32]byte{}
	copy(secretKey[:], []byte("0123456789abcdef0123456789abcdef"))

	catalog := mock.NewMockCatalog()
	searcher := searchsvc.NewProductSearch(catalog, catalog, &secretKey)
	return NewCatalogQueryService(searcher), catalog
}

func TestSearchEndpoint(t *testing.T) {
	svc, _ := newTestService()

	recorder := httptest.NewRecorder()
	svc.Search(recorder, httptest.NewRequest(http.MethodGet, "/search?page=1&page_size=2&sort=name_asc", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response SearchResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.Len(t, response.Products, 2)
	assert.Equal(t, 5, response.Pagination.TotalResults)
	assert.Equal(t, 3, response.Pagination.Pages)
	assert.Len(t, response.Facets, 3)
	assert.Empty(t, response.NavToken)
}

func TestSearchEndpointWithState(t *testing.T) {
	svc, _ := newTestService()

	recorder := httptest.NewRecorder()
	svc.Search(recorder, httptest.NewRequest(http.MethodGet, "/search", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	// A malformed state degrades to an unfiltered search.
	recorder = httptest.NewRecorder()
	svc.Search(recorder, httptest.NewRequest(http.MethodGet, "/search?state=garbage", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var response SearchResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, 5, response.Pagination.TotalResults)
}

func TestSearchEndpointQueryFailure(t *testing.T) {
	svc, catalog := newTestService()
	catalog.SetQueryError(errors.NewQueryExecution("store unavailable"))

	recorder := httptest.NewRecorder()
	svc.Search(recorder, httptest.NewRequest(http.MethodGet, "/search", nil))

	assert.Equal(t, http.StatusBadGateway, recorder.Code)
}

func TestReadyzEndpoint(t *testing.T) {
	svc, catalog := newTestService()

	recorder := httptest.NewRecorder()
	svc.Readyz(recorder, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	catalog.SetIsReadyError(errors.NewServiceUnavailable("catalog down"))
	recorder = httptest.NewRecorder()
	svc.Readyz(recorder, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestLivezEndpoint(t *testing.T) {
	svc, _ := newTestService()

	recorder := httptest.NewRecorder()
	svc.Livez(recorder, httptest.NewRequest(http.MethodGet, "/livez", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
}
