// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/storefrontkit/catalog-query-service/pkg/constants"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddlewareGeneratesID(t *testing.T) {
	var seenID string
	handler := RequestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID, _ = r.Context().Value(constants.RequestIDHeader).(string)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/search", nil))

	require.NotEmpty(t, seenID)
	_, err := uuid.Parse(seenID)
	assert.NoError(t, err)
	assert.Equal(t, seenID, recorder.Header().Get(string(constants.RequestIDHeader)))
}

func TestRequestIDMiddlewarePreservesIncomingID(t *testing.T) {
	var seenID string
	handler := RequestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID, _ = r.Context().Value(constants.RequestIDHeader).(string)
	}))

	request := httptest.NewRequest(http.MethodGet, "/search", nil)
	request.Header.Set(string(constants.RequestIDHeader), "req-42")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, "req-42", seenID)
	assert.Equal(t, "req-42", recorder.Header().Get(string(constants.RequestIDHeader)))
}
