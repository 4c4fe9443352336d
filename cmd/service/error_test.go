// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/storefrontkit/catalog-query-service/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "validation error",
			err:            errors.NewValidation("bad token"),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "conversion error",
			err:            errors.NewConversion("duplicate facet label"),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "query execution error",
			err:            errors.NewQueryExecution("catalog query failed"),
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:           "service unavailable",
			err:            errors.NewServiceUnavailable("catalog down"),
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "unexpected error",
			err:            errors.NewUnexpected("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "plain error",
			err:            fmt.Errorf("something broke"),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "nil error",
			err:            nil,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			writeError(context.Background(), recorder, tc.err)

			assert.Equal(t, tc.expectedStatus, recorder.Code)
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
			assert.NotEmpty(t, response.Message)
		})
	}
}
