// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/storefrontkit/catalog-query-service/pkg/constants"
	"github.com/storefrontkit/catalog-query-service/pkg/log"

	"github.com/google/uuid"
)

// RequestIDMiddleware creates a middleware that adds a request ID to the context
func RequestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Try to get request ID from header first
			requestID := r.Header.Get(string(constants.RequestIDHeader))

			// If no request ID in header, generate a new one
			if requestID == "" {
				requestID = generateRequestID()
			}

			// Add request ID to response header
			w.Header().Set(string(constants.RequestIDHeader), requestID)

			// Add request ID to context
			ctx := context.WithValue(r.Context(), constants.RequestIDHeader, requestID)

			// Attach the request ID to the context-aware logger so it shows
			// up in every log record of this request
			ctx = log.AppendCtx(ctx, slog.String(string(constants.RequestIDHeader), requestID))

			r = r.WithContext(ctx)

			next.ServeHTTP(w, r)
		})
	}
}

// generateRequestID generates a new unique request ID
func generateRequestID() string {
	return uuid.New().String()
}
