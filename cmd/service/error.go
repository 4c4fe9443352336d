// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/storefrontkit/catalog-query-service/pkg/errors"
)

// ErrorResponse is the transport shape of a failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// writeError maps typed application errors to HTTP status codes
func writeError(ctx context.Context, w http.ResponseWriter, err error) {

	slog.ErrorContext(ctx, "request failed",
		"error", err,
	)

	status := http.StatusInternalServerError
	message := "unknown error"
	if err != nil {
		message = err.Error()
		switch err.(type) {
		case errors.Validation:
			status = http.StatusBadRequest
		case errors.Conversion:
			status = http.StatusInternalServerError
		case errors.QueryExecution:
			status = http.StatusBadGateway
		case errors.ServiceUnavailable:
			status = http.StatusServiceUnavailable
		}
	}

	writeJSON(ctx, w, status, ErrorResponse{Message: message})
}

// writeJSON serializes the payload with the given status code
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}
