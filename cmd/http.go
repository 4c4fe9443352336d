// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/storefrontkit/catalog-query-service/cmd/service"
	"github.com/storefrontkit/catalog-query-service/internal/middleware"
)

// handleHTTPServer configures and starts the HTTP server on the given
// address. The server shuts down gracefully when the context is canceled;
// startup failures go to the error channel.
func handleHTTPServer(ctx context.Context, addr string, svc *service.CatalogQueryService, wg *sync.WaitGroup, errc chan error) {

	mux := http.NewServeMux()
	mux.HandleFunc("GET /search", svc.Search)
	mux.HandleFunc("GET /readyz", svc.Readyz)
	mux.HandleFunc("GET /livez", svc.Livez)

	var handler http.Handler = mux

	// Add RequestID middleware first
	handler = middleware.RequestIDMiddleware()(handler)

	srv := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: time.Second * 60}

	for _, pattern := range []string{"GET /search", "GET /readyz", "GET /livez"} {
		slog.InfoContext(ctx, "HTTP endpoint mounted",
			"pattern", pattern,
		)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()

		go func() {
			slog.InfoContext(ctx, "HTTP server listening", "addr", addr)
			errc <- srv.ListenAndServe()
		}()

		<-ctx.Done()
		slog.InfoContext(ctx, "shutting down HTTP server", "addr", addr)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(ctx, "failed to shutdown HTTP server", "error", err)
		}
	}()
}
