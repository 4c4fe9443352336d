// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/storefrontkit/catalog-query-service/cmd/service"
	"github.com/storefrontkit/catalog-query-service/internal/domain/model"
	logging "github.com/storefrontkit/catalog-query-service/pkg/log"
	"github.com/urfave/cli/v3"
)

const (
	defaultPort = "8080"
	// gracefulShutdownSeconds should be lower than the pod or liveness
	// probe's terminationGracePeriodSeconds.
	gracefulShutdownSeconds = 25
)

func init() {
	// slog is the standard library logger, we use it for all service logs
	logging.InitStructureLogConfig()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	envFlag := &cli.StringFlag{
		Name:  "env",
		Usage: "path to an optional .env file",
		Value: ".env",
	}

	cmd := &cli.Command{
		Name:  "catalog-query",
		Usage: "faceted catalog query service",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start the HTTP query service",
				Flags: []cli.Flag{
					envFlag,
					&cli.StringFlag{
						Name:  "port",
						Usage: "listen port",
						Value: defaultPort,
					},
					&cli.StringFlag{
						Name:  "bind",
						Usage: "interface to bind on",
						Value: "*",
					},
				},
				Action: serveAction,
			},
			{
				Name:  "search",
				Usage: "run a one-shot faceted query and print the result",
				Flags: []cli.Flag{
					envFlag,
					&cli.IntFlag{
						Name:  "page",
						Usage: "page number, 1-based",
						Value: 1,
					},
					&cli.IntFlag{
						Name:  "page-size",
						Usage: "products per page",
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "sort order: name_asc, name_desc, price_asc, price_desc",
					},
					&cli.StringFlag{
						Name:  "lang",
						Usage: "language/locale context",
					},
					&cli.StringFlag{
						Name:  "state",
						Usage: "navigation-state token of a previous result",
					},
				},
				Action: searchAction,
			},
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		slog.ErrorContext(ctx, "command failed", "error", err)
		os.Exit(1)
	}
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	loadEnvFile(ctx, cmd.String("env"))

	searcher := service.ProductSearcherImpl(ctx)
	svc := service.NewCatalogQueryService(searcher)

	addr := ":" + cmd.String("port")
	if bind := cmd.String("bind"); bind != "*" {
		addr = bind + ":" + cmd.String("port")
	}

	slog.InfoContext(ctx, "starting catalog query service",
		"addr", addr,
		"graceful-shutdown-seconds", gracefulShutdownSeconds,
	)

	serverCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	errc := make(chan error, 1)

	handleHTTPServer(serverCtx, addr, svc, &wg, errc)

	select {
	case err := <-errc:
		slog.ErrorContext(ctx, "server error", "error", err)
	case <-ctx.Done():
		slog.InfoContext(ctx, "received shutdown signal, stopping server")
	}
	cancel()

	// Wait for the server goroutine to finish with timeout
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.InfoContext(ctx, "graceful shutdown completed")
	case <-time.After(gracefulShutdownSeconds * time.Second):
		slog.WarnContext(ctx, "graceful shutdown timed out")
	}

	return nil
}

func searchAction(ctx context.Context, cmd *cli.Command) error {
	loadEnvFile(ctx, cmd.String("env"))

	searcher := service.ProductSearcherImpl(ctx)

	query := model.SearchQuery{
		Page:     int(cmd.Int("page")),
		PageSize: int(cmd.Int("page-size")),
		Language: cmd.String("lang"),
	}
	query.SortBy, query.SortOrder = parseSort(cmd.String("sort"))
	if state := cmd.String("state"); state != "" {
		query.NavToken = &state
	}

	result, err := searcher.Search(ctx, query)
	if err != nil {
		return err
	}

	output, err := json.MarshalIndent(service.NewSearchResponse(result), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))

	return nil
}

// parseSort splits the CLI sort value into field and direction.
func parseSort(sort string) (string, string) {
	switch sort {
	case "name_asc":
		return "name", "asc"
	case "name_desc":
		return "name", "desc"
	case "price_asc":
		return "price", "asc"
	case "price_desc":
		return "price", "desc"
	}
	return "", ""
}

// loadEnvFile loads the optional .env file; a missing file is not an error.
func loadEnvFile(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := godotenv.Load(path); err != nil {
		if os.IsNotExist(err) {
			return
		}
		slog.WarnContext(ctx, "failed to load env file",
			"path", path,
			"error", err,
		)
	}
}
