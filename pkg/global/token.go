// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package global

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

var (
	navTokenSecret       [32]byte
	doOnceNavTokenSecret sync.Once
)

// NavTokenSecret retrieves the secret used for encoding and decoding
// navigation-state tokens. The secret must stay stable across deployments,
// otherwise bookmarked tokens stop decoding.
func NavTokenSecret(ctx context.Context) *[32]byte {

	doOnceNavTokenSecret.Do(func() {

		const navTokenSecretName = "NAV_TOKEN_SECRET"

		navTokenSecretValue := os.Getenv(navTokenSecretName)
		if navTokenSecretValue == "" {
			slog.ErrorContext(ctx, fmt.Sprintf("%s environment variable is not set", navTokenSecretName))
			os.Exit(1)
		}
		copy(navTokenSecret[:], []byte(navTokenSecretValue))
	})

	return &navTokenSecret
}
