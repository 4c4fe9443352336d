// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package constants

const (
	// DefaultPageSize is the default number of products per page for queries
	DefaultPageSize = 24

	// MaxPageSize caps the per-page count a caller may request
	MaxPageSize = 100

	// DefaultSortField is the product field results are ordered by when
	// the caller does not ask for a specific order
	DefaultSortField = "name"

	// DefaultSortOrder is the direction applied to the default sort field
	DefaultSortOrder = "asc"

	// NonceSize is the secretbox nonce length used by the navigation token codec
	NonceSize = 24
)
