// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package model

// Product represents a catalog product entity. The query layer passes
// product payloads through untouched; rendering belongs to the caller.
type Product struct {
	// ID is the catalog identifier of the product
	ID string
	// Name is the product display name
	Name string
	// Data is the raw product payload from the catalog store
	Data map[string]any
}
