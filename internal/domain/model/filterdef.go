// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package model

// FilterDefinition is the legacy per-attribute representation of a
// filterable dimension, as supplied by the filter-definition source.
type FilterDefinition struct {
	// Attribute is the catalog attribute the definition describes
	Attribute string
	// DisplayType is presentation metadata passed through untouched
	DisplayType string
	// Options are the selectable attribute values, in source order
	Options []FilterOption
}

// FilterOption is one selectable value of a legacy filter definition.
type FilterOption struct {
	// Label is the display name of the option
	Label string
	// Value is the raw attribute value the catalog store filters on
	Value string
	// Count is the number of products matching this option
	Count int
}

// FilterParam expresses an activation constraint in the legacy query
// format the catalog store understands: products must match any of the
// Values for the Attribute (OR within a param, AND across params).
type FilterParam struct {
	// Attribute is the catalog attribute to constrain
	Attribute string
	// Values are the required attribute values
	Values []string
}
