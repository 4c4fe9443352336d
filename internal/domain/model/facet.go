// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package model

// Filter is one selectable value within a Facet. Value and Count are
// supplied by the catalog store; Active is the only field the query
// pipeline mutates, and only on a freshly built template.
type Filter struct {
	// Label identifies the filter within its parent facet
	Label string
	// Value is the raw attribute value the catalog store filters on
	Value string
	// Count is the number of products matching this filter
	Count int
	// Active reports whether the filter is part of the current selection
	Active bool
}

// SetActive flips the activation state of the filter.
func (f *Filter) SetActive(active bool) {
	f.Active = active
}

// Facet is a filterable product dimension, such as Color or Size.
type Facet struct {
	// Label identifies the facet within the template
	Label string
	// DisplayType is presentation metadata passed through untouched
	DisplayType string
	// Filters are the selectable values, in source order
	Filters []Filter
}

// Filter returns a pointer to the filter with the given label, or nil
// when the facet has no such filter.
func (f *Facet) Filter(label string) *Filter {
	for i := range f.Filters {
		if f.Filters[i].Label == label {
			return &f.Filters[i]
		}
	}
	return nil
}

// ActiveFilters returns the facet's active filters in template order.
func (f *Facet) ActiveFilters() []Filter {
	var active []Filter
	for _, filter := range f.Filters {
		if filter.Active {
			active = append(active, filter)
		}
	}
	return active
}
