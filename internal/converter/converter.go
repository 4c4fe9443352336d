// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

// Package converter is the sole translation boundary between the legacy
// filter-definition format and the facet model. Both directions validate
// labels and values at the boundary; a malformed definition or a label
// collision is reported instead of silently dropping or merging filters.
package converter

import (
	"fmt"

	"github.com/storefrontkit/catalog-query-service/internal/domain/model"
	"github.com/storefrontkit/catalog-query-service/pkg/errors"
)

// ToFacets builds a fresh facet template from legacy filter definitions:
// one facet per definition, one filter per option, source order preserved.
// All filters start inactive.
func ToFacets(definitions []model.FilterDefinition) ([]model.Facet, error) {

	facets := make([]model.Facet, 0, len(definitions))
	seenFacets := make(map[string]struct{}, len(definitions))

	for _, definition := range definitions {
		if definition.Attribute == "" {
			return nil, errors.NewConversion("filter definition is missing an attribute label")
		}
		if _, dup := seenFacets[definition.Attribute]; dup {
			return nil, errors.NewConversion(
				"duplicate facet label in filter definitions",
				fmt.Errorf("attribute %q appears more than once", definition.Attribute),
			)
		}
		seenFacets[definition.Attribute] = struct{}{}

		facet := model.Facet{
			Label:       definition.Attribute,
			DisplayType: definition.DisplayType,
			Filters:     make([]model.Filter, 0, len(definition.Options)),
		}

		seenFilters := make(map[string]struct{}, len(definition.Options))
		for _, option := range definition.Options {
			if option.Label == "" {
				return nil, errors.NewConversion(
					"filter option is missing a label",
					fmt.Errorf("attribute %q has an unlabeled option", definition.Attribute),
				)
			}
			if option.Value == "" {
				return nil, errors.NewConversion(
					"filter option is missing a value",
					fmt.Errorf("attribute %q option %q has no value", definition.Attribute, option.Label),
				)
			}
			if _, dup := seenFilters[option.Label]; dup {
				return nil, errors.NewConversion(
					"duplicate filter label within facet",
					fmt.Errorf("attribute %q option %q appears more than once", definition.Attribute, option.Label),
				)
			}
			seenFilters[option.Label] = struct{}{}

			facet.Filters = append(facet.Filters, model.Filter{
				Label: option.Label,
				Value: option.Value,
				Count: option.Count,
			})
		}

		facets = append(facets, facet)
	}

	return facets, nil
}

// ToFilterParams expresses the template's activation state in the legacy
// query format the catalog store understands. Only facets with at least one
// active filter contribute a param; a template with no activation yields no
// constraints at all. The same label and value rules as ToFacets apply, so
// a template that did not come through ToFacets is still validated.
func ToFilterParams(facets []model.Facet) ([]model.FilterParam, error) {

	var params []model.FilterParam
	seenFacets := make(map[string]struct{}, len(facets))

	for _, facet := range facets {
		if facet.Label == "" {
			return nil, errors.NewConversion("facet is missing a label")
		}
		if _, dup := seenFacets[facet.Label]; dup {
			return nil, errors.NewConversion(
				"duplicate facet label in template",
				fmt.Errorf("facet %q appears more than once", facet.Label),
			)
		}
		seenFacets[facet.Label] = struct{}{}

		seenFilters := make(map[string]struct{}, len(facet.Filters))
		var values []string
		for _, filter := range facet.Filters {
			if filter.Label == "" {
				return nil, errors.NewConversion(
					"filter is missing a label",
					fmt.Errorf("facet %q has an unlabeled filter", facet.Label),
				)
			}
			if _, dup := seenFilters[filter.Label]; dup {
				return nil, errors.NewConversion(
					"duplicate filter label within facet",
					fmt.Errorf("facet %q filter %q appears more than once", facet.Label, filter.Label),
				)
			}
			seenFilters[filter.Label] = struct{}{}

			if !filter.Active {
				continue
			}
			if filter.Value == "" {
				return nil, errors.NewConversion(
					"active filter is missing a value",
					fmt.Errorf("facet %q filter %q has no value", facet.Label, filter.Label),
				)
			}
			values = append(values, filter.Value)
		}

		if len(values) > 0 {
			params = append(params, model.FilterParam{
				Attribute: facet.Label,
				Values:    values,
			})
		}
	}

	return params, nil
}
