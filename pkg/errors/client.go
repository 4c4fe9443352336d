// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package errors

import "errors"

// Validation represents a validation error in the application,
// such as a malformed navigation token or an out-of-range page number.
type Validation struct {
	base
}

// Error returns the error message for Validation.
func (v Validation) Error() string {
	return v.error()
}

// NewValidation creates a new Validation error with the provided message.
func NewValidation(message string, err ...error) Validation {
	return Validation{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}

// Conversion represents a failure translating between the legacy
// filter-definition format and the facet model: a missing label or value,
// or a label collision within the same parent.
type Conversion struct {
	base
}

// Error returns the error message for Conversion.
func (c Conversion) Error() string {
	return c.error()
}

// NewConversion creates a new Conversion error with the provided message.
func NewConversion(message string, err ...error) Conversion {
	return Conversion{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}
