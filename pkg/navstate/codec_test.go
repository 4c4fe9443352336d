// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

package navstate

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/storefrontkit/catalog-query-service/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSecret() *[32]byte {
	secretKey := [32]byte{}
	copy(secretKey[:], []byte("12345678901234567890123456789012"))
	return &secretKey
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ctx := context.Background()
	secretKey := testSecret()

	tests := []struct {
		name  string
		state State
	}{
		{
			name: "single facet single filter",
			state: State{
				{Facet: "Color", Filters: []string{"Red"}},
			},
		},
		{
			name: "multiple facets multiple filters",
			state: State{
				{Facet: "Color", Filters: []string{"Red", "Blue"}},
				{Facet: "Size", Filters: []string{"M"}},
				{Facet: "Brand", Filters: []string{"Acme", "Globex", "Initech"}},
			},
		},
		{
			name: "labels with url-hostile characters",
			state: State{
				{Facet: "Screen Size", Filters: []string{`27" / 4K`, "32\" & up"}},
				{Facet: "Préférence", Filters: []string{"été"}},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			token, err := Encode(ctx, tc.state, secretKey)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			// The token must survive URL transport without escaping.
			_, err = base64.RawURLEncoding.DecodeString(token)
			require.NoError(t, err)

			decoded, err := Decode(ctx, token, secretKey)
			require.NoError(t, err)
			assert.Equal(t, tc.state, decoded)
		})
	}
}

func TestEncodeEmptyState(t *testing.T) {
	ctx := context.Background()
	secretKey := testSecret()

	for _, state := range []State{nil, {}} {
		token, err := Encode(ctx, state, secretKey)
		require.NoError(t, err)
		assert.Empty(t, token)
	}
}

func TestDecodeEmptyToken(t *testing.T) {
	ctx := context.Background()

	state, err := Decode(ctx, "", testSecret())
	require.NoError(t, err)
	assert.Empty(t, state)
}

func TestDecodeMalformedToken(t *testing.T) {
	ctx := context.Background()
	secretKey := testSecret()

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "not base64",
			token: "not a token!!",
		},
		{
			name:  "too short",
			token: base64.RawURLEncoding.EncodeToString([]byte("short")),
		},
		{
			name:  "valid base64 wrong ciphertext",
			token: base64.RawURLEncoding.EncodeToString(make([]byte, 64)),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(ctx, tc.token, secretKey)
			require.Error(t, err)
			assert.IsType(t, errors.Validation{}, err)
		})
	}
}

func TestDecodeWrongKey(t *testing.T) {
	ctx := context.Background()

	token, err := Encode(ctx, State{{Facet: "Color", Filters: []string{"Red"}}}, testSecret())
	require.NoError(t, err)

	otherKey := [32]byte{}
	copy(otherKey[:], []byte("abcdefghabcdefghabcdefghabcdefgh"))

	_, err = Decode(ctx, token, &otherKey)
	require.Error(t, err)
	assert.IsType(t, errors.Validation{}, err)
}

func TestFilters(t *testing.T) {
	state := State{
		{Facet: "Color", Filters: []string{"Red", "Blue"}},
		{Facet: "Size", Filters: []string{"M"}},
	}

	assert.Equal(t, []string{"Red", "Blue"}, state.Filters("Color"))
	assert.Equal(t, []string{"M"}, state.Filters("Size"))
	assert.Nil(t, state.Filters("Brand"))
}
