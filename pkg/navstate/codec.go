// Copyright The Storefrontkit Authors.
// SPDX-License-Identifier: MIT

// Package navstate encodes the set of active facet filters into an opaque,
// URL-safe token and decodes it back. Only active filters are ever encoded;
// an empty active set is represented by the empty token.
package navstate

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/storefrontkit/catalog-query-service/pkg/constants"
	"github.com/storefrontkit/catalog-query-service/pkg/errors"
	"golang.org/x/crypto/nacl/secretbox"
)

// Selection holds the active filter labels of a single facet, in the order
// they appear in the facet template.
type Selection struct {
	Facet   string   `json:"f"`
	Filters []string `json:"v"`
}

// State is the ordered active-selection set of one navigation token.
type State []Selection

// Filters returns the active filter labels recorded for the given facet,
// or nil when the facet is not part of the state.
func (s State) Filters(facet string) []string {
	for _, sel := range s {
		if sel.Facet == facet {
			return sel.Filters
		}
	}
	return nil
}

// Decode takes a base64-encoded, secretbox-encrypted token and returns the
// active-selection state. An empty token decodes to an empty state.
// Returns a Validation error if decoding, decryption, or unmarshaling fails.
func Decode(ctx context.Context, encoded string, secretKey *[32]byte) (State, error) {

	if encoded == "" {
		return nil, nil
	}

	slog.DebugContext(ctx, "decoding navigation token",
		"encoded_token", encoded,
	)

	encrypted, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.NewValidation("invalid encoded navigation token", err)
	}

	if len(encrypted) < constants.NonceSize+secretbox.Overhead {
		return nil, errors.NewValidation(
			"invalid navigation token length",
			fmt.Errorf("expected at least %d bytes, got %d", constants.NonceSize+secretbox.Overhead, len(encrypted)),
		)
	}

	var decryptNonce [constants.NonceSize]byte
	copy(decryptNonce[:], encrypted[:constants.NonceSize])
	decrypted, ok := secretbox.Open(nil, encrypted[constants.NonceSize:], &decryptNonce, secretKey)
	if !ok {
		return nil, errors.NewValidation("failed to decrypt navigation token")
	}

	var state State
	if err := json.Unmarshal(decrypted, &state); err != nil {
		return nil, errors.NewValidation("failed to unmarshal navigation state", err)
	}

	slog.DebugContext(ctx, "decoded navigation token successfully",
		"facets", len(state),
	)

	return state, nil
}

// Encode serializes the active-selection state, encrypts it with secretbox,
// and returns a secure base64 token. An empty state encodes to the empty
// token so that an unfiltered browse carries no state at all.
func Encode(ctx context.Context, state State, secretKey *[32]byte) (string, error) {

	if len(state) == 0 {
		return "", nil
	}

	encodedState, err := json.Marshal(state)
	if err != nil {
		return "", errors.NewUnexpected("failed to marshal navigation state", err)
	}

	var nonce [constants.NonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", errors.NewUnexpected("failed to generate nonce for navigation token", err)
	}

	encrypted := secretbox.Seal(nonce[:], encodedState, &nonce, secretKey)

	token := base64.RawURLEncoding.EncodeToString(encrypted)

	slog.DebugContext(ctx, "encoded navigation token",
		"facets", len(state),
	)

	return token, nil
}
