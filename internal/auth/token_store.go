// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

// TokenStore holds the set of accepted bearer tokens.
//
// The store is populated once by [NewTokenStore] before the server starts
// accepting requests and is read-only from then on, so concurrent reads from
// request goroutines need no locking. [TokenStore.Swap] exists for test
// isolation only; tests that call it must not run in parallel with other
// tests sharing the same store.
type TokenStore struct {
	tokens map[string]struct{}
}

// NewTokenStore builds a TokenStore from the configured token list.
// Duplicate entries collapse under set semantics.
func NewTokenStore(tokens []string) *TokenStore {
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}

	return &TokenStore{tokens: set}
}

// IsConfigured reports whether at least one token is configured. When false,
// the authentication feature is disabled and protected routes are not
// mounted at all.
func (s *TokenStore) IsConfigured() bool {
	return len(s.tokens) > 0
}

// Contains reports whether token is in the accepted set.
func (s *TokenStore) Contains(token string) bool {
	_, ok := s.tokens[token]
	return ok
}

// Swap installs a replacement token set and returns a function that restores
// the previous one. Intended for tests:
//
//	restore := store.Swap([]string{"test-token"})
//	defer restore()
//
// Production code never calls Swap after startup.
func (s *TokenStore) Swap(tokens []string) (restore func()) {
	previous := s.tokens

	replacement := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		replacement[token] = struct{}{}
	}
	s.tokens = replacement

	return func() {
		s.tokens = previous
	}
}
