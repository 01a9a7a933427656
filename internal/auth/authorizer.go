// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

// previewLength is the number of leading token bytes exposed by
// [TokenPreview] for low-sensitivity display.
const previewLength = 8

// Authorizer validates an inbound bearer credential against a [TokenStore].
// It is a stateless decision function; all state lives in the store.
type Authorizer struct {
	store *TokenStore
}

// NewAuthorizer constructs an Authorizer over the given store.
func NewAuthorizer(store *TokenStore) *Authorizer {
	return &Authorizer{store: store}
}

// Enabled reports whether the authentication feature is active for this
// process, i.e. whether any tokens are configured.
func (a *Authorizer) Enabled() bool {
	return a.store.IsConfigured()
}

// Authorize validates credential, where the empty string means that the
// request supplied no credential at all. The checks run in strict order:
//
//  1. no tokens configured      → [ErrNotConfigured]  (server-side, 5xx)
//  2. no credential supplied    → [ErrMissingToken]   (client-side, 401)
//  3. credential not in the set → [ErrInvalidToken]   (client-side, 403)
//
// On success the credential is returned; callers may display a short prefix
// of it via [TokenPreview], never the full token.
func (a *Authorizer) Authorize(credential string) (string, error) {
	if !a.store.IsConfigured() {
		return "", ErrNotConfigured
	}

	if credential == "" {
		return "", ErrMissingToken
	}

	if !a.store.Contains(credential) {
		return "", ErrInvalidToken
	}

	return credential, nil
}

// TokenPreview renders a low-sensitivity display form of token: at most the
// first 8 bytes followed by "...". Tokens shorter than the prefix are shown
// whole; realistic key lengths always truncate.
func TokenPreview(token string) string {
	if len(token) > previewLength {
		token = token[:previewLength]
	}

	return token + "..."
}
