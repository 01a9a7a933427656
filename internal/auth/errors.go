// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "errors"

// Sentinel errors returned by [Authorizer.Authorize]. Callers match against
// them with [errors.Is] to choose the HTTP outcome. The three kinds are
// deliberately distinct: collapsing them would lose the difference between an
// operator problem (not configured) and the two client problems.
var (
	// ErrNotConfigured is returned when no tokens are configured at all.
	// This is a server-side misconfiguration and maps to a 5xx response.
	ErrNotConfigured = errors.New("bearer token authentication is not configured")

	// ErrMissingToken is returned when the request carried no bearer
	// credential. Maps to 401; the response must also advertise the Bearer
	// scheme via WWW-Authenticate.
	ErrMissingToken = errors.New("missing bearer token")

	// ErrInvalidToken is returned when a credential was presented but is not
	// in the accepted set. Maps to 403.
	ErrInvalidToken = errors.New("invalid bearer token")
)
