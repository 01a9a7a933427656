package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// credential, validates it via [auth.Authorizer.Authorize], and — on
// success — stores the validated token in the request context under
// [utils.TokenCtxKey] before delegating to the next handler.
//
// Rejections follow the authorizer's three-way decision:
//   - no tokens configured at all → 500, an operator problem;
//   - no credential in the request → 401 with "WWW-Authenticate: Bearer";
//   - a credential that is not in the accepted set → 403.
//
// An absent header, a non-Bearer scheme, and an empty token value are all
// treated as a missing credential, never as an invalid one.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		credential := getBearerToken(r.Header.Get("Authorization"))

		token, err := h.authorizer.Authorize(credential)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Msg("bearer authorization rejected")
			h.writeError(w, err)
			return
		}

		// Store the validated token in the context so that downstream
		// handlers can retrieve it without re-reading the header.
		ctx := context.WithValue(r.Context(), utils.TokenCtxKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getBearerToken extracts the credential from a raw "Authorization" HTTP
// header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// The scheme comparison is case-insensitive. Any value that does not carry
// a non-empty token under the Bearer scheme — an absent header, a different
// scheme, or a bare "Bearer" — yields the empty string, which the
// authorizer treats as a missing credential.
func getBearerToken(authHeader string) string {
	const prefix = "Bearer "

	if len(authHeader) < len(prefix) || !strings.EqualFold(authHeader[:len(prefix)], prefix) {
		return ""
	}

	return strings.TrimSpace(authHeader[len(prefix):])
}
