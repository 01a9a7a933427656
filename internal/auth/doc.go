// Package auth implements bearer-token authorization over a fixed set of
// accepted tokens.
//
// The token set is built once at startup from configuration and never mutated
// afterwards on the production path; request handling only reads it. The
// Authorizer distinguishes three failure modes — authentication not
// configured, credential missing, credential invalid — because they map to
// different HTTP outcomes (500, 401, 403) at the transport boundary.
package auth
