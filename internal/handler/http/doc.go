// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Bearer token authentication, logging, and tracing
// concerns are all handled at this layer before requests are forwarded
// to the service layer.
//
// The router is composed once at startup: optional feature groups (the
// protected endpoints and the users resource) are mounted only when their
// backing configuration is present, so a disabled feature answers 404
// rather than a feature-specific error.
package http
