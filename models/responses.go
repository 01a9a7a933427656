package models

// ErrorResponse is the uniform error body returned by every endpoint.
// Detail carries a stable, machine-parseable reason string.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthcheckResponse is the fixed payload of GET /healthcheck.
type HealthcheckResponse struct {
	Status string `json:"status"`
}

// ProtectedResponse is the payload of GET /v1/protected/.
type ProtectedResponse struct {
	Message       string `json:"message"`
	Authenticated string `json:"authenticated"`
}

// ProtectedDataResponse is the payload of GET /v1/protected/data.
// TokenPreview contains at most a short prefix of the presented token,
// never the full credential.
type ProtectedDataResponse struct {
	Message      string   `json:"message"`
	Data         []string `json:"data"`
	TokenPreview string   `json:"token_preview"`
}
