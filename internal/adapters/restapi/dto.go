// Package restapi implements the RESTful API layer, including DTOs and handlers.
package restapi

// ErrorResponse defines a standard structure for JSON error responses.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}
