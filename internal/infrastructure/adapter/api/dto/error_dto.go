package dto

// ErrorResponse represents a standardized error response for the API.
// Code carries the same value the CLI exits with for the error.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
