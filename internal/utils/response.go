package utils

// ErrorResponse is the body of every failed request.
// Details carries per-field validation failures when there are any.
type ErrorResponse struct {
	Error   string                  `json:"error"`
	Details []ValidationErrorDetail `json:"details,omitempty"`
}

// SuccessResponse acknowledges a write that returns no data.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// NewErrorResponse creates a new ErrorResponse instance.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewSuccessResponse creates a positive acknowledgement.
func NewSuccessResponse() SuccessResponse {
	return SuccessResponse{Success: true}
}
