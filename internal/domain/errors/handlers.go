package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string       `json:"code"`              // Business error code, e.g., "CAPACITY_EXCEEDED"
	Message string       `json:"message"`           // User-friendly error message
	Details []FieldIssue `json:"details,omitempty"` // Field-level issues (optional)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	ErrorInfo
	Meta *MetaInfo `json:"meta"`
}
