package errors

// Response is the unified API response envelope shared by handlers and the
// error middleware.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "SETUP_REQUIRED"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}
