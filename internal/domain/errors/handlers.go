package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "STOCK_EXCEEDED"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the envelope written by the view API error handler
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// BackendErrorBody is the error shape returned by the marketplace backend.
// Most endpoints send a top-level message; a few nest it under error.
type BackendErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Error   *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

// Text returns the first non-empty message of the body.
func (b *BackendErrorBody) Text() string {
	if b.Message != "" {
		return b.Message
	}
	if b.Error != nil {
		return b.Error.Message
	}

	return ""
}

// BusinessCode returns the first non-empty code of the body.
func (b *BackendErrorBody) BusinessCode() string {
	if b.Code != "" {
		return b.Code
	}
	if b.Error != nil {
		return b.Error.Code
	}

	return ""
}
