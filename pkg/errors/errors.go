package errors

import "net/http"

// HTTPError is an error that carries the HTTP status and the i18n message key
// rendered to the client.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// NewHTTPError creates an HTTPError. Codes inside the HTTP status range are
// used as the status as well; anything else is answered with 400.
func NewHTTPError(code int, message string) *HTTPError {
	status := http.StatusBadRequest
	if code >= 100 && code <= 599 {
		status = code
	}
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: status,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects field errors for a 400 answer.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	return v[0].Field + ": " + v[0].Message
}
