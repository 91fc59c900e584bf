package apierrors

import (
	"errors"
	"net/http"

	"outreach-server/internal/clients/vendor"
	"outreach-server/internal/store"
)

const (
	CodeInvalidInput   = "INVALID_INPUT"
	CodeNotConfigured  = "NOT_CONFIGURED"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeMethodNotAllow = "METHOD_NOT_ALLOWED"
	CodeVendorError    = "VENDOR_ERROR"
	CodeInternalError  = "INTERNAL_ERROR"
)

// APIError is an error that already knows how it should be rendered.
// Processors return one when the message carries request-specific detail.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Invalid is a 400 for input that failed validation.
func Invalid(message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: CodeInvalidInput, Message: message}
}

// NotConfigured is a 400 for a tenant that has not saved a required credential.
func NotConfigured(message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: CodeNotConfigured, Message: message}
}

// MapError converts any error into an APIError.
// APIErrors pass through, vendor failures become 502 unless the vendor rejected
// the request (4xx is forwarded), store.ErrNotFound is 404, anything else is 500.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	if vErr, ok := vendor.AsError(err); ok {
		status := http.StatusBadGateway
		if vErr.ClientError() {
			status = vErr.Status
		}
		return &APIError{StatusCode: status, Code: CodeVendorError, Message: vErr.Message, Err: err}
	}

	if errors.Is(err, store.ErrNotFound) {
		return &APIError{StatusCode: http.StatusNotFound, Code: CodeNotFound, Message: "Resource not found", Err: err}
	}

	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}
