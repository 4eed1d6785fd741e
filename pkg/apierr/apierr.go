package apierr

import (
	"fmt"
	"net/http"
)

// ApiError is the JSON error body returned by every endpoint.
type ApiError struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Detail    string `json:"detail,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// Constructors per failure kind. Validation and NotFound are client errors
// and are never retried; Generation is the completion gateway failing and is
// safe to resubmit because nothing was persisted before a successful call.
var (
	Validation = func(detail string) *ApiError { return New(http.StatusBadRequest, "Validation Error", detail) }
	NotFound   = func(detail string) *ApiError { return New(http.StatusNotFound, "Not Found", detail) }
	Conflict   = func(detail string) *ApiError { return New(http.StatusConflict, "Conflict", detail) }
	Internal   = func(detail string) *ApiError {
		return New(http.StatusInternalServerError, "Internal Server Error", detail)
	}
	Generation = func(detail string) *ApiError {
		return New(http.StatusBadGateway, "Generation Failed", detail)
	}
)

func New(code int, message, detail string) *ApiError {
	return &ApiError{
		Code:    code,
		Message: message,
		Detail:  detail,
	}
}

func (e *ApiError) WithRequestID(requestID string) *ApiError {
	e.RequestID = requestID
	return e
}

func (e *ApiError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

func (e *ApiError) StatusCode() int {
	return e.Code
}
