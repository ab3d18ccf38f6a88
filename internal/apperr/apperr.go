package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeFormatting    = "FORMATTING_ERROR"
	CodeUpload        = "UPLOAD_ERROR"
	CodePersistence   = "PERSISTENCE_ERROR"
	CodeLimitExceeded = "LIMIT_EXCEEDED"
)

// Error carries the machine-readable code and HTTP status alongside the cause.
// Handlers map it onto the wire envelope; the cause never reaches clients.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	return fmt.Sprintf("api error (%d)", e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func Validation(err error) *Error {
	return New(http.StatusBadRequest, CodeValidation, err)
}

func NotFound(resource string, id int64) *Error {
	return New(http.StatusNotFound, CodeNotFound, fmt.Errorf("%s with id %d not found", resource, id))
}

func Formatting(err error) *Error {
	return New(http.StatusBadGateway, CodeFormatting, err)
}

func Upload(err error) *Error {
	return New(http.StatusBadGateway, CodeUpload, err)
}

func Persistence(err error) *Error {
	return New(http.StatusInternalServerError, CodePersistence, err)
}

func LimitExceeded(resource string, limit int) *Error {
	return New(http.StatusTooManyRequests, CodeLimitExceeded, fmt.Errorf("%s limit exceeded: %d", resource, limit))
}

// From extracts the *Error from an error chain, defaulting to a 500 so
// unclassified failures never leak a misleading status.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return New(http.StatusInternalServerError, "INTERNAL_ERROR", err)
}
