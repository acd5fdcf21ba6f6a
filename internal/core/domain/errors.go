package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed upstream call.
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindUnauthorized ErrorKind = "unauthorized"
	KindForbidden    ErrorKind = "forbidden"
	KindNotFound     ErrorKind = "not_found"
	KindConflict     ErrorKind = "conflict"
	KindServer       ErrorKind = "server"
	KindTransport    ErrorKind = "transport"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("access forbidden")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource conflict")
	ErrUpstream     = errors.New("upstream error")
	ErrTransport    = errors.New("transport error")
	ErrBusy         = errors.New("submission already in progress")
	ErrNoToken      = errors.New("no access token")
)

var kindSentinels = map[ErrorKind]error{
	KindValidation:   ErrValidation,
	KindUnauthorized: ErrUnauthorized,
	KindForbidden:    ErrForbidden,
	KindNotFound:     ErrNotFound,
	KindConflict:     ErrConflict,
	KindServer:       ErrUpstream,
	KindTransport:    ErrTransport,
}

// APIError is the tagged result of a failed call to the PDAM API.
// Status is 0 for transport failures.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Cause   error
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("pdam api: %s (%d): %s", e.Kind, e.Status, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("pdam api: %s: %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("pdam api: %s", e.Kind)
}

func (e *APIError) Unwrap() error { return e.Cause }

// Is lets errors.Is match an APIError against the sentinel of its kind.
func (e *APIError) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

// KindForStatus maps a non-2xx HTTP status to an ErrorKind.
func KindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return KindValidation
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	default:
		return KindServer
	}
}

// NewStatusError builds an APIError for an upstream HTTP failure.
func NewStatusError(status int, message string) *APIError {
	return &APIError{Kind: KindForStatus(status), Status: status, Message: message}
}

// NewTransportError builds an APIError for a network or decode failure.
func NewTransportError(cause error) *APIError {
	return &APIError{Kind: KindTransport, Cause: cause}
}

// AsAPIError unwraps err into an APIError when possible.
func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
