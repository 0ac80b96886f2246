package services

import (
	"errors"
	"fmt"
)

// ErrorKind classifies service failures so callers can pick a response.
type ErrorKind int

const (
	// KindUnknown is reported for errors that did not come from this package.
	KindUnknown ErrorKind = iota
	KindArgumentInvalid
	KindValidationFailed
	KindNotFound
	KindStorageFailure
)

func (k ErrorKind) String() string {
	switch k {
	case KindArgumentInvalid:
		return "argument_invalid"
	case KindValidationFailed:
		return "validation_failed"
	case KindNotFound:
		return "not_found"
	case KindStorageFailure:
		return "storage_failure"
	default:
		return "unknown"
	}
}

// Error is the failure type returned by ProductService.
type Error struct {
	Kind    ErrorKind
	Message string
	// Fields holds per-field messages for KindValidationFailed.
	Fields map[string][]string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%v)", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a service error, or KindUnknown.
func KindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

func argumentError(msg string) *Error {
	return &Error{Kind: KindArgumentInvalid, Message: msg}
}

func notFoundError(msg string, err error) *Error {
	return &Error{Kind: KindNotFound, Message: msg, Err: err}
}

func storageError(msg string, err error) *Error {
	return &Error{Kind: KindStorageFailure, Message: msg, Err: err}
}
