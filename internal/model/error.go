package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the API can report.
type ErrorKind int

const (
	KindUpstreamUnavailable ErrorKind = iota
	KindUpstreamTimeout
	KindNotFound
	KindUnsupportedNetwork
	KindUpstreamMalformed
	KindInvalidStrategy
)

// Sentinels for errors.Is matching against a kind.
var (
	ErrUpstreamUnavailable = &Error{Kind: KindUpstreamUnavailable}
	ErrUpstreamTimeout     = &Error{Kind: KindUpstreamTimeout}
	ErrNotFound            = &Error{Kind: KindNotFound}
	ErrUnsupportedNetwork  = &Error{Kind: KindUnsupportedNetwork}
	ErrUpstreamMalformed   = &Error{Kind: KindUpstreamMalformed}
	ErrInvalidStrategy     = &Error{Kind: KindInvalidStrategy}
)

// String returns a human readable description of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindUpstreamUnavailable:
		return "upstream unavailable"
	case KindUpstreamTimeout:
		return "upstream timeout"
	case KindNotFound:
		return "not found"
	case KindUnsupportedNetwork:
		return "unsupported network"
	case KindUpstreamMalformed:
		return "malformed upstream response"
	case KindInvalidStrategy:
		return "invalid listing strategy"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// Code returns the stable wire code sent to API clients.
func (k ErrorKind) Code() string {
	switch k {
	case KindUpstreamTimeout:
		return "UPSTREAM_TIMEOUT"
	case KindNotFound:
		return "NOT_FOUND"
	case KindUnsupportedNetwork:
		return "UNSUPPORTED_NETWORK"
	case KindUpstreamMalformed:
		return "UPSTREAM_MALFORMED"
	case KindInvalidStrategy:
		return "INVALID_STRATEGY"
	default:
		return "UPSTREAM_UNAVAILABLE"
	}
}

// Error is a classified failure with an optional detail and cause.
type Error struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

// NewError creates an Error of the given kind.
func NewError(kind ErrorKind, detail string, cause error) *Error {
	return &Error{Kind: kind, Detail: detail, Err: cause}
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of err, looking through wrapping.
// Unclassified errors are reported as KindUpstreamUnavailable.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUpstreamUnavailable
}

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Success   bool   `json:"success" example:"false"`
	Error     string `json:"error"`
	Code      string `json:"code,omitempty" example:"NOT_FOUND"`
	Timestamp int64  `json:"timestamp"`
}
