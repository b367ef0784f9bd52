// Package apierr classifies the failure modes of gateway operations so that
// callers can tell a transport fault from a business rejection.
package apierr

import (
	"errors"
	"fmt"
)

// Kind is the failure category of an operation.
type Kind int

const (
	// Validation marks malformed local input, e.g. an empty address.
	Validation Kind = iota + 1
	// Signing marks a bad private key or a failure in the signing primitive.
	Signing
	// Network marks transport failures and non-200 HTTP statuses.
	Network
	// Protocol marks unparseable or schema-violating gateway responses.
	Protocol
	// Rejection marks a gateway-level business rejection.
	Rejection
	// Timeout marks polling that exceeded its deadline.
	Timeout
	// State marks an operation attempted on an unopened or misconfigured account.
	State
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Signing:
		return "signing"
	case Network:
		return "network"
	case Protocol:
		return "protocol"
	case Rejection:
		return "rejection"
	case Timeout:
		return "timeout"
	case State:
		return "state"
	}
	return "unknown"
}

// Error is a categorized operation failure.
type Error struct {
	kind  Kind
	msg   string
	cause error
}

// New returns an Error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Newf returns an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, v ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, v...)}
}

// Wrap returns an Error of the given kind keeping cause in the chain.
func Wrap(kind Kind, cause error, msg string) *Error {
	return &Error{kind: kind, msg: msg, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

// Kind returns the failure category.
func (e *Error) Kind() Kind {
	return e.kind
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithContext prefixes err with msg, preserving its kind when it has one.
func WithContext(err error, msg string) error {
	var ae *Error
	if errors.As(err, &ae) {
		return &Error{kind: ae.kind, msg: msg, cause: err}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// IsKind reports whether err, anywhere in its chain, is an Error of kind k.
func IsKind(err error, k Kind) bool {
	var ae *Error
	for errors.As(err, &ae) {
		if ae.kind == k {
			return true
		}
		err = ae.cause
		if err == nil {
			break
		}
	}
	return false
}
