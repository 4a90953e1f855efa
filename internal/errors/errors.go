// Package errors re-exports github.com/cockroachdb/errors and defines the
// two failure kinds surfaced by ship operations.
//
//	if errors.Is(err, errors.ErrNotFound) {
//	    // 404
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
)

var (
	WithDetailf   = crdb.WithDetailf
	GetAllDetails = crdb.GetAllDetails
)

var (
	Is = crdb.Is
	As = crdb.As
)

// Failure kinds. Callers wrap these, never return them bare without context.
var (
	// ErrMalformedInput marks caller-supplied data that violates a field rule,
	// or an identifier that is not positive.
	ErrMalformedInput = crdb.New("malformed input")

	// ErrNotFound marks an identifier that does not resolve to a stored ship.
	ErrNotFound = crdb.New("not found")
)

// Malformedf wraps ErrMalformedInput with a formatted message.
func Malformedf(format string, args ...interface{}) error {
	return crdb.Wrapf(ErrMalformedInput, format, args...)
}

// NotFoundf wraps ErrNotFound with a formatted message.
func NotFoundf(format string, args ...interface{}) error {
	return crdb.Wrapf(ErrNotFound, format, args...)
}
