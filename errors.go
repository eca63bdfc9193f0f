package ddd

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies an Error at the presentation boundary.
type ErrorKind int

const (
	// KindInternal marks an unexpected failure during an attempted
	// operation, wrapping the underlying cause. Unclassified errors narrow
	// to this kind.
	KindInternal ErrorKind = iota

	// KindInvalid marks input that failed validation.
	KindInvalid

	// KindUnauthorized marks a caller that is not authenticated.
	KindUnauthorized

	// KindForbidden marks a caller that is authenticated but lacks
	// permission.
	KindForbidden

	// KindNotFound marks a referenced resource that is absent or not
	// visible.
	KindNotFound
)

// String returns the kind's presentation name.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalid:
		return "Invalid"
	case KindUnauthorized:
		return "Unauthorized"
	case KindForbidden:
		return "Forbidden"
	case KindNotFound:
		return "NotFound"
	default:
		return "Internal"
	}
}

// FieldError describes a validation failure on a single input field.
type FieldError struct {
	Field   string
	Message string
}

// Error is the uniform error contract returned to presentation-layer
// callers. Fields is populated for KindInvalid; Err carries the wrapped
// cause for KindInternal.
type Error struct {
	Kind   ErrorKind
	Fields []FieldError
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalid:
		if len(e.Fields) == 0 {
			return "invalid input"
		}
		parts := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			parts[i] = f.Field + ": " + f.Message
		}
		return "invalid input: " + strings.Join(parts, "; ")
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not found"
	default:
		if e.Err != nil {
			return fmt.Sprintf("internal: %v", e.Err)
		}
		return "internal"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Invalid builds a KindInvalid error carrying the given field failures.
func Invalid(fields ...FieldError) *Error {
	return &Error{Kind: KindInvalid, Fields: fields}
}

// Unauthorized builds a KindUnauthorized error.
func Unauthorized() *Error {
	return &Error{Kind: KindUnauthorized}
}

// Forbidden builds a KindForbidden error.
func Forbidden() *Error {
	return &Error{Kind: KindForbidden}
}

// NotFound builds a KindNotFound error.
func NotFound() *Error {
	return &Error{Kind: KindNotFound}
}

// Internal wraps err as a KindInternal error.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Err: err}
}

// KindOf narrows err into the taxonomy. Errors that are not (and do not
// wrap) an *Error report as KindInternal.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err narrows to KindNotFound.
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

// IsInvalid reports whether err narrows to KindInvalid.
func IsInvalid(err error) bool {
	return err != nil && KindOf(err) == KindInvalid
}
