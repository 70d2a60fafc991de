package fitness

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedKind is matched by every *UnsupportedKindError.
	ErrUnsupportedKind = errors.New("fitness: unsupported permission kind")

	// ErrUnsupportedAccess is returned for access values other than Read and Write.
	ErrUnsupportedAccess = errors.New("fitness: unsupported access mode")

	// ErrReadOnlyType is returned when write access is requested for a type
	// the platform only allows reading.
	ErrReadOnlyType = errors.New("fitness: type is read-only")
)

// UnsupportedKindError reports a kind the catalog cannot resolve: an ordinal
// outside the enumeration, a kind newer than the catalog's version, or a kind
// the platform has no descriptor for.
type UnsupportedKindError struct {
	Kind     PermissionKind
	Name     string // set, with Kind -1, when parsing a name failed
	Platform string // empty when no platform was consulted
	Version  Version
}

// Error implements the error interface.
func (e *UnsupportedKindError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%v: %q", ErrUnsupportedKind, e.Name)
	}
	msg := fmt.Sprintf("%v: %s", ErrUnsupportedKind, e.Kind)
	if e.Platform != "" {
		msg += " on " + e.Platform
	}
	if e.Version != 0 {
		msg += fmt.Sprintf(" (catalog version %s)", e.Version)
	}
	return msg
}

// Is lets errors.Is match ErrUnsupportedKind.
func (e *UnsupportedKindError) Is(target error) bool {
	return target == ErrUnsupportedKind
}

// RequestError wraps a failure for one entry of a permission request list.
type RequestError struct {
	Index int
	Err   error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("fitness: permission request %d: %v", e.Index, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *RequestError) Unwrap() error {
	return e.Err
}
