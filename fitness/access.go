package fitness

import (
	"fmt"
	"strings"
)

// AccessMode is the direction of a requested capability.
type AccessMode int

const (
	// Read asks to read samples of a kind.
	Read AccessMode = iota
	// Write asks to save samples of a kind.
	Write
)

// Valid reports whether a is Read or Write.
func (a AccessMode) Valid() bool {
	return a == Read || a == Write
}

func (a AccessMode) String() string {
	switch a {
	case Read:
		return "Read"
	case Write:
		return "Write"
	default:
		return fmt.Sprintf("AccessMode(%d)", int(a))
	}
}

// ParseAccessMode accepts "Read" or "Write", ignoring case.
func ParseAccessMode(name string) (AccessMode, error) {
	switch {
	case strings.EqualFold(name, "read"):
		return Read, nil
	case strings.EqualFold(name, "write"):
		return Write, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAccess, name)
	}
}
