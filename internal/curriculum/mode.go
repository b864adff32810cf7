package curriculum

import (
	"errors"
	"fmt"
)

var (
	// ErrNotReady is returned when a component that needs curriculum data is
	// built before a curriculum is available.
	ErrNotReady = errors.New("curriculum not ready")

	// ErrUnknownMode is returned for a mode other than read or write.
	ErrUnknownMode = errors.New("unknown mode")

	// ErrUnknownLetter is returned for a letter ID the curriculum doesn't contain.
	ErrUnknownLetter = errors.New("unknown letter")

	// ErrUnknownLevel is returned for a level ID that doesn't map to a group and mode.
	ErrUnknownLevel = errors.New("unknown level")
)

// Mode is a practice discipline. Each mode is tracked independently.
type Mode string

const (
	ModeWrite Mode = "write" // Production: draw or type the symbol
	ModeRead  Mode = "read"  // Recognition: identify the symbol
)

// Modes returns all modes in display order.
func Modes() []Mode {
	return []Mode{ModeWrite, ModeRead}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeWrite || m == ModeRead
}

// Other returns the opposite mode.
func (m Mode) Other() Mode {
	if m == ModeRead {
		return ModeWrite
	}
	return ModeRead
}

// Label returns the display label for a mode.
func (m Mode) Label() string {
	switch m {
	case ModeWrite:
		return "Write"
	case ModeRead:
		return "Read"
	default:
		return string(m)
	}
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
	return m, nil
}
