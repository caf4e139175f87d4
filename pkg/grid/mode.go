package grid

import "fmt"

// Mode selects which family of grid points is primary.
type Mode string

const (
	// ModeDiamond uses the cardinal locations as primary points.
	ModeDiamond Mode = "diamond"

	// ModeBox uses the intercardinal locations as primary points.
	ModeBox Mode = "box"

	// ModeFull combines diamond and box data. Wherever the two
	// disagree, diamond behavior wins.
	ModeFull Mode = "full"
)

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDiamond, ModeBox, ModeFull:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid grid mode: %q", s)
}

// Canonical reduces ModeFull to ModeDiamond for table selection.
// Diamond and Box pass through unchanged.
func (m Mode) Canonical() Mode {
	if m == ModeFull {
		return ModeDiamond
	}
	return m
}

// String implements fmt.Stringer.
func (m Mode) String() string { return string(m) }
