package amount

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Mode selects how two amounts are compared.
type Mode string

const (
	// ModeAbsolute treats amounts as equal when |expected - reported| <= Absolute.
	ModeAbsolute Mode = "absolute"
	// ModeRelative treats amounts as equal when the difference is within
	// Relative times the larger magnitude of the two.
	ModeRelative Mode = "relative"
)

// ParseMode maps a configuration value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeAbsolute, "":
		return ModeAbsolute, nil
	case ModeRelative:
		return ModeRelative, nil
	default:
		return "", fmt.Errorf("unknown tolerance mode %q", s)
	}
}

// Tolerance is the comparison policy shared by every reconciler.
type Tolerance struct {
	Mode     Mode
	Absolute decimal.Decimal
	Relative decimal.Decimal
}

// DefaultTolerance is absolute comparison with 0.001 for both thresholds.
func DefaultTolerance() Tolerance {
	return Tolerance{
		Mode:     ModeAbsolute,
		Absolute: decimal.New(1, -3),
		Relative: decimal.New(1, -3),
	}
}

// Equal reports whether expected and reported agree. The threshold itself counts as equal.
func (t Tolerance) Equal(expected, reported decimal.Decimal) bool {
	diff := expected.Sub(reported).Abs()

	if t.Mode == ModeRelative {
		scale := decimal.Max(expected.Abs(), reported.Abs())
		return diff.LessThanOrEqual(t.Relative.Mul(scale))
	}
	return diff.LessThanOrEqual(t.Absolute)
}
