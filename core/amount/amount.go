package amount

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// EqualLabel is rendered for totals that agree.
	EqualLabel = "Yes"
	// NotEqualLabel is rendered for totals that disagree.
	NotEqualLabel = "NO!!!"
)

// ParseError reports a non-empty value that is not a number.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid amount %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse converts a raw report value to a decimal.
// An empty (or blank) value is zero.
func Parse(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &ParseError{Value: raw, Err: err}
	}
	return d, nil
}

// MustParse is Parse for literals known to be valid. It panics otherwise.
func MustParse(raw string) decimal.Decimal {
	d, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return d
}

// Format renders a value with exactly two decimal places and no separators.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// YesNo renders an equality flag with the report's literal labels.
func YesNo(equal bool) string {
	if equal {
		return EqualLabel
	}
	return NotEqualLabel
}
