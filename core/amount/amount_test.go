package amount

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"Empty", "", "0"},
		{"Blank", "   ", "0"},
		{"Integer", "3", "3"},
		{"Decimal", "29.50", "29.5"},
		{"Negative", "-10.00", "-10"},
		{"Padded", " 8.25 ", "8.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse("ten dollars")
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "ten dollars", parseErr.Value)
	assert.Contains(t, err.Error(), "ten dollars")
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "10.00", Format(MustParse("10")))
	assert.Equal(t, "29.50", Format(MustParse("29.5")))
	assert.Equal(t, "1234.57", Format(MustParse("1234.567")))
	assert.Equal(t, "-10.00", Format(MustParse("10").Neg()))
	assert.Equal(t, "0.00", Format(decimal.Zero.Neg()))
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "Yes", YesNo(true))
	assert.Equal(t, "NO!!!", YesNo(false))
}

func TestTolerance_Absolute(t *testing.T) {
	tol := DefaultTolerance()

	tests := []struct {
		name     string
		expected string
		reported string
		want     bool
	}{
		{"Exact", "30.00", "30.00", true},
		{"WithinThreshold", "30.0000", "30.0005", true},
		{"AtThreshold", "30.000", "30.001", true},
		{"BeyondThreshold", "30.000", "30.0011", false},
		{"Mismatch", "30.00", "29.50", false},
		{"BothZero", "0", "0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tol.Equal(MustParse(tt.expected), MustParse(tt.reported))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTolerance_Relative(t *testing.T) {
	tol := DefaultTolerance()
	tol.Mode = ModeRelative

	// 0.1% of 1000 is 1
	assert.True(t, tol.Equal(MustParse("1000"), MustParse("999")))
	assert.False(t, tol.Equal(MustParse("1000"), MustParse("998.9")))
	assert.True(t, tol.Equal(decimal.Zero, decimal.Zero))
	assert.False(t, tol.Equal(decimal.Zero, MustParse("0.01")))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Relative")
	require.NoError(t, err)
	assert.Equal(t, ModeRelative, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeAbsolute, m)

	_, err = ParseMode("fuzzy")
	assert.Error(t, err)
}
