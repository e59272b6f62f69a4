package money

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"100", "100"},
		{"100.50", "100.5"},
		{"100,50", "100.5"},
		{" 70 ", "70"},
		{"0.01", "0.01"},
		{"-5", "-5"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"parsed %s, want %s", got, tt.want)
		})
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "abc", "10,5,0", "1.234,56", "R$ 10"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			assert.Error(t, err)
		})
	}
}

func TestFormatBRL(t *testing.T) {
	got := FormatBRL(decimal.RequireFromString("70"))
	assert.True(t, strings.HasPrefix(got, "R$"), "got %q", got)
	assert.Contains(t, got, "70,00")

	got = FormatBRL(decimal.RequireFromString("1234.56"))
	assert.Contains(t, got, "234,56")

	got = FormatBRL(decimal.Zero)
	assert.Contains(t, got, "0,00")

	// Fourteen significant digits sit inside the float64 display bound;
	// the trailing digits must survive the conversion intact.
	got = FormatBRL(decimal.RequireFromString("123456789012.34"))
	assert.Contains(t, got, "012,34")
}
