package domain_test

import (
	"math/big"
	"testing"

	"near_account_lookup/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "One NEAR", input: "1000000000000000000000000", want: "1"},
		{name: "One and a half", input: "1500000000000000000000000", want: "1.5"},
		{name: "One hundredth", input: "10000000000000000000000", want: "0.01"},
		{name: "Zero", input: "0", want: "0"},
		{name: "Ten NEAR keeps integer zeros", input: "10000000000000000000000000", want: "10"},
		{name: "Truncated not rounded", input: "1234567890000000000000000", want: "1.2345"},
		{name: "Below display precision", input: "99999999999999999999", want: "0"},
		{name: "Beyond uint64", input: "123456789012345678901234567890123", want: "123456789.0123"},
		{name: "Leading zeros", input: "0001500000000000000000000000", want: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.FormatAmount(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatAmount_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "-1", "+1", "1.5", " 1", "1e24", "0x10"} {
		t.Run(input, func(t *testing.T) {
			_, err := domain.FormatAmount(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidAmount)

			var formatErr *domain.FormatError
			assert.ErrorAs(t, err, &formatErr)
		})
	}
}

func TestFormatAmount_RoundTripWithinTruncation(t *testing.T) {
	tolerance, _ := new(big.Int).SetString("100000000000000000000", 10) // 10^20, one unit of the 4th digit

	inputs := []string{
		"0",
		"1",
		"1000000000000000000000000",
		"1234567890123456789012345",
		"987654321987654321987654321987",
		"100000000000000000000",
		"99999999999999999999",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			formatted, err := domain.FormatAmount(input)
			require.NoError(t, err)

			back, err := domain.ParseAmount(formatted)
			require.NoError(t, err)

			original, _ := new(big.Int).SetString(input, 10)
			diff := new(big.Int).Sub(original, back)
			assert.GreaterOrEqual(t, diff.Sign(), 0, "formatting must truncate, not round up")
			assert.Negative(t, diff.Cmp(tolerance), "difference %s exceeds tolerance", diff)
		})
	}
}

func TestParseAmount(t *testing.T) {
	got, err := domain.ParseAmount("1.5")
	require.NoError(t, err)
	assert.Equal(t, "1500000000000000000000000", got.String())

	got, err = domain.ParseAmount(".01")
	require.NoError(t, err)
	assert.Equal(t, "10000000000000000000000", got.String())

	_, err = domain.ParseAmount("1.")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = domain.ParseAmount("1.2.3")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = domain.ParseAmount("-1")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}
