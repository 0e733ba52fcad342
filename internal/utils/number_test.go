package utils_test

import (
	"testing"

	"near_account_lookup/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{input: "42", want: 42, wantOK: true},
		{input: "  42\n", want: 42, wantOK: true},
		{input: "", want: 0, wantOK: true},
		{input: "-1.5", want: -1.5, wantOK: true},
		{input: "1e3", want: 1000, wantOK: true},
		{input: "0x1A", want: 26, wantOK: true},
		{input: "Infinity", wantOK: false},
		{input: "inf", wantOK: false},
		{input: "NaN", wantOK: false},
		{input: "1_000", wantOK: false},
		{input: "12abc", wantOK: false},
		{input: "0xzz", wantOK: false},
		{input: "1e400", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := utils.ParseNumber(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestHexToUint64(t *testing.T) {
	got, err := utils.HexToUint64("0x1a")
	require.NoError(t, err)
	assert.Equal(t, uint64(26), got)

	got, err = utils.HexToUint64("0x0")
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = utils.HexToUint64("0x")
	assert.Error(t, err)
}
