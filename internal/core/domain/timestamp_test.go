package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"near_account_lookup/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input domain.Timestamp
		want  string
	}{
		{name: "Absent", input: domain.Timestamp{}, want: domain.UnknownTime},
		{name: "Not a number", input: domain.TimestampFromString("not a number"), want: domain.UnknownTime},
		{name: "Zero", input: domain.TimestampFromNanos(0), want: domain.UnknownTime},
		{name: "Zero string", input: domain.TimestampFromString("0"), want: domain.UnknownTime},
		{name: "Empty string", input: domain.TimestampFromString(""), want: domain.UnknownTime},
		{name: "Infinity", input: domain.TimestampFromString("Infinity"), want: domain.UnknownTime},
		{name: "NaN", input: domain.TimestampFromString("NaN"), want: domain.UnknownTime},
		{name: "Beyond date range", input: domain.TimestampFromString("1e30"), want: domain.UnknownTime},
		{name: "Nanoseconds", input: domain.TimestampFromNanos(1_700_000_000_000_000_000), want: "2023-11-14T22:13:20Z"},
		{name: "Numeric string", input: domain.TimestampFromString(" 1700000000000000000 "), want: "2023-11-14T22:13:20Z"},
		{name: "Sub-second part dropped", input: domain.TimestampFromNanos(1_700_000_000_500_000_000), want: "2023-11-14T22:13:20Z"},
		{name: "Exponent string", input: domain.TimestampFromString("1.7e18"), want: "2023-11-14T22:13:20Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.FormatTimestamp(tt.input, time.UTC, time.RFC3339)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatTimestamp_DefaultLayout(t *testing.T) {
	got := domain.FormatTimestamp(domain.TimestampFromNanos(1_700_000_000_000_000_000), time.UTC, "")
	assert.Equal(t, "11/14/2023, 10:13:20 PM", got)
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	type txn struct {
		BlockTimestamp domain.Timestamp `json:"block_timestamp"`
	}

	tests := []struct {
		name        string
		body        string
		wantPresent bool
		wantRaw     string
	}{
		{name: "Number", body: `{"block_timestamp":1700000000000000000}`, wantPresent: true, wantRaw: "1700000000000000000"},
		{name: "String", body: `{"block_timestamp":"1700000000000000000"}`, wantPresent: true, wantRaw: "1700000000000000000"},
		{name: "Null", body: `{"block_timestamp":null}`},
		{name: "Missing", body: `{}`},
		{name: "Boolean", body: `{"block_timestamp":true}`},
		{name: "Object", body: `{"block_timestamp":{"ns":1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got txn
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.wantPresent, got.BlockTimestamp.IsPresent())
			assert.Equal(t, tt.wantRaw, got.BlockTimestamp.String())
		})
	}
}

func TestTimestamp_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(domain.TimestampFromNanos(42))
	require.NoError(t, err)
	assert.JSONEq(t, `"42"`, string(out))

	out, err = json.Marshal(domain.Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
