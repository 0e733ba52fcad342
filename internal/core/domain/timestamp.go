package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"time"

	"near_account_lookup/internal/utils"
)

// UnknownTime is rendered for activity whose block timestamp is missing or unusable.
const UnknownTime = "unknown time"

// DefaultTimeLayout renders times the way an en-US locale prints a date and time.
const DefaultTimeLayout = "1/2/2006, 3:04:05 PM"

// maxDateMillis is the largest distance from the epoch, in milliseconds, that a
// calendar date may have; larger values cannot be represented as a date.
const maxDateMillis = 8.64e15

// Timestamp is an optional nanosecond block timestamp as reported by an indexer,
// which may encode it as a JSON number, a numeric string, null, or leave it out.
type Timestamp struct {
	raw     string
	present bool
}

// TimestampFromNanos creates a Timestamp from nanoseconds since the Unix epoch.
func TimestampFromNanos(ns int64) Timestamp {
	return Timestamp{raw: strconv.FormatInt(ns, 10), present: true}
}

// TimestampFromString creates a Timestamp from a string that may or may not be numeric.
func TimestampFromString(s string) Timestamp {
	return Timestamp{raw: s, present: true}
}

// IsPresent reports whether a value was supplied at all.
func (t Timestamp) IsPresent() bool {
	return t.present
}

// String returns the raw value as supplied.
func (t Timestamp) String() string {
	return t.raw
}

// UnmarshalJSON accepts numbers and strings. null, booleans, arrays and objects
// leave the Timestamp absent instead of failing the enclosing document.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	*t = Timestamp{}

	if len(trimmed) == 0 {
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*t = TimestampFromString(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*t = Timestamp{raw: string(trimmed), present: true}
	}
	return nil
}

// MarshalJSON writes the raw value back as a string, or null when absent.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if !t.present {
		return []byte("null"), nil
	}
	return json.Marshal(t.raw)
}

// Time converts the timestamp to a time. ok is false when the value is absent,
// not a finite number, zero, or too far from the epoch to be a date.
func (t Timestamp) Time() (time.Time, bool) {
	if !t.present {
		return time.Time{}, false
	}
	ns, ok := utils.ParseNumber(t.raw)
	if !ok || ns == 0 {
		return time.Time{}, false
	}

	millis := math.Floor(ns / 1_000_000)
	if math.Abs(millis) > maxDateMillis {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(millis)), true
}

// FormatTimestamp renders ts in loc using layout, or UnknownTime when ts has no usable value.
// A nil loc means time.Local and an empty layout means DefaultTimeLayout.
func FormatTimestamp(ts Timestamp, loc *time.Location, layout string) string {
	tm, ok := ts.Time()
	if !ok {
		return UnknownTime
	}
	if loc == nil {
		loc = time.Local
	}
	if layout == "" {
		layout = DefaultTimeLayout
	}
	return tm.In(loc).Format(layout)
}
