// Package utils provides common utility functions.
package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HexToUint64 converts a hex string (e.g., "0x1a") to uint64.
func HexToUint64(hexStr string) (uint64, error) {
	cleaned := strings.TrimPrefix(strings.ToLower(hexStr), "0x")
	if cleaned == "" {
		return 0, fmt.Errorf("empty hex string")
	}
	if cleaned == "0" {
		return 0, nil
	}
	return strconv.ParseUint(cleaned, 16, 64)
}

// ParseNumber parses s the way a loosely typed JSON producer expects numbers to be read:
// surrounding whitespace is ignored, an empty string is zero, "0x" prefixes are hex
// and "Infinity" is accepted. ok is false when s is not a number or is not finite.
func ParseNumber(s string) (value float64, ok bool) {
	trimmed := strings.TrimSpace(s)
	switch trimmed {
	case "":
		return 0, true
	case "Infinity", "+Infinity", "-Infinity":
		return 0, false
	}

	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "0x") {
		n, err := HexToUint64(lower)
		if err != nil {
			return 0, false
		}
		return float64(n), true
	}

	// strconv also accepts "inf", "nan" and hex floats; none of them are finite decimals.
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if (c < '0' || c > '9') && c != '.' && c != 'e' && c != '+' && c != '-' {
			return 0, false
		}
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
