package domain

import (
	"math/big"
	"strings"
)

// Native unit parameters. One NEAR is 10^24 yoctoNEAR.
const (
	NativeSymbol    = "NEAR"
	NativeDecimals  = 24
	DisplayDecimals = 4
)

var yoctoPerNear = new(big.Int).Exp(big.NewInt(10), big.NewInt(NativeDecimals), nil)

// FormatAmount converts a yoctoNEAR balance given as a base-10 integer string into NEAR,
// truncated to DisplayDecimals fractional digits. Trailing zeros are dropped, and so is
// the decimal point when nothing remains after it: "1500000000000000000000000" is "1.5".
func FormatAmount(yocto string) (string, error) {
	value, err := parseUnsignedInt(yocto)
	if err != nil {
		return "", err
	}

	whole, remainder := new(big.Int).QuoRem(value, yoctoPerNear, new(big.Int))

	fraction := remainder.String()
	if pad := NativeDecimals - len(fraction); pad > 0 {
		fraction = strings.Repeat("0", pad) + fraction
	}
	fraction = strings.TrimRight(fraction[:DisplayDecimals], "0")

	if fraction == "" {
		return whole.String(), nil
	}
	return whole.String() + "." + fraction, nil
}

// ParseAmount converts a NEAR decimal string such as "1.5" back into yoctoNEAR.
// Digits beyond NativeDecimals are truncated.
func ParseAmount(near string) (*big.Int, error) {
	trimmed := strings.TrimSpace(near)
	intPart, fracPart, hasDot := strings.Cut(trimmed, ".")
	if hasDot && fracPart == "" {
		return nil, &FormatError{Input: near}
	}
	if intPart == "" {
		intPart = "0"
	}

	whole, err := parseUnsignedInt(intPart)
	if err != nil {
		return nil, &FormatError{Input: near}
	}
	result := new(big.Int).Mul(whole, yoctoPerNear)

	if fracPart == "" {
		return result, nil
	}
	if len(fracPart) > NativeDecimals {
		fracPart = fracPart[:NativeDecimals]
	}
	fracPart += strings.Repeat("0", NativeDecimals-len(fracPart))

	fraction, err := parseUnsignedInt(fracPart)
	if err != nil {
		return nil, &FormatError{Input: near}
	}
	return result.Add(result, fraction), nil
}

// parseUnsignedInt accepts only ASCII digits. Signs, separators and blanks are rejected.
func parseUnsignedInt(s string) (*big.Int, error) {
	if s == "" {
		return nil, &FormatError{Input: s}
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, &FormatError{Input: s}
		}
	}
	value, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, &FormatError{Input: s}
	}
	return value, nil
}
