// Package domain defines the core domain models and business logic entities.
package domain

import (
	"fmt"
	"iter"
	"regexp"
	"strings"
)

// Account ID length bounds accepted by the NEAR protocol.
const (
	MinAccountIDLength = 2
	MaxAccountIDLength = 64
)

var (
	// Implicit accounts are the lowercase hex encoding of an ed25519 public key.
	implicitAccountRegex = regexp.MustCompile(`^[a-f0-9]{64}$`)

	// Named accounts are dot-separated labels of [a-z0-9] runs joined by single '-' or '_'.
	namedAccountRegex = regexp.MustCompile(`^(?:[a-z\d]+[-_])*[a-z\d]+(?:\.(?:[a-z\d]+[-_])*[a-z\d]+)*$`)

	// accountScanRegex finds candidates in free text. It ignores the length bounds,
	// so every match is re-checked with IsValidAccountID.
	accountScanRegex = regexp.MustCompile(`\b((?:[a-z\d]+[-_])*[a-z\d]+(?:\.(?:[a-z\d]+[-_])*[a-z\d]+)*|[a-f0-9]{64})\b`)
)

// IsValidAccountID reports whether candidate is a syntactically valid NEAR account ID.
func IsValidAccountID(candidate string) bool {
	if len(candidate) < MinAccountIDLength || len(candidate) > MaxAccountIDLength {
		return false
	}
	return implicitAccountRegex.MatchString(candidate) || namedAccountRegex.MatchString(candidate)
}

// AccountID represents a validated NEAR account ID value object.
type AccountID struct {
	value string
}

// NewAccountID creates a new AccountID from a string. Surrounding whitespace is trimmed,
// case is not folded: "Alice.near" is rejected.
func NewAccountID(id string) (AccountID, error) {
	cleanID := strings.TrimSpace(id)
	if !IsValidAccountID(cleanID) {
		return AccountID{}, fmt.Errorf("%w: %q", ErrInvalidAccountID, id)
	}
	return AccountID{value: cleanID}, nil
}

// String returns the string representation of the account ID.
func (a AccountID) String() string {
	return a.value
}

// IsZero checks if the AccountID is the zero value (empty).
func (a AccountID) IsZero() bool {
	return a.value == ""
}

// IsImplicit reports whether the account ID is the 64-character hex form.
func (a AccountID) IsImplicit() bool {
	return implicitAccountRegex.MatchString(a.value)
}

// Equals checks if two AccountID objects are equal.
func (a AccountID) Equals(other AccountID) bool {
	return a.value == other.value
}

// Span is one account ID occurrence in a text. Start and End are byte offsets, End exclusive.
type Span struct {
	Text  string
	Start int
	End   int
}

// Scanner finds account IDs in free text.
type Scanner struct {
	// IncludeBareNames also yields single-label names such as "alice". They are valid
	// top-level accounts but match almost every lowercase word in prose.
	IncludeBareNames bool
}

// Spans returns the account IDs found in text, leftmost first. The sequence is computed
// when ranged over and can be ranged over again.
func (s Scanner) Spans(text string) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		for _, loc := range accountScanRegex.FindAllStringIndex(text, -1) {
			match := text[loc[0]:loc[1]]
			if !IsValidAccountID(match) {
				continue
			}
			if !s.IncludeBareNames && !isQualified(match) {
				continue
			}
			if !yield(Span{Text: match, Start: loc[0], End: loc[1]}) {
				return
			}
		}
	}
}

// FindAccountSpans returns the dotted and implicit account IDs found in text.
func FindAccountSpans(text string) iter.Seq[Span] {
	return Scanner{}.Spans(text)
}

// isQualified reports whether a valid ID has a dot-separated suffix or is implicit.
func isQualified(id string) bool {
	return strings.Contains(id, ".") || implicitAccountRegex.MatchString(id)
}

// WordAt returns the lowercased word covering offset, where a word is a run of
// [a-zA-Z0-9._-]. An offset directly after a word selects that word.
func WordAt(text string, offset int) (word string, start, end int, ok bool) {
	if offset < 0 || offset > len(text) {
		return "", 0, 0, false
	}

	start = offset
	for start > 0 && isHoverWordByte(text[start-1]) {
		start--
	}
	end = offset
	for end < len(text) && isHoverWordByte(text[end]) {
		end++
	}
	if start == end {
		return "", 0, 0, false
	}
	return strings.ToLower(text[start:end]), start, end, true
}

func isHoverWordByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '.' || c == '_' || c == '-':
		return true
	}
	return false
}
