package numbering

import (
	"errors"
	"fmt"
	"strings"
)

// Numbering errors
var (
	// ErrOutOfRange is returned when a code falls outside the scheme's allowed range.
	ErrOutOfRange = errors.New("code is out of the allowed range")
	// ErrExhausted is returned when the scheme has no codes left to assign.
	ErrExhausted = errors.New("numbering scheme exhausted")
)

// Scheme describes how numeric codes for one entity family are generated,
// rendered and validated. Schemes are immutable value types; the zero value
// is not usable, construct one via config or the entity defaults below.
type Scheme struct {
	Min       int
	Max       int
	Width     int
	Prefix    string
	Suffix    string
	Separator string
}

// Default schemes per entity family. Colleges and departments share a
// two-digit range; programs get three digits.
var (
	CollegeScheme    = Scheme{Min: 1, Max: 99, Width: 2, Separator: "-"}
	DepartmentScheme = Scheme{Min: 1, Max: 99, Width: 2, Separator: "-"}
	ProgramScheme    = Scheme{Min: 1, Max: 999, Width: 3, Separator: "-"}
)

// Next computes the code following the current maximum assigned one.
// A current value below Min (including zero for "none assigned yet")
// yields Min. Returns ErrExhausted once Max is reached.
//
// Next is pure; the caller is responsible for reading the current maximum
// and inserting the result inside a single transaction, retrying on a
// unique-constraint violation. That retry loop is the concurrency contract:
// two simultaneous creations may compute the same candidate, but only one
// insert can commit, and the loser recomputes.
func (s Scheme) Next(current int) (int, error) {
	if current < s.Min-1 {
		current = s.Min - 1
	}
	if current >= s.Max {
		return 0, fmt.Errorf("%w: all codes between %d and %d are assigned", ErrExhausted, s.Min, s.Max)
	}
	return current + 1, nil
}

// Validate checks that a code conforms to the scheme's range.
func (s Scheme) Validate(code int) error {
	if code < s.Min || code > s.Max {
		return fmt.Errorf("%w: code must be between %d and %d, got %d", ErrOutOfRange, s.Min, s.Max, code)
	}
	return nil
}

// Format renders a stored code as its display string, zero-padded to the
// scheme width with optional prefix/suffix joined by the separator.
// Codes below Min are treated as absent and render as the empty string.
func (s Scheme) Format(code int) string {
	if code < s.Min {
		return ""
	}

	formatted := s.pad(code)
	if s.Prefix != "" {
		formatted = s.Prefix + s.Separator + formatted
	}
	if s.Suffix != "" {
		formatted = formatted + s.Separator + s.Suffix
	}
	return formatted
}

// FormatScoped renders a code that lives inside a parent's numbering scope,
// e.g. department 1 of college 12 renders as "12-01". When the parent code
// is absent the child renders standalone.
func (s Scheme) FormatScoped(parentCode, code int) string {
	if code < s.Min {
		return ""
	}
	if parentCode < 1 {
		return s.Format(code)
	}
	return s.pad(parentCode) + s.Separator + s.pad(code)
}

func (s Scheme) pad(code int) string {
	digits := fmt.Sprintf("%d", code)
	if len(digits) >= s.Width {
		return digits
	}
	return strings.Repeat("0", s.Width-len(digits)) + digits
}
