package numbering

import (
	"strconv"
	"strings"
	"unicode"
)

// Words that carry no meaning in an abbreviation and are skipped.
var ignoredWords = map[string]struct{}{
	"and": {},
	"of":  {},
	"the": {},
	"for": {},
}

// Abbreviate derives a short uppercase code from an entity name by taking
// the first letter of each significant word: "Department of Computer
// Science" becomes "DCS". The result is truncated to maxLen when positive.
func Abbreviate(name string, maxLen int) string {
	var sb strings.Builder
	for _, word := range strings.Fields(name) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word == "" {
			continue
		}
		if _, skip := ignoredWords[strings.ToLower(word)]; skip {
			continue
		}
		r := []rune(word)[0]
		sb.WriteRune(unicode.ToUpper(r))
	}

	code := []rune(sb.String())
	if maxLen > 0 && len(code) > maxLen {
		code = code[:maxLen]
	}
	return string(code)
}

// UniqueCode resolves an abbreviation collision by appending the smallest
// numeric suffix not already taken: given existing {"CS", "CS1"}, a new
// "CS" becomes "CS2". The base itself counts as free, so a deleted base
// code is reused before any suffix. The existing slice holds every code
// that starts with the base abbreviation.
func UniqueCode(base string, existing []string) string {
	if base == "" {
		return ""
	}

	taken := make(map[string]struct{}, len(existing))
	for _, code := range existing {
		taken[code] = struct{}{}
	}

	if _, ok := taken[base]; !ok {
		return base
	}
	for i := 1; ; i++ {
		candidate := base + strconv.Itoa(i)
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}
