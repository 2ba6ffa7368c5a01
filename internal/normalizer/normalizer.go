// Package normalizer canonicalizes noisy romanized tokens before matching.
package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// substitutions is the transliteration table for dialect variants.
// Applied left-to-right in a single pass, longest pattern first, so no
// rule fires on another rule's output.
var substitutions = map[string]string{
	"ph": "f",
	"bh": "b",
	"w":  "v",
	"q":  "k",
}

// maxPattern is the longest key in substitutions.
const maxPattern = 2

// Normalize canonicalizes a raw token: lowercase, fold diacritics to
// ASCII, drop everything that is not a letter or digit, collapse letter
// repetition, and apply the transliteration table. Pure and idempotent;
// empty and non-alphanumeric input normalize to "".
func Normalize(word string) string {
	if word == "" {
		return ""
	}
	s := fold(word)
	s = collapseRuns(s)
	s = substitute(s)
	// A substitution can recreate a run next to an existing letter,
	// collapse once more so Normalize(Normalize(s)) == Normalize(s).
	return collapseRuns(s)
}

// fold lowercases the word, strips combining marks via NFD
// decomposition, and keeps only ASCII letters and digits.
func fold(word string) string {
	var result strings.Builder
	result.Grow(len(word))

	for _, r := range norm.NFD.String(strings.ToLower(word)) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// collapseRuns reduces any run of a repeated letter to a single
// occurrence. Digit runs are kept as written.
func collapseRuns(word string) string {
	var result strings.Builder
	result.Grow(len(word))

	for i := 0; i < len(word); {
		c := word[i]
		j := i + 1
		for j < len(word) && word[j] == c {
			j++
		}

		if c >= '0' && c <= '9' {
			for n := i; n < j; n++ {
				result.WriteByte(c)
			}
		} else {
			result.WriteByte(c)
		}
		i = j
	}

	return result.String()
}

// substitute applies the transliteration table in one left-to-right
// pass, trying the longest pattern at each position first.
func substitute(word string) string {
	var result strings.Builder
	result.Grow(len(word))

	for i := 0; i < len(word); {
		matched := false
		for length := maxPattern; length > 0; length-- {
			if i+length > len(word) {
				continue
			}
			if out, ok := substitutions[word[i:i+length]]; ok {
				result.WriteString(out)
				i += length
				matched = true
				break
			}
		}
		if !matched {
			result.WriteByte(word[i])
			i++
		}
	}

	return result.String()
}
