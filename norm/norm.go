// Package norm normalizes dataset text to plain ASCII.
package norm

import (
	"strings"
	"unicode"
)

// replacements maps every non-ASCII character that appears in the card
// dataset to its ASCII rendition. Built once, never mutated.
var replacements = map[rune]string{
	'®': "",
	'Æ': "AE",
	'à': "a", 'á': "a", 'â': "a", 'ä': "a",
	'è': "e", 'é': "e", 'ê': "e", 'ë': "e",
	'ì': "i", 'í': "i", 'î': "i", 'ï': "i",
	'ò': "o", 'ó': "o", 'ô': "o", 'ö': "o",
	'ù': "u", 'ú': "u", 'û': "u", 'ü': "u",
	'—': "-",
	'‘': "'", '’': "'",
}

// Transliterate replaces accented and special characters with their
// ASCII equivalents. Characters outside the replacement table pass
// through unchanged.
func Transliterate(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	for _, r := range s {
		if replacement, found := replacements[r]; found {
			sb.WriteString(replacement)
		} else {
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// Capitalize upper-cases the first character of a string, leaving the
// rest untouched.
func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	a := []rune(s)
	a[0] = unicode.ToUpper(a[0])
	return string(a)
}

// Uncapitalize lower-cases the first character of a string, leaving the
// rest untouched.
func Uncapitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	a := []rune(s)
	a[0] = unicode.ToLower(a[0])
	return string(a)
}
