package semantic

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// PascalCase converts a designer-facing layer name like "card item / price"
// into an identifier-safe PascalCase name.
func PascalCase(name string) string {
	var sb strings.Builder
	for _, word := range splitWords(name) {
		sb.WriteString(titleCaser.String(word))
	}
	return sb.String()
}

// CamelCase converts a layer name into a camelCase identifier.
func CamelCase(name string) string {
	pascal := PascalCase(name)
	if pascal == "" {
		return ""
	}
	return strings.ToLower(pascal[:1]) + pascal[1:]
}

// splitWords splits on any non-alphanumeric rune and on lower-to-upper
// casing boundaries.
func splitWords(name string) []string {
	var words []string
	var current strings.Builder
	var prev rune

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for _, r := range name {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
		prev = r
	}
	flush()
	return words
}
