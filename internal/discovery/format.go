package discovery

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	separatorReplacer = strings.NewReplacer("-", " ", "_", " ")
	acronymBoundaryRe = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	camelBoundaryRe   = regexp.MustCompile(`([a-z])([A-Z])`)
)

// literalSubstitutions are applied, in order, after the generic formatting
// pass. "NUCLEO" re-gains the trailing hyphen that separator replacement
// stripped; the others expand vendor shorthand.
var literalSubstitutions = [][2]string{
	{"NUCLEO", "NUCLEO-"},
	{"DISCO", "DISCOVERY"},
	{"EVAL", "EVALUATION"},
}

// FormatName turns a raw directory name into a human-readable display name:
// separators become spaces, camel-case boundaries are split, every word is
// capitalized, and vendor shorthand is expanded. Purely cosmetic: two
// distinct raw names can format identically, so the raw name stays the key.
func FormatName(raw string) string {
	s := separatorReplacer.Replace(raw)
	s = acronymBoundaryRe.ReplaceAllString(s, "$1 $2")
	s = camelBoundaryRe.ReplaceAllString(s, "$1 $2")

	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalizeFirst(w)
	}
	s = strings.Join(words, " ")

	for _, sub := range literalSubstitutions {
		s = strings.ReplaceAll(s, sub[0], sub[1])
	}
	return s
}

func capitalizeFirst(word string) string {
	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
