package strutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// words splits s into lowercase word segments on separators (anything
// that is not a letter or digit) and on case boundaries, so
// "parseHTTPResponse", "parse_http_response" and "Parse HTTP response"
// all yield the same segments.
func words(s string) []string {
	var out []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			out = append(out, strings.ToLower(cur.String()))
			cur.Reset()
		}
	}

	rs := []rune(s)
	for i, r := range rs {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r):
			// Boundary before an upper rune that follows a lower rune or
			// digit, or that ends an acronym run ("HTTPServer" -> http, server).
			if i > 0 && (unicode.IsLower(rs[i-1]) || unicode.IsDigit(rs[i-1]) ||
				(unicode.IsUpper(rs[i-1]) && i+1 < len(rs) && unicode.IsLower(rs[i+1]))) {
				flush()
			}
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	return out
}

// Camel converts s to camelCase.
func Camel(s string) string {
	ws := words(s)
	if len(ws) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(ws[0])
	for _, w := range ws[1:] {
		b.WriteString(Capitalize(w))
	}
	return b.String()
}

// Pascal converts s to PascalCase.
func Pascal(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(Capitalize(w))
	}
	return b.String()
}

// Snake converts s to snake_case.
func Snake(s string) string {
	return strings.Join(words(s), "_")
}

// Kebab converts s to kebab-case.
func Kebab(s string) string {
	return strings.Join(words(s), "-")
}

// Capitalize upper-cases the first rune of s and leaves the rest as is.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	rs := []rune(s)
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}

// Title converts s to language-neutral title case, word by word.
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}

// RemoveDiacritics strips combining marks after NFD decomposition, so
// "Café" becomes "Cafe". On a transform failure the input is returned
// unchanged.
func RemoveDiacritics(s string) string {
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(chain, s)
	if err != nil {
		return s
	}
	return out
}
