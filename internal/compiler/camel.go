package compiler

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// runePredicate reports whether a rune is acceptable at some position.
type runePredicate func(rune) bool

// namePredicate reports whether a whole identifier is acceptable.
type namePredicate func(string) bool

// firstRune applies p to the first rune; the empty string fails.
func firstRune(p runePredicate) namePredicate {
	return func(s string) bool {
		r, size := utf8.DecodeRuneInString(s)
		return size > 0 && r != utf8.RuneError && p(r)
	}
}

// restRunes applies p to every rune after the first.
func restRunes(p runePredicate) namePredicate {
	return func(s string) bool {
		_, size := utf8.DecodeRuneInString(s)
		for _, r := range s[size:] {
			if r == utf8.RuneError || !p(r) {
				return false
			}
		}
		return true
	}
}

func allOf(ps ...namePredicate) namePredicate {
	return func(s string) bool {
		for _, p := range ps {
			if !p(s) {
				return false
			}
		}
		return true
	}
}

func alphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

var camelCase = allOf(
	firstRune(unicode.IsUpper),
	restRunes(alphanumeric),
)

// IsCamelCase reports whether s starts with an upper-case letter and
// contains only letters and digits: IsPaid, Http2Enabled.
// is_paid, isPaid, Is-Paid and the empty string are rejected.
func IsCamelCase(s string) bool {
	return camelCase(s)
}

// camelHint suggests a CamelCase spelling of s by splitting on anything that
// is not a letter or digit and title-casing each part. It returns "" when
// no CamelCase spelling can be derived.
func camelHint(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return !alphanumeric(r) })
	caser := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(caser.String(p))
	}
	hint := b.String()
	if hint == s || !IsCamelCase(hint) {
		return ""
	}
	return hint
}
