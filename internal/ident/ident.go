// Package ident derives generated-code identifiers from catalog names.
package ident

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Words splits a catalog name into lower-case words. Separators are any
// non-letter, non-digit rune; a lower-to-upper transition also starts a word,
// so "empName", "EMP_NAME" and "emp name" all split to [emp name].
func Words(s string) []string {
	var (
		words []string
		cur   []rune
		prev  rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
		prev = r
	}
	flush()
	return words
}

// Snake returns lower_snake_case.
func Snake(s string) string {
	return strings.Join(Words(s), "_")
}

// Pascal returns UpperCamelCase.
func Pascal(s string) string {
	title := cases.Title(language.Und)
	var b strings.Builder
	for _, w := range Words(s) {
		b.WriteString(title.String(w))
	}
	return b.String()
}

// Join combines name parts with an underscore before casing, so a table and
// column pair becomes a single qualified identifier.
func Join(parts ...string) string {
	nonEmpty := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "_")
}

// Safe prefixes an identifier that would otherwise start with a digit or be
// empty.
func Safe(id string) string {
	if id == "" {
		return "_"
	}
	if unicode.IsDigit([]rune(id)[0]) {
		return "_" + id
	}
	return id
}
