// Package textnorm normalizes raw text before tokenization.
//
// The same Strip transform is applied to the corpus and to stop-word lists, so a
// stop word and a token are only ever compared after identical normalization.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Keep reports whether r survives punctuation stripping.
//
// Word characters (alphabetic runes, marks, decimal digits, letter numbers,
// connector punctuation and join controls), whitespace and the ASCII apostrophe are kept.
// The underscore is always removed.
func Keep(r rune) bool {
	switch {
	case r == '_':
		return false
	case r == '\'':
		return true
	case unicode.IsSpace(r):
		return true
	case unicode.In(r, unicode.L, unicode.M, unicode.Nd, unicode.Nl, unicode.Pc, unicode.Other_Alphabetic):
		return true
	case unicode.Is(unicode.Join_Control, r):
		return true
	default:
		return false
	}
}

// Strip removes every rune rejected by Keep. It is idempotent.
func Strip(s string) string {
	for i, r := range s {
		if !Keep(r) {
			return stripFrom(s, i)
		}
	}
	return s
}

func stripFrom(s string, start int) string {
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:start])
	for _, r := range s[start:] {
		if Keep(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LowerASCII folds A-Z to a-z and leaves every other byte untouched.
// Non-ASCII letters keep their case.
func LowerASCII(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			break
		}
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if c := b[i]; c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// NFC returns s in Unicode canonical composition form.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// StartsLowerOrDigit reports whether word is empty or its first byte is an ASCII
// lowercase letter or digit.
func StartsLowerOrDigit(word string) bool {
	if word == "" {
		return true
	}
	c := word[0]
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
