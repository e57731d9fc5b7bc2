// Package analysis turns raw text into a ranked token-frequency list.
package analysis

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"

	"github.com/verte-zerg/tokfreq/internal/wordlist"
)

// Split breaks normalized text into tokens in document order.
//
// Stripped text is split on whitespace runs. Text that still carries
// punctuation is split on Unicode word boundaries instead, so "cat." yields
// "cat" and "." while "don't" stays whole. Whitespace never forms a token.
func Split(text string, stripped bool) []string {
	if stripped {
		return strings.Fields(text)
	}
	var tokens []string
	segments := words.FromString(text)
	for segments.Next() {
		seg := segments.Value()
		if isBlank(seg) {
			continue
		}
		tokens = append(tokens, seg)
	}
	return tokens
}

func isBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Filter drops stop words and applies stem to the survivors. A nil stem keeps
// tokens as they are.
func Filter(tokens []string, stop wordlist.Set, stem func(string) string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if stop.Contains(token) {
			continue
		}
		if stem != nil {
			token = stem(token)
		}
		out = append(out, token)
	}
	return out
}
