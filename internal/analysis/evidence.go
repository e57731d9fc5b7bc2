package analysis

import "github.com/verte-zerg/tokfreq/internal/textnorm"

// Evidence holds words seen starting with a lowercase letter or digit. A token
// found here is not treated as a proper noun.
type Evidence map[string]struct{}

// CollectEvidence scans words before any lowercasing and records every word
// whose first character is absent, an ASCII lowercase letter, or an ASCII digit.
func CollectEvidence(words []string) Evidence {
	ev := Evidence{}
	for _, w := range words {
		if textnorm.StartsLowerOrDigit(w) {
			ev[w] = struct{}{}
		}
	}
	return ev
}

// Has reports whether word was observed lowercase- or digit-initial.
func (e Evidence) Has(word string) bool {
	_, ok := e[word]
	return ok
}
