// Package stats contains frequency ranking and terminal reporting.
package stats

import (
	"sort"

	"github.com/verte-zerg/tokfreq/internal/model"
	"github.com/verte-zerg/tokfreq/internal/textnorm"
)

// Count tallies occurrences of each distinct token.
func Count(tokens []string) map[string]uint32 {
	counts := make(map[string]uint32)
	for _, token := range tokens {
		counts[token]++
	}
	return counts
}

// Rank returns the entries sorted by count descending, then token descending.
func Rank(counts map[string]uint32) []model.Entry {
	entries := make([]model.Entry, 0, len(counts))
	for token, count := range counts {
		entries = append(entries, model.Entry{Token: token, Count: count})
	}
	SortEntries(entries)
	return entries
}

// SortEntries sorts entries in place into ranked order.
func SortEntries(entries []model.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[j].Less(entries[i])
	})
}

// FilterProperNouns keeps entries that recur and whose ASCII-lowercased token
// was never observed starting with a lowercase letter or digit.
func FilterProperNouns(entries []model.Entry, seenLower func(string) bool) []model.Entry {
	out := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Count <= 1 {
			continue
		}
		if seenLower(textnorm.LowerASCII(e.Token)) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Counts returns the counts of a ranked list in rank order.
func Counts(entries []model.Entry) []uint32 {
	out := make([]uint32, len(entries))
	for i, e := range entries {
		out[i] = e.Count
	}
	return out
}

// Total sums the counts of all entries.
func Total(entries []model.Entry) int {
	total := 0
	for _, e := range entries {
		total += int(e.Count)
	}
	return total
}
