// Package generator builds synthetic text whose word frequencies follow
// Zipf's law, for exercising the analysis pipeline on larger inputs.
package generator

import (
	"math"
	"math/rand"
	"strings"
	"unicode"
)

// Options control how sampled words are decorated.
type Options struct {
	// CapsPct is the probability of capitalizing a word's first letter.
	CapsPct float64
	// PunctPct is the probability of appending a mark from PunctSet.
	PunctPct float64
	PunctSet []rune
}

// Generator produces reproducible randomized text.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator with a fixed seed.
func New(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// ZipfWeights returns weights 1/rank^exponent for n ranks.
func ZipfWeights(n int, exponent float64) []float64 {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1 / math.Pow(float64(i+1), exponent)
	}
	return weights
}

// Generate samples count words, where words[i] is drawn with probability
// proportional to weights[i].
func (g *Generator) Generate(words []string, weights []float64, count int, opts Options) []string {
	if len(words) == 0 || count <= 0 {
		return nil
	}
	cumulative := make([]float64, len(words))
	total := 0.0
	for i := range words {
		w := 1.0
		if i < len(weights) {
			w = weights[i]
		}
		total += w
		cumulative[i] = total
	}

	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		r := g.rnd.Float64() * total
		idx := searchCumulative(cumulative, r)
		word := words[idx]
		word = applyCaps(g.rnd, word, opts.CapsPct)
		word = applyPunct(g.rnd, word, opts.PunctPct, opts.PunctSet)
		result = append(result, word)
	}
	return result
}

// Text joins generated words with single spaces.
func (g *Generator) Text(words []string, weights []float64, count int, opts Options) string {
	return strings.Join(g.Generate(words, weights, count, opts), " ")
}

func searchCumulative(cumulative []float64, r float64) int {
	lo, hi := 0, len(cumulative)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if r <= cumulative[mid] {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 {
		return word
	}
	if rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 {
		return word
	}
	if rnd.Float64() > punctPct {
		return word
	}
	punct := punctSet[rnd.Intn(len(punctSet))]
	return word + string(punct)
}
