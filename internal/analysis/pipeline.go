package analysis

import (
	"io"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/kljensen/snowball/english"

	"github.com/verte-zerg/tokfreq/internal/model"
	"github.com/verte-zerg/tokfreq/internal/stats"
	"github.com/verte-zerg/tokfreq/internal/textnorm"
	"github.com/verte-zerg/tokfreq/internal/wordlist"
)

// Result is the outcome of one pipeline run.
type Result struct {
	Entries []model.Entry
	// Tokens is the number of tokens left after stop-word filtering.
	Tokens int
}

// Counts returns the ranked counts, the input contract of the chart.
func (r Result) Counts() []uint32 {
	return stats.Counts(r.Entries)
}

// Pipeline carries the per-run state shared by every stage.
type Pipeline struct {
	cfg    model.RunConfig
	stop   wordlist.Set
	stem   func(string) string
	logger *log.Logger
}

// New builds a pipeline for cfg. stop must already be stripped.
func New(cfg model.RunConfig, stop wordlist.Set, logger *log.Logger) *Pipeline {
	if stop == nil {
		stop = wordlist.Set{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Pipeline{cfg: cfg, stop: stop, logger: logger}
	if cfg.Stem {
		p.stem = Stem
	}
	return p
}

// Stem reduces word to its Snowball English stem, keeping the letter case of
// word wherever the stem still matches it rune for rune.
func Stem(word string) string {
	return restoreCase(word, english.Stem(word, true))
}

// restoreCase copies runes of orig over stem while they agree case-insensitively.
func restoreCase(orig, stem string) string {
	if orig == stem {
		return stem
	}
	src := []rune(orig)
	out := []rune(stem)
	for i := range out {
		if i >= len(src) || unicode.ToLower(src[i]) != out[i] {
			break
		}
		out[i] = src[i]
	}
	return string(out)
}

// Normalize prepares raw text for tokenization and, when proper-noun filtering
// is on, collects lowercase evidence from the text before it is lowercased.
func (p *Pipeline) Normalize(raw string) (string, Evidence) {
	text := raw
	if p.cfg.NFC {
		text = textnorm.NFC(text)
	}
	if p.cfg.StripPunctuation {
		text = textnorm.Strip(text)
	}
	var ev Evidence
	if p.cfg.ProperNouns {
		ev = CollectEvidence(Split(text, p.cfg.StripPunctuation))
	}
	if p.cfg.Lowercase {
		text = textnorm.LowerASCII(text)
	}
	return text, ev
}

// Tokens runs normalization, splitting and filtering, returning the surviving
// tokens in document order along with the collected evidence.
func (p *Pipeline) Tokens(raw string) ([]string, Evidence) {
	text, ev := p.Normalize(raw)
	split := Split(text, p.cfg.StripPunctuation)
	tokens := Filter(split, p.stop, p.stem)
	p.logger.Debug("tokenized", "split", len(split), "kept", len(tokens), "stop_words", p.stop.Len())
	return tokens, ev
}

// Run produces the ranked frequency list for raw.
func (p *Pipeline) Run(raw string) Result {
	tokens, ev := p.Tokens(raw)
	entries := stats.Rank(stats.Count(tokens))
	if p.cfg.ProperNouns {
		before := len(entries)
		entries = stats.FilterProperNouns(entries, ev.Has)
		p.logger.Debug("proper noun filter", "before", before, "after", len(entries), "evidence", len(ev))
	}
	return Result{Entries: entries, Tokens: len(tokens)}
}
