package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tokfreq/internal/model"
	"github.com/verte-zerg/tokfreq/internal/stats"
	"github.com/verte-zerg/tokfreq/internal/wordlist"
)

const catText = "The cat sat. The cat ran."

func run(t *testing.T, cfg model.RunConfig, text string) Result {
	t.Helper()
	stop, err := wordlist.StopWords(cfg.RemoveStopWords, "")
	require.NoError(t, err)
	return New(cfg, stop, nil).Run(text)
}

func TestRunLowercasedWithoutStopWords(t *testing.T) {
	cfg := model.RunConfig{StripPunctuation: true, Lowercase: true}
	p := New(cfg, nil, nil)

	tokens, _ := p.Tokens(catText)
	assert.Equal(t, []string{"the", "cat", "sat", "the", "cat", "ran"}, tokens)

	res := p.Run(catText)
	expected := []model.Entry{
		{Token: "the", Count: 2},
		{Token: "cat", Count: 2},
		{Token: "sat", Count: 1},
		{Token: "ran", Count: 1},
	}
	assert.Equal(t, expected, res.Entries)
	assert.Equal(t, 6, res.Tokens)
	assert.Equal(t, []uint32{2, 2, 1, 1}, res.Counts())
}

func TestRunRemovesStopWords(t *testing.T) {
	res := run(t, model.RunConfig{StripPunctuation: true, Lowercase: true, RemoveStopWords: true}, catText)

	for _, e := range res.Entries {
		assert.NotEqual(t, "the", e.Token)
	}
	assert.Equal(t, 3, stats.Total(res.Entries))
	assert.Equal(t, 3, res.Tokens)
}

func TestStopWordsNeedLowercase(t *testing.T) {
	res := run(t, model.RunConfig{StripPunctuation: true, RemoveStopWords: true}, catText)
	assert.Equal(t, model.Entry{Token: "cat", Count: 2}, res.Entries[0])
	assert.Contains(t, res.Entries, model.Entry{Token: "The", Count: 2})
}

func TestStopWordsMatchApostrophes(t *testing.T) {
	res := run(t, model.RunConfig{StripPunctuation: true, Lowercase: true, RemoveStopWords: true}, "Don't panic. \"Don't\" panic!")
	assert.Equal(t, []model.Entry{{Token: "panic", Count: 2}}, res.Entries)
}

func TestRunEmptyInput(t *testing.T) {
	for _, cfg := range []model.RunConfig{
		{StripPunctuation: true},
		{StripPunctuation: false, ProperNouns: true},
		{StripPunctuation: true, Lowercase: true, Stem: true, RemoveStopWords: true, ProperNouns: true},
	} {
		res := run(t, cfg, "")
		assert.Empty(t, res.Entries)
		assert.Zero(t, res.Tokens)
		assert.Empty(t, res.Counts())
	}
}

func TestRunStemming(t *testing.T) {
	res := run(t, model.RunConfig{StripPunctuation: true, Lowercase: true, Stem: true}, "running runs run")
	assert.Equal(t, []model.Entry{{Token: "run", Count: 3}}, res.Entries)
}

func TestStemKeepsCase(t *testing.T) {
	assert.Equal(t, "Run", Stem("Running"))
	assert.Equal(t, "RUN", Stem("RUNNING"))
	assert.Equal(t, "run", Stem("running"))

	upper, lower := Stem("ÉCOLE"), Stem("école")
	assert.True(t, strings.HasPrefix(upper, "É"), upper)
	assert.True(t, strings.HasPrefix(lower, "é"), lower)
	assert.NotEqual(t, upper, lower)
}

func TestRunStemmingWithoutLowercaseKeepsForms(t *testing.T) {
	res := run(t, model.RunConfig{StripPunctuation: true, Stem: true}, "Running running ÉCOLE école")
	require.Len(t, res.Entries, 4)
	tokens := map[string]bool{}
	for _, e := range res.Entries {
		assert.Equal(t, uint32(1), e.Count)
		tokens[e.Token] = true
	}
	assert.True(t, tokens["Run"])
	assert.True(t, tokens["run"])
}

func TestRunRetainsPunctuation(t *testing.T) {
	cfg := model.RunConfig{StripPunctuation: false, Lowercase: true}
	tokens, _ := New(cfg, nil, nil).Tokens(catText)
	assert.Equal(t, []string{"the", "cat", "sat", ".", "the", "cat", "ran", "."}, tokens)

	res := New(cfg, nil, nil).Run(catText)
	assert.Equal(t, model.Entry{Token: "the", Count: 2}, res.Entries[0])
	assert.Contains(t, res.Entries, model.Entry{Token: ".", Count: 2})
}

func TestRunProperNouns(t *testing.T) {
	text := "Alice met Bob. Alice smiled. Bob left. The end. the end. Carol once."
	cfg := model.RunConfig{StripPunctuation: true, ProperNouns: true}
	res := run(t, cfg, text)
	assert.Equal(t, []model.Entry{
		{Token: "Bob", Count: 2},
		{Token: "Alice", Count: 2},
	}, res.Entries)
}

func TestRunProperNounsWithLowercase(t *testing.T) {
	text := "Paris is big. Paris is old. paris"
	res := run(t, model.RunConfig{StripPunctuation: true, Lowercase: true, ProperNouns: true}, text)
	assert.Empty(t, res.Entries, "paris was seen lowercase")

	res = run(t, model.RunConfig{StripPunctuation: true, Lowercase: true, ProperNouns: true}, "Paris is big. Paris is old.")
	assert.Equal(t, []model.Entry{{Token: "paris", Count: 2}}, res.Entries)
}

func TestProperNounOutputIsSubset(t *testing.T) {
	text := "Mars and Venus. Mars rises, Venus sets; mars bars. 3 Kings and 3 kings."
	for _, base := range []model.RunConfig{
		{StripPunctuation: true},
		{StripPunctuation: true, Lowercase: true},
		{StripPunctuation: false},
		{StripPunctuation: true, Stem: true, RemoveStopWords: true},
	} {
		all := run(t, base, text)
		withFilter := base
		withFilter.ProperNouns = true
		filtered := run(t, withFilter, text)

		set := map[model.Entry]bool{}
		for _, e := range all.Entries {
			set[e] = true
		}
		for _, e := range filtered.Entries {
			assert.True(t, set[e], "entry %v missing from unfiltered run with %+v", e, base)
		}
	}
}

func TestCountsSumToSurvivingTokens(t *testing.T) {
	text := "A rose is a rose is a rose. Is it? It is!"
	for _, cfg := range []model.RunConfig{
		{StripPunctuation: true},
		{StripPunctuation: true, Lowercase: true, RemoveStopWords: true},
		{StripPunctuation: false, Stem: true},
	} {
		res := run(t, cfg, text)
		assert.Equal(t, res.Tokens, stats.Total(res.Entries), "cfg %+v", cfg)
	}
}

func TestSplitIsIdempotentUnderRejoin(t *testing.T) {
	text := "  the\tcat \n\n sat  "
	first := Split(text, true)
	assert.Equal(t, first, Split(strings.Join(first, " "), true))

	retained := Split("Hi, there... don't go!", false)
	assert.Equal(t, retained, Split(strings.Join(retained, " "), false))
}

func TestSplitRetainedPunctuation(t *testing.T) {
	assert.Equal(t, []string{"don't", "stop", ",", "cat", "."}, Split("don't stop, cat.", false))
	assert.Empty(t, Split(" \t\n", false))
}

func TestCollectEvidence(t *testing.T) {
	ev := CollectEvidence([]string{"Paris", "paris", "9lives", "Rome", "", "'tis"})
	assert.True(t, ev.Has("paris"))
	assert.True(t, ev.Has("9lives"))
	assert.True(t, ev.Has(""))
	assert.False(t, ev.Has("Paris"))
	assert.False(t, ev.Has("Rome"))
	assert.False(t, ev.Has("'tis"))
}

func TestFilter(t *testing.T) {
	stop := wordlist.BuildStopSet(true, []string{"a"})
	out := Filter([]string{"a", "cats", "a", "dogs"}, stop, nil)
	assert.Equal(t, []string{"cats", "dogs"}, out)

	out = Filter([]string{"a", "cats"}, stop, Stem)
	assert.Equal(t, []string{"cat"}, out)
}
