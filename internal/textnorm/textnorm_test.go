package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrip(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "sentence punctuation", in: "The cat sat. The cat ran.", want: "The cat sat The cat ran"},
		{name: "apostrophe kept", in: "don't stop", want: "don't stop"},
		{name: "underscore removed", in: "snake_case __init__", want: "snakecase init"},
		{name: "digits kept", in: "route 66, exit 9!", want: "route 66 exit 9"},
		{name: "quotes removed", in: `"a" “b” 'c'`, want: "a b 'c'"},
		{name: "unicode letters kept", in: "naïve café — Straße", want: "naïve café  Straße"},
		{name: "symbols removed", in: "$5 + 3% = #tag @me", want: "5  3  tag me"},
		{name: "whitespace kept", in: "a\tb\nc", want: "a\tb\nc"},
		{name: "empty", in: "", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Strip(tc.in))
		})
	}
}

func TestStripIsIdempotent(t *testing.T) {
	inputs := []string{
		"The cat sat. The cat ran.",
		`"quoted", (parenthesized) [bracketed] {braced}`,
		"mixed_under_scores and 'single' quotes",
		"e\u0301 combining mark",
	}
	for _, in := range inputs {
		once := Strip(in)
		assert.Equal(t, once, Strip(once), "input %q", in)
	}
}

func TestStripKeepsCombiningMarks(t *testing.T) {
	assert.Equal(t, "e\u0301", Strip("e\u0301!"))
}

func TestStripKeepsOtherAlphabetic(t *testing.T) {
	assert.Equal(t, "\u24b6lpha \U0001f130", Strip("\u24b6lpha \U0001f130!"))
	assert.True(t, Keep('\u24e9'))
	assert.False(t, Keep('\u2460'), "circled digits are not alphabetic")
}

func TestLowerASCII(t *testing.T) {
	assert.Equal(t, "the cat", LowerASCII("The CAT"))
	assert.Equal(t, "straÄe", LowerASCII("STRAÄE"), "non-ASCII letters keep their case")
	assert.Equal(t, "École", LowerASCII("ÉCOLE"))
	same := "already lower"
	assert.Equal(t, same, LowerASCII(same))
}

func TestNFC(t *testing.T) {
	decomposed := "cafe\u0301"
	composed := NFC(decomposed)
	require.Equal(t, "caf\u00e9", composed)
	assert.Equal(t, composed, Strip(composed))
}

func TestStartsLowerOrDigit(t *testing.T) {
	assert.True(t, StartsLowerOrDigit(""))
	assert.True(t, StartsLowerOrDigit("paris"))
	assert.True(t, StartsLowerOrDigit("9lives"))
	assert.False(t, StartsLowerOrDigit("Paris"))
	assert.False(t, StartsLowerOrDigit("'tis"))
	assert.False(t, StartsLowerOrDigit("élan"))
}
