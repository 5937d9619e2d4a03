package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "   ", want: nil},
		{name: "lowercases", in: "Python AND Go", want: []string{"python", "and", "go"}},
		{name: "keeps inner joiners", in: "Node.js, CI/CD; detail-oriented.", want: []string{"node.js", "ci/cd", "detail-oriented"}},
		{name: "drops trailing punctuation", in: "Led teams.", want: []string{"led", "teams"}},
		{name: "numbers and symbols", in: "Grew revenue 30% in C++", want: []string{"grew", "revenue", "30", "in", "c++"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Tokenize(tc.in))
		})
	}
}

func TestNGrams(t *testing.T) {
	grams := NGrams([]string{"machine", "learning", "ops", "team"})

	phrases := make([]string, 0, len(grams))
	for _, g := range grams {
		phrases = append(phrases, g.Phrase)
	}
	assert.Equal(t, []string{
		"machine", "machine learning", "machine learning ops",
		"learning", "learning ops", "learning ops team",
		"ops", "ops team",
		"team",
	}, phrases)
	assert.Equal(t, NGram{Phrase: "learning ops", Start: 1, Size: 2}, grams[4])
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "machine learning", Normalize("  Machine   Learning "))
	assert.Equal(t, "", Normalize(""))
}

func TestSentenceCount(t *testing.T) {
	cases := map[string]int{
		"":                                      0,
		"  ":                                    0,
		"Built APIs":                            1,
		"Built APIs. Led a team!":               2,
		"Shipped node.js services in 3.5 weeks": 1,
		"Really?! Yes... done.":                 3,
		". . .":                                 0,
	}
	for in, want := range cases {
		assert.Equal(t, want, SentenceCount(in), in)
	}
}
