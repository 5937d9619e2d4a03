// Package text holds the tokenization shared by keyword extraction, density and
// taxonomy validation so all of them count the same tokens.
package text

import (
	"regexp"
	"strings"
)

// MaxNGram is the longest phrase, in tokens, that is matched against a taxonomy.
const MaxNGram = 3

// A token starts with a letter or digit and may carry inner joiners such as
// "node.js", "ci/cd" or "detail-oriented". Trailing punctuation is dropped.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}][\p{L}\p{N}+#]*(?:[./\-][\p{L}\p{N}+#]+)*`)

// A sentence ends at ., ! or ? followed by whitespace or the end of the text,
// so "node.js" or "3.5" do not split.
var sentenceEnd = regexp.MustCompile(`[.!?]+(?:\s+|$)`)

// Tokenize lowercases s and splits it into word tokens.
func Tokenize(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return tokenPattern.FindAllString(strings.ToLower(s), -1)
}

// Normalize returns the canonical phrase form of s: its tokens joined by a single space.
func Normalize(s string) string {
	return strings.Join(Tokenize(s), " ")
}

// NGram is a phrase candidate of 1..MaxNGram tokens starting at Start.
type NGram struct {
	Phrase string
	Start  int
	Size   int
}

// NGrams enumerates every phrase of 1..MaxNGram consecutive tokens in position order.
func NGrams(tokens []string) []NGram {
	out := make([]NGram, 0, len(tokens)*MaxNGram)
	for i := range tokens {
		for n := 1; n <= MaxNGram && i+n <= len(tokens); n++ {
			out = append(out, NGram{
				Phrase: strings.Join(tokens[i:i+n], " "),
				Start:  i,
				Size:   n,
			})
		}
	}
	return out
}

// WordCount counts whitespace-separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// SentenceCount counts sentences that contain at least one word.
func SentenceCount(s string) int {
	n := 0
	for _, part := range sentenceEnd.Split(s, -1) {
		if WordCount(part) > 0 {
			n++
		}
	}
	return n
}
