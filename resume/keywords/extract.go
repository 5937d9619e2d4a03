package keywords

import (
	"math"
	"sort"
	"strings"

	"resume-analyzer/resume/model"
	"resume-analyzer/resume/taxonomy"
	"resume-analyzer/resume/text"
)

// Extract ranks the taxonomy keywords found in c. Each occurrence adds its
// segment weight, and the sum is dampened with log2(1+raw). Entries are sorted by
// score descending, then keyword ascending.
func Extract(c Corpus, tax *taxonomy.Taxonomy) []model.KeywordEntry {
	raw := make(map[string]int)
	for _, seg := range c.Segments {
		for _, gram := range text.NGrams(seg.Tokens) {
			if _, ok := tax.CategoryOf(gram.Phrase); ok {
				raw[gram.Phrase] += seg.Weight
			}
		}
	}

	out := make([]model.KeywordEntry, 0, len(raw))
	for kw, weight := range raw {
		out = append(out, model.KeywordEntry{
			Keyword: kw,
			Score:   round(math.Log2(1+float64(weight)), 4),
		})
	}
	SortEntries(out)
	return out
}

// SortEntries orders entries by score descending, then case-insensitive keyword.
func SortEntries(entries []model.KeywordEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		a, b := strings.ToLower(entries[i].Keyword), strings.ToLower(entries[j].Keyword)
		if a != b {
			return a < b
		}
		return entries[i].Keyword < entries[j].Keyword
	})
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
