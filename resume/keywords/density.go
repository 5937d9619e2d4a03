package keywords

import (
	"resume-analyzer/resume/taxonomy"
	"resume-analyzer/resume/text"
)

// Density reports, per category, the percentage of corpus tokens covered by a
// keyword of that category, to one decimal place. A token covered by two
// overlapping keywords of the same category counts once. Every category is
// present and is 0.0 when the corpus is empty.
func Density(c Corpus, tax *taxonomy.Taxonomy) map[string]float64 {
	out := make(map[string]float64, len(tax.Categories()))
	for _, name := range tax.Categories() {
		out[name] = 0
	}
	total := c.TotalTokens()
	if total == 0 {
		return out
	}

	covered := make(map[string]int, len(out))
	for _, seg := range c.Segments {
		marks := make(map[string][]bool)
		for _, gram := range text.NGrams(seg.Tokens) {
			name, ok := tax.CategoryOf(gram.Phrase)
			if !ok {
				continue
			}
			m := marks[name]
			if m == nil {
				m = make([]bool, len(seg.Tokens))
				marks[name] = m
			}
			for i := gram.Start; i < gram.Start+gram.Size; i++ {
				if !m[i] {
					m[i] = true
					covered[name]++
				}
			}
		}
	}

	for name, n := range covered {
		out[name] = round(100*float64(n)/float64(total), 1)
	}
	return out
}

// TotalDensity sums the densities of the named categories in the given order.
func TotalDensity(density map[string]float64, categories []string) float64 {
	sum := 0.0
	for _, name := range categories {
		sum += density[name]
	}
	return sum
}
