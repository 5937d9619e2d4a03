package keywords

import (
	"strings"

	"resume-analyzer/resume/model"
	"resume-analyzer/resume/taxonomy"
)

// MissingDisplayLimit caps missing keywords reported per category.
const MissingDisplayLimit = 8

// Match compares extracted keywords, case-insensitively, against every
// taxonomy keyword. Matched and Missing keep the taxonomy's declared order and
// Missing is not truncated.
func Match(entries []model.KeywordEntry, tax *taxonomy.Taxonomy) model.SkillsMatch {
	found := make(map[string]bool, len(entries))
	for _, e := range entries {
		found[strings.ToLower(e.Keyword)] = true
	}

	match := model.SkillsMatch{
		Matched: make(map[string][]string),
		Missing: make(map[string][]string),
	}
	for _, name := range tax.Categories() {
		matched := []string{}
		missing := []string{}
		for _, kw := range tax.Keywords(name) {
			if found[kw] {
				matched = append(matched, kw)
			} else {
				missing = append(missing, kw)
			}
		}
		match.Matched[name] = matched
		match.Missing[name] = missing
		match.TotalMatches += len(matched)
	}

	if total := tax.Size(); total > 0 {
		match.MatchPercentage = clampPercent(round(100*float64(match.TotalMatches)/float64(total), 1))
	}
	return match
}

// MissingKeywords truncates each category's missing list to limit entries.
func MissingKeywords(match model.SkillsMatch, tax *taxonomy.Taxonomy, limit int) map[string][]string {
	out := make(map[string][]string, len(match.Missing))
	for _, name := range tax.Categories() {
		missing := match.Missing[name]
		if len(missing) > limit {
			missing = missing[:limit]
		}
		out[name] = append([]string{}, missing...)
	}
	return out
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
