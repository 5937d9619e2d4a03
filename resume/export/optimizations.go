package export

import (
	"regexp"
	"strings"

	"resume-analyzer/resume/model"
)

// Limits applied when building optimizations.
const (
	CompetencyLimit       = 20
	CompetencyPerCategory = 3
	SummaryKeywordWindow  = 5
)

// Matched against the original text so byte offsets stay valid for any input,
// including characters whose lowercase form has a different UTF-8 length.
var experienceWord = regexp.MustCompile(`(?i)experience`)

// Optimizations is the formatter input derived from one analysis.
type Optimizations struct {
	EnhancedSummary    string               `json:"enhanced_summary"`
	EnhancedExperience []model.Experience   `json:"enhanced_experience"`
	FormatStyle        string               `json:"format_style"`
	FontSize           string               `json:"font_size"`
	Spacing            string               `json:"spacing"`
	IncludeKeywords    bool                 `json:"include_keywords"`
	OptimizeATS        bool                 `json:"optimize_ats"`
	MissingKeywords    map[string][]string  `json:"missing_keywords"`
	TopKeywords        []model.KeywordEntry `json:"top_keywords"`
	CoreCompetencies   []string             `json:"core_competencies"`
}

// BuildOptimizations validates opts, applies defaults and derives the
// formatter payload. categories fixes the order missing keywords are read in.
func BuildOptimizations(doc model.ResumeDocument, analysis model.AnalysisResult, categories []string, opts PresentationOptions) (Optimizations, error) {
	if err := opts.Validate(); err != nil {
		return Optimizations{}, err
	}
	opts = opts.WithDefaults()

	top := analysis.TopKeywords(*opts.TopN)
	missing := make(map[string][]string, len(analysis.MissingKeywords))
	for name, kws := range analysis.MissingKeywords {
		missing[name] = append([]string{}, kws...)
	}

	summary := doc.Summary
	experience := make([]model.Experience, 0, len(doc.Experience))
	for _, e := range doc.Experience {
		if *opts.IncludeKeywords {
			e.Description = EnhanceSummary(e.Description, top)
		}
		experience = append(experience, e)
	}
	if *opts.IncludeKeywords {
		summary = EnhanceSummary(summary, top)
	}

	return Optimizations{
		EnhancedSummary:    summary,
		EnhancedExperience: experience,
		FormatStyle:        opts.FormatStyle,
		FontSize:           opts.FontSize,
		Spacing:            opts.Spacing,
		IncludeKeywords:    *opts.IncludeKeywords,
		OptimizeATS:        *opts.OptimizeATS,
		MissingKeywords:    missing,
		TopKeywords:        top,
		CoreCompetencies:   CoreCompetencies(doc.Skills, analysis.MissingKeywords, categories, *opts.IncludeKeywords),
	}, nil
}

// EnhanceSummary weaves the first leading keyword not already in the text
// after its first mention of "experience". It is applied to the summary and to
// each experience description. Text without that word is returned unchanged.
func EnhanceSummary(summary string, top []model.KeywordEntry) string {
	if summary == "" || len(top) == 0 {
		return summary
	}
	loc := experienceWord.FindStringIndex(summary)
	if loc == nil {
		return summary
	}
	lower := strings.ToLower(summary)
	if len(top) > SummaryKeywordWindow {
		top = top[:SummaryKeywordWindow]
	}
	for _, e := range top {
		if e.Keyword == "" || strings.Contains(lower, strings.ToLower(e.Keyword)) {
			continue
		}
		end := loc[1]
		return summary[:end] + " in " + e.Keyword + summary[end:]
	}
	return summary
}

// CoreCompetencies lists skills, optionally followed by a few missing keywords
// per category, trimmed, de-duplicated case-insensitively and capped.
func CoreCompetencies(skills []string, missing map[string][]string, categories []string, includeKeywords bool) []string {
	all := append([]string{}, skills...)
	if includeKeywords {
		for _, name := range categories {
			kws := missing[name]
			if len(kws) > CompetencyPerCategory {
				kws = kws[:CompetencyPerCategory]
			}
			all = append(all, kws...)
		}
	}

	seen := make(map[string]bool, len(all))
	out := make([]string, 0, CompetencyLimit)
	for _, s := range all {
		trimmed := strings.TrimSpace(s)
		key := strings.ToLower(trimmed)
		if trimmed == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
		if len(out) == CompetencyLimit {
			break
		}
	}
	return out
}
