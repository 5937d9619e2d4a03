package keywords

import (
	"resume-analyzer/resume/model"
	"resume-analyzer/resume/taxonomy"
)

// Analyze runs extraction, density, matching and readability over one corpus.
// SectionCompleteness depends on the document rather than the corpus and is
// left for the caller to fill.
func Analyze(c Corpus, tax *taxonomy.Taxonomy) model.AnalysisResult {
	entries := Extract(c, tax)
	match := Match(entries, tax)
	return model.AnalysisResult{
		Keywords:        entries,
		MissingKeywords: MissingKeywords(match, tax, MissingDisplayLimit),
		KeywordDensity:  Density(c, tax),
		SkillsMatch:     match,
		Readability:     Readability(c),
	}
}
