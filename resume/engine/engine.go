// Package engine runs the full analysis pipeline over one resume document.
//
// The engine is a pure function of the document and its taxonomy. It holds no
// mutable state, so a single Engine may be shared across goroutines.
package engine

import (
	"resume-analyzer/resume/keywords"
	"resume-analyzer/resume/model"
	"resume-analyzer/resume/recommendations"
	"resume-analyzer/resume/scoring"
	"resume-analyzer/resume/taxonomy"
)

// Report is the complete output of one analysis.
type Report struct {
	Analysis model.AnalysisResult `json:"analysis"`
	Score    model.Score          `json:"score"`
}

// Option configures an Engine.
type Option func(*Engine)

// WithTaxonomy replaces the built-in keyword table. A nil taxonomy is ignored.
func WithTaxonomy(tax *taxonomy.Taxonomy) Option {
	return func(e *Engine) {
		if tax != nil {
			e.tax = tax
		}
	}
}

// Engine scores resumes against a fixed taxonomy.
type Engine struct {
	tax *taxonomy.Taxonomy
}

// New builds an Engine using the built-in taxonomy unless overridden.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.tax == nil {
		e.tax = taxonomy.Default()
	}
	return e
}

// Taxonomy returns the engine's default keyword table.
func (e *Engine) Taxonomy() *taxonomy.Taxonomy {
	return e.tax
}

// Analyze scores doc against the engine taxonomy.
func (e *Engine) Analyze(doc model.ResumeDocument) Report {
	return e.AnalyzeWith(doc, nil)
}

// AnalyzeWith scores doc against tax, falling back to the engine taxonomy when
// tax is nil.
func (e *Engine) AnalyzeWith(doc model.ResumeDocument, tax *taxonomy.Taxonomy) Report {
	if tax == nil {
		tax = e.tax
	}
	corpus := keywords.NewCorpus(doc)
	analysis := keywords.Analyze(corpus, tax)
	analysis.SectionCompleteness = doc.Completeness()
	categories := tax.Categories()

	sections := scoring.ScoreSections(doc)
	ats := scoring.CheckATS(scoring.ATSInput{
		Doc:         doc,
		Density:     analysis.KeywordDensity,
		Categories:  categories,
		TotalTokens: corpus.TotalTokens(),
	})
	total := scoring.Aggregate(sections, ats.Score, analysis.SkillsMatch.MatchPercentage)

	recs := recommendations.Generate(recommendations.Input{
		Doc:             doc,
		Sections:        sections,
		ATS:             ats,
		Match:           analysis.SkillsMatch,
		MissingKeywords: analysis.MissingKeywords,
		Density:         analysis.KeywordDensity,
		Categories:      categories,
		TotalScore:      total,
	})

	return Report{
		Analysis: analysis,
		Score: model.Score{
			TotalScore:       total,
			Grade:            scoring.Grade(total),
			SectionScores:    sections,
			ATSCompatibility: ats,
			CriticalIssues:   recs.CriticalIssues,
			Recommendations:  recs.Recommendations,
		},
	}
}
