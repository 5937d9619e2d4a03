package recommendations

import "resume-analyzer/resume/model"

// Rule severities.
const (
	SeverityCritical = "critical"
	SeverityNormal   = "normal"
)

// Input is everything computed before recommendations run.
type Input struct {
	Doc             model.ResumeDocument
	Sections        model.SectionScores
	ATS             model.ATSCompatibility
	Match           model.SkillsMatch
	MissingKeywords map[string][]string
	Density         map[string]float64
	Categories      []string
	TotalScore      int
}

// Rule is one row of the recommendation table. Message may depend on the
// input; Triggered decides whether the rule fires.
type Rule struct {
	ID        string
	Severity  string
	Message   func(Input) string
	Triggered func(Input) bool
}

// Result splits triggered rule messages by severity, each in table order.
type Result struct {
	CriticalIssues  []string
	Recommendations []string
}
