package scoring

import (
	"strconv"

	"resume-analyzer/resume/keywords"
	"resume-analyzer/resume/model"
)

// Keyword density limits used by the ATS rules, in percent.
const (
	OveruseDensity  = 8.0
	UnderuseDensity = 0.5
)

// ATS level thresholds; a score below ATSFairMin is Poor.
const (
	ATSExcellentMin = 90
	ATSGoodMin      = 75
	ATSFairMin      = 40
)

// ATSInput is everything the ATS rules may inspect.
type ATSInput struct {
	Doc         model.ResumeDocument
	Density     map[string]float64
	Categories  []string
	TotalTokens int
}

// ATSRule is one row of the ATS rule table.
type ATSRule struct {
	ID        string
	Penalty   int
	Message   string
	Triggered func(ATSInput) bool
}

var atsRules = []ATSRule{
	{
		ID:      "missing_email",
		Penalty: 20,
		Message: "Missing email address: ATS systems cannot route the application to you",
		Triggered: func(in ATSInput) bool {
			return !in.Doc.HasEmail()
		},
	},
	{
		ID:      "missing_phone",
		Penalty: 10,
		Message: "Missing phone number in contact information",
		Triggered: func(in ATSInput) bool {
			return !in.Doc.HasPhone()
		},
	},
	{
		ID:      "missing_summary",
		Penalty: 10,
		Message: "No professional summary section for ATS keyword matching",
		Triggered: func(in ATSInput) bool {
			return !in.Doc.HasSummary()
		},
	},
	{
		ID:      "no_experience",
		Penalty: 25,
		Message: "No work experience entries found",
		Triggered: func(in ATSInput) bool {
			return len(in.Doc.ExperienceEntries()) < 1
		},
	},
	{
		ID:      "few_skills",
		Penalty: 10,
		Message: "Skills section lists fewer than 3 skills",
		Triggered: func(in ATSInput) bool {
			return len(in.Doc.UniqueSkills()) < 3
		},
	},
	{
		ID:      "keyword_overuse",
		Penalty: 10,
		Message: "Keyword overuse: a keyword category exceeds " + formatPercent(OveruseDensity) + " of resume text and may be flagged as stuffing",
		Triggered: func(in ATSInput) bool {
			for _, name := range in.Categories {
				if in.Density[name] > OveruseDensity {
					return true
				}
			}
			return false
		},
	},
	{
		// Only meaningful when there is text to measure; an empty resume is
		// already penalized by the missing-data rules.
		ID:      "keyword_underuse",
		Penalty: 15,
		Message: "Keyword underuse: relevant keywords make up less than " + formatPercent(UnderuseDensity) + " of resume text",
		Triggered: func(in ATSInput) bool {
			return in.TotalTokens > 0 && keywords.TotalDensity(in.Density, in.Categories) < UnderuseDensity
		},
	},
}

// ATSRules returns a copy of the rule table in evaluation order.
func ATSRules() []ATSRule {
	return append([]ATSRule(nil), atsRules...)
}

// CheckATS evaluates every rule in table order and subtracts triggered penalties from 100.
func CheckATS(in ATSInput) model.ATSCompatibility {
	score := 100
	issues := make([]string, 0, len(atsRules))
	for _, rule := range atsRules {
		if rule.Triggered(in) {
			score -= rule.Penalty
			issues = append(issues, rule.Message)
		}
	}
	score = clamp(score)
	return model.ATSCompatibility{
		Score:  score,
		Level:  ATSLevel(score),
		Issues: issues,
	}
}

// ATSLevel maps an ATS score to its level.
func ATSLevel(score int) string {
	switch {
	case score >= ATSExcellentMin:
		return model.LevelExcellent
	case score >= ATSGoodMin:
		return model.LevelGood
	case score >= ATSFairMin:
		return model.LevelFair
	default:
		return model.LevelPoor
	}
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
