package recommendations

import (
	"strings"

	"resume-analyzer/resume/model"
	"resume-analyzer/resume/scoring"
)

// Keyword suggestion limits.
const (
	SuggestionPerCategory = 3
	SuggestionLimit       = 5
	SuggestionMatchBelow  = 50.0
	LowTotalScore         = 50
)

func static(msg string) func(Input) string {
	return func(Input) string { return msg }
}

var rules = []Rule{
	// critical
	{
		ID:       "no_email",
		Severity: SeverityCritical,
		Message:  static("No contact email: add an email address so recruiters can reach you"),
		Triggered: func(in Input) bool {
			return !in.Doc.HasEmail()
		},
	},
	{
		ID:       "no_contact_method",
		Severity: SeverityCritical,
		Message:  static("No contact method: provide at least an email address or a phone number"),
		Triggered: func(in Input) bool {
			return !in.Doc.HasEmail() && !in.Doc.HasPhone()
		},
	},
	{
		ID:       "no_experience",
		Severity: SeverityCritical,
		Message:  static("No work experience listed"),
		Triggered: func(in Input) bool {
			return len(in.Doc.ExperienceEntries()) == 0
		},
	},
	{
		ID:       "zero_skills",
		Severity: SeverityCritical,
		Message:  static("Resume has zero skills listed"),
		Triggered: func(in Input) bool {
			return len(in.Doc.UniqueSkills()) == 0
		},
	},
	{
		ID:       "ats_poor",
		Severity: SeverityCritical,
		Message:  static("ATS compatibility is Poor: automated screening is likely to reject this resume"),
		Triggered: func(in Input) bool {
			return in.ATS.Level == model.LevelPoor
		},
	},
	{
		ID:       "low_total",
		Severity: SeverityCritical,
		Message:  static("Overall resume score is below average"),
		Triggered: func(in Input) bool {
			return in.TotalScore < LowTotalScore
		},
	},

	// normal
	{
		ID:       "contact_incomplete",
		Severity: SeverityNormal,
		Message:  static("Add complete contact information including name, email, phone number and location"),
		Triggered: func(in Input) bool {
			return in.Sections.Contact < 100
		},
	},
	{
		ID:       "summary_missing",
		Severity: SeverityNormal,
		Message:  static("Write a professional summary of 20 to 60 words"),
		Triggered: func(in Input) bool {
			return !in.Doc.HasSummary()
		},
	},
	{
		ID:       "summary_short",
		Severity: SeverityNormal,
		Message:  static("Expand your professional summary to at least 20 words"),
		Triggered: func(in Input) bool {
			return in.Doc.HasSummary() && in.Sections.Summary == 40
		},
	},
	{
		ID:       "summary_long",
		Severity: SeverityNormal,
		Message:  static("Shorten your professional summary to 60 words or fewer"),
		Triggered: func(in Input) bool {
			return in.Sections.Summary == 60
		},
	},
	{
		ID:       "experience_thin",
		Severity: SeverityNormal,
		Message:  static("Add more detailed work experience with specific achievements"),
		Triggered: func(in Input) bool {
			return len(in.Doc.ExperienceEntries()) > 0 && in.Sections.Experience < 70
		},
	},
	{
		ID:       "no_quantified_achievements",
		Severity: SeverityNormal,
		Message:  static("No quantifiable achievements in experience: add numbers, percentages or amounts"),
		Triggered: func(in Input) bool {
			entries := in.Doc.ExperienceEntries()
			return len(entries) > 0 && scoring.QuantifiedEntries(entries) == 0
		},
	},
	{
		ID:       "education_missing",
		Severity: SeverityNormal,
		Message:  static("Add your education history"),
		Triggered: func(in Input) bool {
			return in.Sections.Education == 0
		},
	},
	{
		ID:       "education_incomplete",
		Severity: SeverityNormal,
		Message:  static("Complete your education entries with both degree and institution"),
		Triggered: func(in Input) bool {
			return in.Sections.Education == 50
		},
	},
	{
		ID:       "few_skills",
		Severity: SeverityNormal,
		Message:  static("Include more relevant technical and soft skills"),
		Triggered: func(in Input) bool {
			n := len(in.Doc.UniqueSkills())
			return n > 0 && n < 5
		},
	},
	{
		ID:       "keyword_suggestion",
		Severity: SeverityNormal,
		Message: func(in Input) string {
			return "Consider adding these keywords: " + strings.Join(SuggestedKeywords(in), ", ")
		},
		Triggered: func(in Input) bool {
			return in.Match.MatchPercentage < SuggestionMatchBelow && len(SuggestedKeywords(in)) > 0
		},
	},
	{
		ID:       "keyword_overuse",
		Severity: SeverityNormal,
		Message:  static("Reduce keyword repetition so the resume is not flagged for keyword stuffing"),
		Triggered: func(in Input) bool {
			for _, name := range in.Categories {
				if in.Density[name] > scoring.OveruseDensity {
					return true
				}
			}
			return false
		},
	},
}

// Rules returns a copy of the rule table in evaluation order.
func Rules() []Rule {
	return append([]Rule(nil), rules...)
}

// SuggestedKeywords takes the first few missing keywords of each category in
// taxonomy order, capped at SuggestionLimit.
func SuggestedKeywords(in Input) []string {
	out := make([]string, 0, SuggestionLimit)
	for _, name := range in.Categories {
		missing := in.MissingKeywords[name]
		if len(missing) > SuggestionPerCategory {
			missing = missing[:SuggestionPerCategory]
		}
		for _, kw := range missing {
			if len(out) == SuggestionLimit {
				return out
			}
			out = append(out, kw)
		}
	}
	return out
}
