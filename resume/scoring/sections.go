// Package scoring rates resume sections, checks ATS hazards and combines the
// sub-scores into the graded total.
package scoring

import (
	"math"
	"regexp"

	"resume-analyzer/resume/model"
	"resume-analyzer/resume/text"
)

// Experience scoring points.
const (
	ExperienceEntryPoints  = 20
	ExperienceMetricPoints = 15
)

// Summary word-count bands.
const (
	SummaryShortWords = 20
	SummaryLongWords  = 60
)

// A quantifiable metric is a number tied to a percent, currency, multiplier,
// magnitude or countable unit.
var metricPattern = regexp.MustCompile(`(?i)(?:[$€£¥]\s?\d[\d,.]*|\d[\d,.]*\s?(?:%|percent\b|x\b|k\b|m\b|bn\b|million\b|billion\b|thousand\b|hours?\b|days?\b|weeks?\b|months?\b|years?\b|users?\b|customers?\b|clients?\b|people\b|employees\b|engineers\b|members\b|projects?\b|teams?\b|ms\b|seconds?\b|requests?\b|transactions?\b|dollars?\b|usd\b|eur\b))`)

// HasQuantifiableMetric reports whether s contains a measurable figure such as
// "30%", "$2M" or "12 engineers".
func HasQuantifiableMetric(s string) bool {
	return metricPattern.MatchString(s)
}

// ScoreSections rates every section independently.
func ScoreSections(doc model.ResumeDocument) model.SectionScores {
	return model.SectionScores{
		Contact:    ScoreContact(doc.Contact),
		Summary:    ScoreSummary(doc.Summary),
		Experience: ScoreExperience(doc.ExperienceEntries()),
		Education:  ScoreEducation(doc.EducationEntries()),
		Skills:     ScoreSkills(doc.UniqueSkills()),
	}
}

// ScoreContact is the share of filled contact fields.
func ScoreContact(c model.Contact) int {
	return clamp(int(math.Round(100 * float64(c.FilledContactFields()) / 4)))
}

// ScoreSummary bands the summary by word count; overly long summaries are penalized.
func ScoreSummary(summary string) int {
	words := text.WordCount(summary)
	switch {
	case words == 0:
		return 0
	case words < SummaryShortWords:
		return 40
	case words <= SummaryLongWords:
		return 80
	default:
		return 60
	}
}

// ScoreExperience awards points per entry plus a bonus per entry with a metric.
func ScoreExperience(entries []model.Experience) int {
	score := ExperienceEntryPoints*len(entries) + ExperienceMetricPoints*QuantifiedEntries(entries)
	return clamp(score)
}

// QuantifiedEntries counts entries whose description holds a quantifiable metric.
func QuantifiedEntries(entries []model.Experience) int {
	n := 0
	for _, e := range entries {
		if HasQuantifiableMetric(e.Description) {
			n++
		}
	}
	return n
}

// ScoreEducation is 100 with a complete entry, 50 with only partial entries, else 0.
func ScoreEducation(entries []model.Education) int {
	if len(entries) == 0 {
		return 0
	}
	for _, e := range entries {
		if e.IsComplete() {
			return 100
		}
	}
	return 50
}

// ScoreSkills bands the de-duplicated skill count.
func ScoreSkills(skills []string) int {
	switch n := len(skills); {
	case n == 0:
		return 0
	case n < 5:
		return 50
	case n < 10:
		return 80
	default:
		return 100
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
