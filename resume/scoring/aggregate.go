package scoring

import (
	"math"

	"resume-analyzer/resume/model"
)

// Aggregation weights. These are part of the published scoring contract.
const (
	SectionWeight = 0.4
	ATSWeight     = 0.3
	MatchWeight   = 0.3
)

// Grade thresholds; anything below GradeDMin is F.
const (
	GradeAMin = 90
	GradeBMin = 80
	GradeCMin = 70
	GradeDMin = 60
)

// Aggregate combines the three sub-scores into the 0-100 total. A resume with
// no scorable section content totals 0 whatever its ATS baseline.
func Aggregate(sections model.SectionScores, atsScore int, matchPercentage float64) int {
	avg := sections.Average()
	if avg == 0 {
		return 0
	}
	total := SectionWeight*avg + ATSWeight*float64(atsScore) + MatchWeight*matchPercentage
	return clamp(int(math.Round(total)))
}

// Grade maps a total score to its letter band.
func Grade(total int) string {
	switch {
	case total >= GradeAMin:
		return "A"
	case total >= GradeBMin:
		return "B"
	case total >= GradeCMin:
		return "C"
	case total >= GradeDMin:
		return "D"
	default:
		return "F"
	}
}
