package model

// Section names used as keys of SectionScores.
const (
	SectionContact    = "contact"
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
)

// ATS compatibility levels.
const (
	LevelExcellent = "Excellent"
	LevelGood      = "Good"
	LevelFair      = "Fair"
	LevelPoor      = "Poor"
)

// KeywordEntry is a taxonomy keyword found in the resume with its dampened weight.
type KeywordEntry struct {
	Keyword string  `json:"keyword"`
	Score   float64 `json:"score"`
}

// SkillsMatch compares extracted keywords against the taxonomy.
type SkillsMatch struct {
	MatchPercentage float64             `json:"match_percentage"`
	TotalMatches    int                 `json:"total_matches"`
	Matched         map[string][]string `json:"matched"`
	Missing         map[string][]string `json:"missing"`
}

// ATSCompatibility is the outcome of the ATS rule table.
type ATSCompatibility struct {
	Score  int      `json:"score"`
	Level  string   `json:"level"`
	Issues []string `json:"issues"`
}

// SectionScores holds a 0-100 rating per resume section.
type SectionScores struct {
	Contact    int `json:"contact"`
	Summary    int `json:"summary"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
	Skills     int `json:"skills"`
}

// Values returns the scores in section order.
func (s SectionScores) Values() []int {
	return []int{s.Contact, s.Summary, s.Experience, s.Education, s.Skills}
}

// ByName returns the score for a section name and whether the name is known.
func (s SectionScores) ByName(name string) (int, bool) {
	switch name {
	case SectionContact:
		return s.Contact, true
	case SectionSummary:
		return s.Summary, true
	case SectionExperience:
		return s.Experience, true
	case SectionEducation:
		return s.Education, true
	case SectionSkills:
		return s.Skills, true
	default:
		return 0, false
	}
}

// Average returns the arithmetic mean of all section scores.
func (s SectionScores) Average() float64 {
	values := s.Values()
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// Score is the graded outcome of an analysis.
type Score struct {
	TotalScore       int              `json:"total_score"`
	Grade            string           `json:"grade"`
	SectionScores    SectionScores    `json:"section_scores"`
	ATSCompatibility ATSCompatibility `json:"ats_compatibility"`
	CriticalIssues   []string         `json:"critical_issues"`
	Recommendations  []string         `json:"recommendations"`
}

// Readability summarizes sentence length over the summary and experience
// descriptions. ReadabilityScore falls by 2 for each word the average sentence
// runs past 15, clamped to [0, 100].
type Readability struct {
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	TotalWords        int     `json:"total_words"`
	ReadabilityScore  float64 `json:"readability_score"`
}

// SectionCompleteness flags which resume sections carry content.
type SectionCompleteness struct {
	HasContact    bool `json:"has_contact"`
	HasSummary    bool `json:"has_summary"`
	HasExperience bool `json:"has_experience"`
	HasEducation  bool `json:"has_education"`
	HasSkills     bool `json:"has_skills"`
}

// AnalysisResult is the keyword analysis of a resume.
type AnalysisResult struct {
	Keywords            []KeywordEntry      `json:"keywords"`
	MissingKeywords     map[string][]string `json:"missing_keywords"`
	KeywordDensity      map[string]float64  `json:"keyword_density"`
	SkillsMatch         SkillsMatch         `json:"skills_match"`
	Readability         Readability         `json:"readability"`
	SectionCompleteness SectionCompleteness `json:"section_completeness"`
}

// TopKeywords returns up to n leading keyword entries.
func (a AnalysisResult) TopKeywords(n int) []KeywordEntry {
	if n < 0 {
		n = 0
	}
	if n > len(a.Keywords) {
		n = len(a.Keywords)
	}
	out := make([]KeywordEntry, n)
	copy(out, a.Keywords[:n])
	return out
}
