package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-analyzer/resume/model"
	"resume-analyzer/resume/taxonomy"
)

func sampleDoc() model.ResumeDocument {
	return model.ResumeDocument{
		Summary: "Python developer with leadership",
		Experience: []model.Experience{
			{Title: "Data Analysis Lead", Description: "Built SQL reports"},
		},
		Skills: []string{"Python", "SQL", "python", "  "},
	}
}

func TestNewCorpusSkipsBlankAndDuplicateSegments(t *testing.T) {
	c := NewCorpus(sampleDoc())

	require.Len(t, c.Segments, 5)
	assert.Equal(t, model.SectionSummary, c.Segments[0].Section)
	assert.Equal(t, WeightExperience, c.Segments[1].Weight)
	assert.Equal(t, []string{"python"}, c.Segments[3].Tokens)
	assert.Equal(t, WeightSkills, c.Segments[4].Weight)
	assert.Equal(t, 12, c.TotalTokens())
}

func TestExtractWeightsAndOrdering(t *testing.T) {
	entries := Extract(NewCorpus(sampleDoc()), taxonomy.Default())

	assert.Equal(t, []model.KeywordEntry{
		{Keyword: "sql", Score: 2.585},
		{Keyword: "python", Score: 2.3219},
		{Keyword: "analysis", Score: 1.585},
		{Keyword: "data analysis", Score: 1.585},
		{Keyword: "leadership", Score: 1},
	}, entries)
}

func TestExtractEmptyDocument(t *testing.T) {
	entries := Extract(NewCorpus(model.ResumeDocument{}), taxonomy.Default())
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestExtractDampensRepetition(t *testing.T) {
	doc := model.ResumeDocument{Summary: "sql sql sql sql sql sql sql"}
	entries := Extract(NewCorpus(doc), taxonomy.Default())

	require.Len(t, entries, 1)
	assert.Equal(t, 3.0, entries[0].Score)
}

func TestSortEntriesTieBreakIsCaseInsensitive(t *testing.T) {
	entries := []model.KeywordEntry{
		{Keyword: "beta", Score: 1},
		{Keyword: "Alpha", Score: 1},
		{Keyword: "gamma", Score: 2},
	}
	SortEntries(entries)
	assert.Equal(t, []string{"gamma", "Alpha", "beta"}, []string{entries[0].Keyword, entries[1].Keyword, entries[2].Keyword})
}

func TestDensity(t *testing.T) {
	density := Density(NewCorpus(sampleDoc()), taxonomy.Default())

	assert.Equal(t, map[string]float64{
		taxonomy.CategoryTechnical:  50.0,
		taxonomy.CategorySoftSkills: 8.3,
		taxonomy.CategoryBusiness:   8.3,
	}, density)
}

func TestDensityEmptyCorpus(t *testing.T) {
	density := Density(Corpus{}, taxonomy.Default())
	require.Len(t, density, 3)
	for name, v := range density {
		assert.Zero(t, v, name)
	}
}

func TestDensityCountsOverlappingTokensOnce(t *testing.T) {
	tax, err := taxonomy.New(taxonomy.Spec{Categories: []taxonomy.CategorySpec{
		{Name: "ml", Keywords: []string{"machine", "machine learning"}},
	}})
	require.NoError(t, err)

	doc := model.ResumeDocument{Summary: "machine learning expert"}
	density := Density(NewCorpus(doc), tax)
	assert.Equal(t, 66.7, density["ml"])
}

func TestMatchAndMissing(t *testing.T) {
	tax := taxonomy.Default()
	match := Match(Extract(NewCorpus(sampleDoc()), tax), tax)

	assert.Equal(t, 5, match.TotalMatches)
	assert.Equal(t, 12.2, match.MatchPercentage)
	assert.Equal(t, []string{"python", "sql", "data analysis"}, match.Matched[taxonomy.CategoryTechnical])

	missing := MissingKeywords(match, tax, MissingDisplayLimit)
	assert.Equal(t, []string{"javascript", "java", "react", "node.js", "aws", "docker", "kubernetes", "git"}, missing[taxonomy.CategoryTechnical])
	for _, name := range tax.Categories() {
		assert.LessOrEqual(t, len(missing[name]), MissingDisplayLimit)
	}
}

func TestMatchFullCoverage(t *testing.T) {
	tax := taxonomy.Default()
	var skills []string
	for _, name := range tax.Categories() {
		skills = append(skills, tax.Keywords(name)...)
	}
	doc := model.ResumeDocument{Skills: skills}

	result := Analyze(NewCorpus(doc), tax)
	assert.Equal(t, 100.0, result.SkillsMatch.MatchPercentage)
	for _, name := range tax.Categories() {
		assert.Empty(t, result.MissingKeywords[name])
	}
}

func TestAnalyzeMissingNeverOverlapsKeywords(t *testing.T) {
	tax := taxonomy.Default()
	result := Analyze(NewCorpus(sampleDoc()), tax)

	found := make(map[string]bool)
	for _, e := range result.Keywords {
		found[e.Keyword] = true
	}
	for name, kws := range result.MissingKeywords {
		for _, kw := range kws {
			assert.False(t, found[kw], "%s listed as missing in %s", kw, name)
		}
	}
}

func TestReadability(t *testing.T) {
	words := func(n int) string {
		return strings.TrimSpace(strings.Repeat("word ", n))
	}

	got := Readability(NewCorpus(sampleDoc()))
	assert.Equal(t, model.Readability{AvgSentenceLength: 3.5, TotalWords: 7, ReadabilityScore: 100}, got)

	got = Readability(NewCorpus(model.ResumeDocument{Summary: words(25) + "."}))
	assert.Equal(t, model.Readability{AvgSentenceLength: 25, TotalWords: 25, ReadabilityScore: 80}, got)

	got = Readability(NewCorpus(model.ResumeDocument{
		Summary:    words(20) + ". " + words(20),
		Experience: []model.Experience{{Title: "Lead engineer", Description: words(20) + "!"}},
	}))
	assert.Equal(t, model.Readability{AvgSentenceLength: 20, TotalWords: 60, ReadabilityScore: 90}, got)

	got = Readability(NewCorpus(model.ResumeDocument{Summary: words(70)}))
	assert.Equal(t, 0.0, got.ReadabilityScore)
	assert.Equal(t, 70.0, got.AvgSentenceLength)
}

func TestReadabilityWithoutProse(t *testing.T) {
	doc := model.ResumeDocument{
		Experience: []model.Experience{{Title: "Engineer"}},
		Skills:     []string{"go"},
	}
	assert.Equal(t, model.Readability{}, Readability(NewCorpus(doc)))
	assert.Equal(t, model.Readability{}, Analyze(NewCorpus(model.ResumeDocument{}), taxonomy.Default()).Readability)
}
