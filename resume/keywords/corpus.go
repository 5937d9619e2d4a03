// Package keywords extracts taxonomy keywords from a resume, measures their
// density per category and compares the result against the taxonomy.
package keywords

import (
	"resume-analyzer/resume/model"
	"resume-analyzer/resume/text"
)

// Source-section weights applied to every keyword occurrence.
const (
	WeightSummary    = 1
	WeightExperience = 2
	WeightSkills     = 3
)

// Segment is one independently tokenized piece of resume text. Phrases never
// span two segments.
type Segment struct {
	Section string
	Weight  int
	Tokens  []string
}

// Corpus is the tokenized resume text shared by extraction and density. Prose
// keeps the untokenized summary and experience descriptions for readability.
type Corpus struct {
	Segments []Segment
	Prose    []string
}

// NewCorpus tokenizes the summary, each experience title and description, and
// each de-duplicated skill of doc.
func NewCorpus(doc model.ResumeDocument) Corpus {
	var c Corpus
	c.add(model.SectionSummary, WeightSummary, doc.Summary)
	c.addProse(doc.Summary)
	for _, e := range doc.Experience {
		c.add(model.SectionExperience, WeightExperience, e.Title)
		c.add(model.SectionExperience, WeightExperience, e.Description)
		c.addProse(e.Description)
	}
	for _, s := range doc.UniqueSkills() {
		c.add(model.SectionSkills, WeightSkills, s)
	}
	return c
}

func (c *Corpus) add(section string, weight int, raw string) {
	tokens := text.Tokenize(raw)
	if len(tokens) == 0 {
		return
	}
	c.Segments = append(c.Segments, Segment{Section: section, Weight: weight, Tokens: tokens})
}

func (c *Corpus) addProse(raw string) {
	if text.WordCount(raw) > 0 {
		c.Prose = append(c.Prose, raw)
	}
}

// TotalTokens is the token count across all segments.
func (c Corpus) TotalTokens() int {
	n := 0
	for _, s := range c.Segments {
		n += len(s.Tokens)
	}
	return n
}
