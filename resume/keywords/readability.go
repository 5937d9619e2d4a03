package keywords

import (
	"math"

	"resume-analyzer/resume/model"
	"resume-analyzer/resume/text"
)

// Readability tuning.
const (
	TargetSentenceLength = 15.0
	LongSentencePenalty  = 2.0
)

// Readability measures average sentence length over the corpus prose. A corpus
// without prose scores zero across the board.
func Readability(c Corpus) model.Readability {
	words, sentences := 0, 0
	for _, p := range c.Prose {
		words += text.WordCount(p)
		sentences += text.SentenceCount(p)
	}
	if words == 0 || sentences == 0 {
		return model.Readability{}
	}
	avg := float64(words) / float64(sentences)
	score := 100 - (avg-TargetSentenceLength)*LongSentencePenalty
	score = math.Max(0, math.Min(100, score))
	return model.Readability{
		AvgSentenceLength: round(avg, 1),
		TotalWords:        words,
		ReadabilityScore:  round(score, 1),
	}
}
