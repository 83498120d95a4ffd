package analysis

import (
	"strings"

	"github.com/dgallion1/docchat/internal/section"
)

// DefaultExcerptLength is how much of a section's content an excerpt keeps.
const DefaultExcerptLength = 250

// minSentenceLength filters out abbreviation noise when counting
// '.'-delimited segments as sentences.
const minSentenceLength = 20

// SectionAnalysis is the derived record for one section. It is recomputed
// on demand and never stored.
type SectionAnalysis struct {
	SectionID     string   `json:"section_id"`
	Title         string   `json:"title"`
	WordCount     int      `json:"word_count"`
	SentenceCount int      `json:"sentence_count"`
	TopTerms      []string `json:"top_terms"`
	Themes        []string `json:"themes"`
	Excerpt       string   `json:"excerpt"`
}

// Analyzer derives analysis records. The zero value uses
// DefaultExcerptLength; ExcerptLength overrides it when positive.
type Analyzer struct {
	ExcerptLength int
}

// Analyze derives the analysis record for a single section.
func (a Analyzer) Analyze(sec section.Section) SectionAnalysis {
	return SectionAnalysis{
		SectionID:     sec.ID,
		Title:         sec.Title,
		WordCount:     len(strings.Fields(sec.Content)),
		SentenceCount: countSentences(sec.Content),
		TopTerms:      TopTerms(sec.Content),
		Themes:        Themes(sec.Content),
		Excerpt:       Excerpt(sec.Content, a.ExcerptLength),
	}
}

// Analyze derives the analysis record for a single section using the
// default excerpt length.
func Analyze(sec section.Section) SectionAnalysis {
	return Analyzer{}.Analyze(sec)
}

// Excerpt truncates text to at most limit runes, appending an ellipsis
// marker when anything was cut.
func Excerpt(text string, limit int) string {
	if limit <= 0 {
		limit = DefaultExcerptLength
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

func countSentences(text string) int {
	count := 0
	for _, seg := range strings.Split(text, ".") {
		if len(strings.TrimSpace(seg)) > minSentenceLength {
			count++
		}
	}
	return count
}
