package analysis

import (
	"math"

	"github.com/dgallion1/docchat/internal/section"
)

// Aggregate folds per-section analyses into document-wide figures.
type Aggregate struct {
	Count        int               `json:"count"`
	TotalWords   int               `json:"total_words"`
	AverageWords int               `json:"average_words"`
	Themes       []string          `json:"themes"`
	CommonTerms  []string          `json:"common_terms"`
	Sections     []SectionAnalysis `json:"sections"`
}

// AggregateAll analyzes every section and combines the results. An empty
// input produces zeroed aggregates; a single section's common terms are
// its own top terms.
func (a Analyzer) AggregateAll(secs []section.Section) Aggregate {
	agg := Aggregate{Count: len(secs)}

	seenTheme := make(map[string]bool)
	for i, sec := range secs {
		sa := a.Analyze(sec)
		agg.Sections = append(agg.Sections, sa)
		agg.TotalWords += sa.WordCount

		for _, th := range sa.Themes {
			if !seenTheme[th] {
				seenTheme[th] = true
				agg.Themes = append(agg.Themes, th)
			}
		}

		if i == 0 {
			agg.CommonTerms = append([]string(nil), sa.TopTerms...)
		} else {
			agg.CommonTerms = intersect(agg.CommonTerms, sa.TopTerms)
		}
	}

	if agg.Count > 0 {
		agg.AverageWords = int(math.Round(float64(agg.TotalWords) / float64(agg.Count)))
	}
	return agg
}

// AggregateAll combines every section's analysis using the default
// excerpt length.
func AggregateAll(secs []section.Section) Aggregate {
	return Analyzer{}.AggregateAll(secs)
}

// intersect keeps the elements of a that also appear in b, preserving
// a's order.
func intersect(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, t := range b {
		inB[t] = true
	}
	var out []string
	for _, t := range a {
		if inB[t] {
			out = append(out, t)
		}
	}
	return out
}
