package assistant

import (
	"fmt"
	"math"
	"strings"

	"github.com/dgallion1/docchat/internal/analysis"
	"github.com/dgallion1/docchat/internal/section"
)

// The formatters below are pure string templating over analysis results.
// Figures must appear exactly as computed; the tests hold them to that.

func formatSectionMention(sec section.Section) string {
	return fmt.Sprintf("I can see you're asking about %q. Based on that section, %s Would you like me to elaborate on any specific aspect of this section?", sec.Title, analysis.Excerpt(sec.Content, 200))
}

func formatSectionAnalysis(sa analysis.SectionAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analysis of %q:\n\n", sa.Title)
	fmt.Fprintf(&b, "- Words: %d\n", sa.WordCount)
	fmt.Fprintf(&b, "- Sentences: %d\n", sa.SentenceCount)
	fmt.Fprintf(&b, "- Top terms: %s\n", joinOrNone(sa.TopTerms))
	fmt.Fprintf(&b, "- Themes: %s\n", joinOrNone(sa.Themes))
	fmt.Fprintf(&b, "\nExcerpt: %s", sa.Excerpt)
	return b.String()
}

func formatComparison(agg analysis.Aggregate) string {
	var b strings.Builder
	b.WriteString("Comparison Report\n\n")
	fmt.Fprintf(&b, "Sections analyzed: %d\n", agg.Count)
	fmt.Fprintf(&b, "Total words: %d\n", agg.TotalWords)
	fmt.Fprintf(&b, "Average words per section: %d\n", agg.AverageWords)
	fmt.Fprintf(&b, "Shared themes: %s\n", joinOrNone(agg.Themes))
	fmt.Fprintf(&b, "Common terms across sections: %s\n", joinOrNone(agg.CommonTerms))
	for i, sa := range agg.Sections {
		fmt.Fprintf(&b, "\n%d. %q - %d words, themes: %s", i+1, sa.Title, sa.WordCount, joinOrNone(sa.Themes))
	}
	return b.String()
}

func formatDocumentSummary(agg analysis.Aggregate) string {
	var b strings.Builder
	b.WriteString("Document Summary\n\n")
	fmt.Fprintf(&b, "%d sections, %d words in total (average %d per section).\n", agg.Count, agg.TotalWords, agg.AverageWords)
	fmt.Fprintf(&b, "Themes across the document: %s\n", joinOrNone(agg.Themes))
	for i, sa := range agg.Sections {
		fmt.Fprintf(&b, "\n%d. %q - %d words, %d sentences", i+1, sa.Title, sa.WordCount, sa.SentenceCount)
	}
	return b.String()
}

func formatAnswer(userText string, matched []section.Section, excerptLen int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here's what I found about %q:\n", userText)
	for _, sec := range matched {
		fmt.Fprintf(&b, "\nFrom %q: %s\n", sec.Title, analysis.Excerpt(sec.Content, excerptLen))
	}
	b.WriteString("\nWould you like a deeper analysis of any of these sections?")
	return b.String()
}

func formatInsights(agg analysis.Aggregate) string {
	var b strings.Builder
	b.WriteString("Key Insights & Patterns\n\n")
	fmt.Fprintf(&b, "Sections: %d\n", agg.Count)
	fmt.Fprintf(&b, "Total words: %d\n", agg.TotalWords)
	fmt.Fprintf(&b, "Recurring terms: %s\n", joinOrNone(agg.CommonTerms))
	fmt.Fprintf(&b, "Themes: %s\n", joinOrNone(agg.Themes))
	for i, sa := range agg.Sections {
		fmt.Fprintf(&b, "\n%d. %q - %d%% of total content, themes: %s", i+1, sa.Title, percentOf(sa.WordCount, agg.TotalWords), joinOrNone(sa.Themes))
	}
	return b.String()
}

func percentOf(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
