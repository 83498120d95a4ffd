// Package analysis implements the heuristic text analysis the assistants
// are built on: term frequency, theme tagging, per-section records and
// cross-section aggregation. Everything here is pure and deterministic.
package analysis

import (
	"regexp"
	"sort"
	"strings"
)

// MaxTopTerms caps the number of terms TopTerms returns.
const MaxTopTerms = 5

var wordPattern = regexp.MustCompile(`[a-z]{4,}`)

// stopWords are discarded before counting: articles, conjunctions,
// auxiliary verbs and common prepositions.
var stopWords = map[string]bool{
	"this": true, "that": true, "these": true, "those": true,
	"with": true, "from": true, "into": true, "onto": true,
	"over": true, "under": true, "between": true, "through": true,
	"about": true, "above": true, "after": true, "before": true,
	"have": true, "been": true, "being": true, "were": true,
	"will": true, "would": true, "could": true, "should": true,
	"does": true, "doing": true, "done": true,
	"they": true, "their": true, "them": true, "there": true,
	"which": true, "while": true, "when": true, "where": true,
	"what": true, "such": true, "than": true, "then": true,
	"also": true, "each": true, "other": true, "some": true,
	"more": true, "most": true, "much": true, "many": true,
	"very": true, "like": true, "both": true, "only": true,
}

// ContentWords tokenizes text into lowercase words of at least four
// letters with stop words removed, in occurrence order.
func ContentWords(text string) []string {
	var words []string
	for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if !stopWords[w] {
			words = append(words, w)
		}
	}
	return words
}

// TopTerms extracts up to MaxTopTerms frequent words from text. Words are
// lowercase runs of at least four letters, minus the stop-word set. Ties
// are broken by first occurrence so the output is stable.
func TopTerms(text string) []string {
	words := ContentWords(text)

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string

	for i, w := range words {
		if _, seen := counts[w]; !seen {
			firstSeen[w] = i
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > MaxTopTerms {
		order = order[:MaxTopTerms]
	}
	return order
}
