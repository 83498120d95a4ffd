// Package assistant generates the simulated AI replies. There is no model
// behind it: a user message is classified into one of a fixed set of
// intents by ordered keyword tests and rendered from the analysis results.
// The whole package is deterministic over (message, sections, active).
package assistant

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dgallion1/docchat/internal/analysis"
	"github.com/dgallion1/docchat/internal/section"
)

// Responder answers user messages against the section collection.
type Responder struct {
	store    *section.Store
	analyzer analysis.Analyzer
}

// New creates a responder bound to a section store. The analyzer carries
// the configured excerpt length; its zero value uses the default.
func New(store *section.Store, analyzer analysis.Analyzer) *Responder {
	return &Responder{store: store, analyzer: analyzer}
}

// GlobalGreeting is the first assistant message of the document-wide
// conversation.
func (r *Responder) GlobalGreeting() string {
	return fmt.Sprintf("Hello! I'm your AI assistant and I can help you with all %d document sections. I can analyze, summarize, compare, or answer questions about any content across all sections. What would you like to explore?", r.store.Len())
}

// SectionGreeting is the first assistant message of a per-section
// conversation.
func SectionGreeting(sec section.Section) string {
	return fmt.Sprintf("Hello! I'm here to help you with %q. What would you like to know about this section?", sec.Title)
}

// Reply classifies userText and renders the matching response. The
// classification order is a contract: section mention, then comparison,
// summary, question, insights, fallback. First match wins. Every input
// string produces exactly one reply; there is no error path.
func (r *Responder) Reply(userText string) string {
	lower := strings.ToLower(userText)
	secs := r.store.List()

	// 1. A section named by title, or by any word of its title.
	if sec, ok := mentionedSection(lower, secs); ok {
		if strings.Contains(lower, "analyze") || strings.Contains(lower, "summary") {
			return formatSectionAnalysis(r.analyzer.Analyze(sec))
		}
		return formatSectionMention(sec)
	}

	// 2. Comparison across sections.
	if containsAny(lower, "compare", "comparison", "difference") {
		return formatComparison(r.analyzer.AggregateAll(secs))
	}

	// 3. Whole-document summary.
	if containsAny(lower, "summary", "summarize", "overview") {
		return formatDocumentSummary(r.analyzer.AggregateAll(secs))
	}

	// 4. Question: answer from sections sharing words with the message.
	// With no matching section, fall through to the generic response.
	if containsAny(lower, "what", "how", "why", "?") {
		if matched := matchingSections(lower, secs); len(matched) > 0 {
			return formatAnswer(userText, matched, r.analyzer.ExcerptLength)
		}
		return r.formatFallback(userText)
	}

	// 5. Insights and patterns.
	if containsAny(lower, "insight", "pattern", "key", "important") {
		return formatInsights(r.analyzer.AggregateAll(secs))
	}

	// 6. Fallback.
	return r.formatFallback(userText)
}

// SectionReply answers a message in a per-section conversation. It only
// ever looks at its own section.
func (r *Responder) SectionReply(sec section.Section, userText string) string {
	lower := strings.ToLower(userText)
	if strings.Contains(lower, "analyze") || strings.Contains(lower, "summary") {
		return formatSectionAnalysis(r.analyzer.Analyze(sec))
	}
	return fmt.Sprintf("I understand you're asking about %q in relation to %s. Based on this section, I can help you analyze the content and provide insights.", userText, sec.Title)
}

// mentionedSection finds the first section whose full title occurs in the
// lowered message, or whose title shares a whole word with it. Title words
// match whole message words only; otherwise short words like "and" would
// capture any message containing them as a substring.
func mentionedSection(lower string, secs []section.Section) (section.Section, bool) {
	msgWords := make(map[string]bool)
	for _, w := range splitWords(lower) {
		msgWords[w] = true
	}
	for _, sec := range secs {
		title := strings.ToLower(sec.Title)
		if strings.Contains(lower, title) {
			return sec, true
		}
		for _, word := range splitWords(title) {
			if msgWords[word] {
				return sec, true
			}
		}
	}
	return section.Section{}, false
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// matchingSections keeps sections whose title or content contains any
// content word of the message.
func matchingSections(lower string, secs []section.Section) []section.Section {
	words := analysis.ContentWords(lower)
	if len(words) == 0 {
		return nil
	}
	var matched []section.Section
	for _, sec := range secs {
		haystack := strings.ToLower(sec.Title + " " + sec.Content)
		for _, w := range words {
			if strings.Contains(haystack, w) {
				matched = append(matched, sec)
				break
			}
		}
	}
	return matched
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func (r *Responder) formatFallback(userText string) string {
	if active, ok := r.store.Active(); ok {
		return fmt.Sprintf("I understand your question about %q. Since you were discussing %q, I can help you analyze this across all document sections. Based on the available content, I can provide insights and connections between different sections.", userText, active.Title)
	}
	return fmt.Sprintf("That's an interesting question about %q. I have access to all %d document sections and can help you find relevant information, make connections between sections, or provide detailed analysis. Would you like me to search across specific sections?", userText, r.store.Len())
}
