package analysis

import (
	"strings"
	"testing"

	"github.com/dgallion1/docchat/internal/section"
)

func TestAnalyze_WordCountMatchesFields(t *testing.T) {
	sec := section.Section{ID: "a", Title: "A", Content: "one two  three\nfour"}
	sa := Analyze(sec)
	if want := len(strings.Fields(sec.Content)); sa.WordCount != want {
		t.Errorf("expected word count %d, got %d", want, sa.WordCount)
	}
}

func TestAnalyze_SentenceCountIgnoresShortSegments(t *testing.T) {
	content := "This is a sentence that is clearly long enough. Ok. " +
		"Another sufficiently long sentence follows right here."
	sa := Analyze(section.Section{ID: "a", Content: content})
	if sa.SentenceCount != 2 {
		t.Errorf("expected 2 sentences, got %d", sa.SentenceCount)
	}
}

func TestAnalyze_EmptyContent(t *testing.T) {
	sa := Analyze(section.Section{ID: "a", Title: "Empty"})
	if sa.WordCount != 0 || sa.SentenceCount != 0 {
		t.Errorf("expected zero counts, got %d words %d sentences", sa.WordCount, sa.SentenceCount)
	}
	if len(sa.TopTerms) != 0 {
		t.Errorf("expected no terms, got %v", sa.TopTerms)
	}
	if sa.Excerpt != "" {
		t.Errorf("expected empty excerpt, got %q", sa.Excerpt)
	}
}

func TestAnalyzer_ConfiguredExcerptLength(t *testing.T) {
	sec := section.Section{ID: "a", Title: "A", Content: strings.Repeat("word ", 100)}

	sa := Analyzer{ExcerptLength: 40}.Analyze(sec)
	if got := len([]rune(sa.Excerpt)); got != 43 || !strings.HasSuffix(sa.Excerpt, "...") {
		t.Errorf("expected 40 runes plus ellipsis, got %d: %q", got, sa.Excerpt)
	}

	// The zero value keeps the default.
	sa = Analyzer{}.Analyze(sec)
	if got := len([]rune(sa.Excerpt)); got != DefaultExcerptLength+3 {
		t.Errorf("expected default excerpt length, got %d runes", got)
	}
}

func TestExcerpt_TruncatesWithEllipsis(t *testing.T) {
	long := strings.Repeat("x", 400)
	got := Excerpt(long, DefaultExcerptLength)
	if len(got) > DefaultExcerptLength+len("...") {
		t.Errorf("excerpt too long: %d", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("expected ellipsis marker on truncated excerpt")
	}
}

func TestExcerpt_ShortTextUntouched(t *testing.T) {
	if got := Excerpt("short text", DefaultExcerptLength); got != "short text" {
		t.Errorf("expected untruncated text, got %q", got)
	}
}

func TestAnalyze_DefaultSections(t *testing.T) {
	for _, sec := range section.DefaultSections() {
		sa := Analyze(sec)
		if sa.WordCount == 0 {
			t.Errorf("section %s: expected nonzero word count", sec.ID)
		}
		if len(sa.TopTerms) == 0 || len(sa.TopTerms) > MaxTopTerms {
			t.Errorf("section %s: unexpected term count %d", sec.ID, len(sa.TopTerms))
		}
		if len(sa.Themes) == 0 {
			t.Errorf("section %s: expected at least one theme", sec.ID)
		}
	}
}
