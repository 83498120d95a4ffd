package analysis

import (
	"strings"
	"testing"
)

func TestTopTerms_BasicFrequencyOrder(t *testing.T) {
	text := "network network network model model training"
	got := TopTerms(text)
	want := []string{"network", "model", "training"}
	if len(got) != len(want) {
		t.Fatalf("expected %d terms, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("term[%d]: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestTopTerms_TieBrokenByFirstOccurrence(t *testing.T) {
	text := "alpha beta gamma alpha beta gamma"
	got := TopTerms(text)
	want := []string{"alpha", "beta", "gamma"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected stable first-occurrence ordering %v, got %v", want, got)
		}
	}
}

func TestTopTerms_CapsAtFive(t *testing.T) {
	text := "zero ones twos three four five sixes seven"
	got := TopTerms(text)
	if len(got) > MaxTopTerms {
		t.Errorf("expected at most %d terms, got %d", MaxTopTerms, len(got))
	}
}

func TestTopTerms_FiltersShortAndStopWords(t *testing.T) {
	text := "the cat sat with that from learning learning"
	got := TopTerms(text)
	for _, term := range got {
		if len(term) < 4 {
			t.Errorf("term %q shorter than 4 letters", term)
		}
		if stopWords[term] {
			t.Errorf("stop word %q leaked into terms", term)
		}
	}
	if len(got) != 1 || got[0] != "learning" {
		t.Errorf("expected only %q, got %v", "learning", got)
	}
}

func TestTopTerms_EmptyInput(t *testing.T) {
	if got := TopTerms(""); len(got) != 0 {
		t.Errorf("expected no terms for empty input, got %v", got)
	}
}

func TestTopTerms_NoDuplicates(t *testing.T) {
	text := strings.Repeat("model data model data training ", 10)
	got := TopTerms(text)
	seen := map[string]bool{}
	for _, term := range got {
		if seen[term] {
			t.Errorf("duplicate term %q", term)
		}
		seen[term] = true
	}
}

func TestTopTerms_Lowercases(t *testing.T) {
	got := TopTerms("Learning LEARNING learning")
	if len(got) != 1 || got[0] != "learning" {
		t.Errorf("expected case-folded count, got %v", got)
	}
}
