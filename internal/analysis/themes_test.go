package analysis

import "testing"

func TestThemes_MatchesKeywordGroups(t *testing.T) {
	got := Themes("We study machine learning and deep learning with neural networks.")
	want := map[string]bool{
		"Machine Learning": true,
		"Deep Learning":    true,
		"Neural Networks":  true,
	}
	for _, th := range got {
		delete(want, th)
	}
	for th := range want {
		t.Errorf("expected theme %q to match", th)
	}
}

func TestThemes_NoMatch(t *testing.T) {
	if got := Themes("gardening tips for spring"); len(got) != 0 {
		t.Errorf("expected no themes, got %v", got)
	}
}

func TestThemes_SubstringMatchingIsLoose(t *testing.T) {
	// "aim" contains "ai": the classifier matches substrings, not tokens.
	got := Themes("our aim is excellence")
	found := false
	for _, th := range got {
		if th == "Artificial Intelligence" {
			found = true
		}
	}
	if !found {
		t.Error("expected substring match on the ai keyword")
	}
}

func TestThemes_CaseInsensitive(t *testing.T) {
	got := Themes("SUPERVISED training on big DATA")
	hasML, hasDS := false, false
	for _, th := range got {
		switch th {
		case "Machine Learning":
			hasML = true
		case "Data Science":
			hasDS = true
		}
	}
	if !hasML || !hasDS {
		t.Errorf("expected Machine Learning and Data Science, got %v", got)
	}
}

func TestThemes_StableOrder(t *testing.T) {
	a := Themes("neural networks process data with supervised learning")
	b := Themes("neural networks process data with supervised learning")
	if len(a) != len(b) {
		t.Fatalf("non-deterministic theme count: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic theme order: %v vs %v", a, b)
		}
	}
}
