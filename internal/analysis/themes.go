package analysis

import "strings"

// themeGroup associates a theme label with its trigger keywords.
type themeGroup struct {
	label    string
	keywords []string
}

// themeGroups is the fixed theme enumeration, checked in order so theme
// output is stable. Matching is plain substring matching, not tokenized;
// "aim" matches the "ai" keyword. That looseness is part of the contract.
var themeGroups = []themeGroup{
	{"Artificial Intelligence", []string{"artificial intelligence", "ai"}},
	{"Machine Learning", []string{"machine learning", "supervised", "unsupervised", "reinforcement"}},
	{"Deep Learning", []string{"deep learning", "neural network", "cnn", "rnn", "transformer"}},
	{"Neural Networks", []string{"neural", "neuron", "layers"}},
	{"Natural Language Processing", []string{"natural language", "nlp", "speech"}},
	{"Computer Vision", []string{"computer vision", "image recognition", "image classification"}},
	{"Data Science", []string{"data"}},
}

// Themes returns the labels of every theme group with at least one keyword
// occurring in text, case-insensitively.
func Themes(text string) []string {
	lower := strings.ToLower(text)
	var matched []string
	for _, g := range themeGroups {
		for _, kw := range g.keywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, g.label)
				break
			}
		}
	}
	return matched
}
