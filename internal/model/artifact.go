package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// Artifact is a frozen vectorizer+classifier pair exported from offline
// training: the TF-IDF vocabulary with per-term inverse document frequencies
// and the logistic regression weights. Artifacts are loaded once and never
// mutated.
type Artifact struct {
	Goal       string         `json:"goal"`
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
	NgramMin   int            `json:"ngram_min"`
	NgramMax   int            `json:"ngram_max"`
	Coef       []float64      `json:"coef"`
	Intercept  float64        `json:"intercept"`
}

func loadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var art Artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("parse artifact: %w", err)
	}
	if err := art.validate(); err != nil {
		return nil, err
	}
	return &art, nil
}

func (a *Artifact) validate() error {
	if len(a.Vocabulary) == 0 {
		return fmt.Errorf("artifact %q: empty vocabulary", a.Goal)
	}
	if len(a.IDF) != len(a.Vocabulary) {
		return fmt.Errorf("artifact %q: idf length %d does not match vocabulary size %d", a.Goal, len(a.IDF), len(a.Vocabulary))
	}
	if len(a.Coef) != len(a.Vocabulary) {
		return fmt.Errorf("artifact %q: coef length %d does not match vocabulary size %d", a.Goal, len(a.Coef), len(a.Vocabulary))
	}
	if a.NgramMin < 1 || a.NgramMax < a.NgramMin {
		return fmt.Errorf("artifact %q: invalid ngram range [%d,%d]", a.Goal, a.NgramMin, a.NgramMax)
	}
	for term, idx := range a.Vocabulary {
		if idx < 0 || idx >= len(a.Coef) {
			return fmt.Errorf("artifact %q: term %q has out-of-range index %d", a.Goal, term, idx)
		}
	}
	return nil
}
