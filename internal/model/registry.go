package model

import (
	"errors"
	"fmt"
	"path/filepath"

	"resume-scorer/internal/shared/telemetry"
)

// ErrModelUnavailable indicates a recognized goal whose artifact pair failed
// to load or is missing.
var ErrModelUnavailable = errors.New("model unavailable")

// Registry holds the per-goal artifact pairs loaded at startup. It is
// read-only after construction and safe for concurrent use.
type Registry struct {
	artifacts map[string]*Artifact
}

// NewRegistry builds a Registry from already-loaded artifacts, keyed by goal
// key.
func NewRegistry(artifacts map[string]*Artifact) *Registry {
	if artifacts == nil {
		artifacts = map[string]*Artifact{}
	}
	return &Registry{artifacts: artifacts}
}

// LoadRegistry reads <goalKey>.json artifacts from dir for every goal key.
// A goal whose artifact is missing or corrupt stays registered but scores
// with ErrModelUnavailable; the failure is logged, not fatal, so the
// remaining goals keep serving.
func LoadRegistry(dir string, goalKeys []string) *Registry {
	artifacts := make(map[string]*Artifact, len(goalKeys))
	for _, key := range goalKeys {
		path := filepath.Join(dir, key+".json")
		art, err := loadArtifact(path)
		if err != nil {
			telemetry.Error("model.load_failed", map[string]any{
				"goal_key": key,
				"path":     path,
				"error":    err.Error(),
			})
			continue
		}
		artifacts[key] = art
		telemetry.Info("model.loaded", map[string]any{
			"goal_key":   key,
			"vocabulary": len(art.Vocabulary),
		})
	}
	return NewRegistry(artifacts)
}

// Score returns the positive-class probability for raw text under the goal's
// classifier.
func (r *Registry) Score(goalKey, text string) (float64, error) {
	art, ok := r.artifacts[goalKey]
	if !ok {
		return 0, fmt.Errorf("goal %s: %w", goalKey, ErrModelUnavailable)
	}
	return art.Score(text), nil
}

// Has reports whether an artifact pair is loaded for the goal key.
func (r *Registry) Has(goalKey string) bool {
	_, ok := r.artifacts[goalKey]
	return ok
}
