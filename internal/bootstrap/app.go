package bootstrap

import (
	"fmt"

	"resume-scorer/internal/matching"
	"resume-scorer/internal/model"
	"resume-scorer/internal/refdata"
	"resume-scorer/internal/scoring"
	"resume-scorer/internal/services/health"
	"resume-scorer/internal/shared/config"
	"resume-scorer/internal/shared/telemetry"
	"resume-scorer/internal/textnorm"
)

// Version is the service version reported on the root endpoint.
const Version = "1.0.0"

// App holds shared dependencies.
type App struct {
	Config  config.Config
	Tables  *refdata.Tables
	Models  *model.Registry
	Scoring *scoring.Service
	Health  *health.Service
}

// Build loads reference data and model artifacts into process-wide read-only
// state and wires the scoring service.
func Build(cfg config.Config) (*App, error) {
	tables, err := refdata.Load(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("load reference data: %w", err)
	}

	norm, err := textnorm.New()
	if err != nil {
		return nil, fmt.Errorf("init normalizer: %w", err)
	}

	models := model.LoadRegistry(cfg.ModelDir, tables.GoalKeys())

	matcher := matching.New(norm, matching.Config{
		FullThreshold:    cfg.FuzzyThreshold,
		PartialThreshold: cfg.FuzzyPartialThreshold,
		TokenThreshold:   cfg.FuzzyTokenThreshold,
	})

	svc := scoring.NewService(tables, models, norm, matcher, cfg.PassThreshold, cfg.MaxMissingSkills)

	telemetry.Info("bootstrap.ready", map[string]any{
		"goals":          tables.GoalNames(),
		"pass_threshold": cfg.PassThreshold,
	})

	return &App{
		Config:  cfg,
		Tables:  tables,
		Models:  models,
		Scoring: svc,
		Health:  health.NewService(Version, tables.GoalNames()),
	}, nil
}
