package scoring

import (
	"fmt"

	"resume-scorer/internal/insights"
	"resume-scorer/internal/matching"
	"resume-scorer/internal/model"
	"resume-scorer/internal/refdata"
	"resume-scorer/internal/textnorm"
)

// Service composes normalization, classification, skill matching and insight
// assembly into the single scoring operation. All state is read-only after
// construction; concurrent requests share it without locking.
type Service struct {
	tables     *refdata.Tables
	models     *model.Registry
	norm       *textnorm.Normalizer
	matcher    *matching.Matcher
	threshold  float64
	maxMissing int
}

// NewService constructs a Service. threshold is the pass cut-off applied to
// the classifier score; maxMissing caps the missing-skill list in responses.
func NewService(tables *refdata.Tables, models *model.Registry, norm *textnorm.Normalizer, matcher *matching.Matcher, threshold float64, maxMissing int) *Service {
	return &Service{
		tables:     tables,
		models:     models,
		norm:       norm,
		matcher:    matcher,
		threshold:  threshold,
		maxMissing: maxMissing,
	}
}

// Goals returns the supported goal names.
func (s *Service) Goals() []string {
	return s.tables.GoalNames()
}

// Score runs the full scoring pipeline for one (goal, resume) pair. The
// classifier scores raw text while the matcher works on normalized tokens;
// the two signals are independent and never cross-normalized. Fatal steps
// (unknown goal, missing model artifact) abort with no partial result.
func (s *Service) Score(goal, resumeText string) (Result, error) {
	g, ok := s.tables.Goal(goal)
	if !ok {
		return Result{}, fmt.Errorf("goal %q: %w", goal, ErrUnknownGoal)
	}

	score, err := s.models.Score(g.Key, resumeText)
	if err != nil {
		return Result{}, err
	}

	tokens := s.norm.Normalize(resumeText)
	matched, missing := s.matcher.Match(tokens, g.Skills)
	if len(missing) > s.maxMissing {
		missing = missing[:s.maxMissing]
	}

	grouped, path := insights.Assemble(missing, g.Groups, s.tables.Suggestions)

	return Result{
		Score:                 score,
		IsPass:                score >= s.threshold,
		MatchedSkills:         emptyIfNil(matched),
		MissingSkills:         emptyIfNil(missing),
		MissingSkillsGrouped:  grouped,
		SuggestedLearningPath: emptyIfNil(path),
	}, nil
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
