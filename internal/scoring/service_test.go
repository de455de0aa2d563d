package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-scorer/internal/matching"
	"resume-scorer/internal/model"
	"resume-scorer/internal/refdata"
	"resume-scorer/internal/textnorm"
)

func amazonGoal() *refdata.Goal {
	return &refdata.Goal{
		Name: "Amazon SDE",
		Key:  "amazon_sde",
		Skills: []refdata.SkillEntry{
			{Name: "Data Structures", Aliases: []string{"DSA"}},
			{Name: "Algorithms"},
			{Name: "Java"},
			{Name: "Python"},
			{Name: "C++"},
			{Name: "System Design"},
			{Name: "AWS", Aliases: []string{"Amazon Web Services"}},
			{Name: "SQL"},
		},
		Groups: []refdata.SkillGroup{
			{Category: "Fundamentals", Skills: []string{"Data Structures", "Algorithms"}},
			{Category: "Languages", Skills: []string{"Java", "Python", "C++", "SQL"}},
			{Category: "Systems", Skills: []string{"System Design"}},
			{Category: "Cloud", Skills: []string{"AWS"}},
		},
	}
}

func wideGoal() *refdata.Goal {
	g := &refdata.Goal{Name: "Wide Goal", Key: "wide_goal"}
	for i := 1; i <= 17; i++ {
		g.Skills = append(g.Skills, refdata.SkillEntry{Name: fmt.Sprintf("Specialty %02d", i)})
	}
	return g
}

func amazonArtifact() *model.Artifact {
	return &model.Artifact{
		Goal: "amazon_sde",
		Vocabulary: map[string]int{
			"java": 0, "python": 1, "data": 2, "structures": 3,
			"algorithms": 4, "sql": 5, "aws": 6, "data structures": 7,
		},
		IDF:       []float64{1.8, 1.8, 1.2, 1.5, 1.8, 1.8, 2.0, 2.2},
		NgramMin:  1,
		NgramMax:  2,
		Coef:      []float64{2.0, 2.0, 1.5, 1.5, 2.0, 2.0, 2.0, 2.5},
		Intercept: -2.0,
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	tables := refdata.NewTables(
		[]*refdata.Goal{amazonGoal(), wideGoal()},
		map[string][]string{
			"C++":           {"Solve problems in C++"},
			"System Design": {"Read a system design primer"},
			"AWS":           {"Complete an AWS fundamentals course", "Deploy a project on EC2"},
		},
	)
	registry := model.NewRegistry(map[string]*model.Artifact{
		"amazon_sde": amazonArtifact(),
		"wide_goal": {
			Goal:       "wide_goal",
			Vocabulary: map[string]int{"specialty": 0},
			IDF:        []float64{1.0},
			NgramMin:   1,
			NgramMax:   1,
			Coef:       []float64{1.0},
			Intercept:  -2.0,
		},
	})
	norm, err := textnorm.New()
	require.NoError(t, err)
	matcher := matching.New(norm, matching.DefaultConfig())
	return NewService(tables, registry, norm, matcher, 0.5, 15)
}

func TestScoreScenarioAmazonSDE(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Score("Amazon SDE", "Proficient in Java, Python, Data Structures, and Algorithms")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Java", "Python", "Data Structures", "Algorithms"}, result.MatchedSkills)
	assert.Contains(t, result.MissingSkills, "System Design")
	assert.Contains(t, result.MissingSkills, "AWS")

	assert.GreaterOrEqual(t, result.Score, 0.0)
	assert.LessOrEqual(t, result.Score, 1.0)
	assert.Equal(t, result.Score >= 0.5, result.IsPass)
	assert.True(t, result.IsPass)
}

func TestScoreMissingOrderAndGrouping(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Score("Amazon SDE", "Proficient in Java, Python, Data Structures, and Algorithms")
	require.NoError(t, err)

	// Declared order: C++ before System Design before AWS before SQL.
	assert.Equal(t, []string{"C++", "System Design", "AWS", "SQL"}, result.MissingSkills)

	assert.Equal(t, map[string][]string{
		"Languages": {"C++", "SQL"},
		"Systems":   {"System Design"},
		"Cloud":     {"AWS"},
	}, result.MissingSkillsGrouped)

	// Learning path follows missing order; SQL has no table entry.
	assert.Equal(t, []string{
		"Solve problems in C++",
		"Read a system design primer",
		"Complete an AWS fundamentals course",
		"Deploy a project on EC2",
	}, result.SuggestedLearningPath)
}

func TestScoreEmptyResume(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Score("Amazon SDE", "")
	require.NoError(t, err)

	assert.Empty(t, result.MatchedSkills)
	assert.Len(t, result.MissingSkills, 8)
	assert.GreaterOrEqual(t, result.Score, 0.0)
	assert.Less(t, result.Score, 0.5)
	assert.False(t, result.IsPass)
	assert.NotNil(t, result.MatchedSkills)
	assert.NotNil(t, result.SuggestedLearningPath)
}

func TestScoreUnknownGoal(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Score("Nonexistent Goal", "anything")
	assert.ErrorIs(t, err, ErrUnknownGoal)
}

func TestScoreModelUnavailable(t *testing.T) {
	tables := refdata.NewTables([]*refdata.Goal{amazonGoal()}, nil)
	registry := model.NewRegistry(nil)
	norm, err := textnorm.New()
	require.NoError(t, err)
	svc := NewService(tables, registry, norm, matching.New(norm, matching.DefaultConfig()), 0.5, 15)

	_, err = svc.Score("Amazon SDE", "java")
	assert.ErrorIs(t, err, model.ErrModelUnavailable)
}

func TestScoreMissingCap(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Score("Wide Goal", "")
	require.NoError(t, err)

	assert.Len(t, result.MissingSkills, 15)
	for i, skill := range result.MissingSkills {
		assert.Equal(t, fmt.Sprintf("Specialty %02d", i+1), skill)
	}
}

func TestScoreAliasOnlyResume(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Score("Amazon SDE", "Deployed workloads on Amazon Web Services")
	require.NoError(t, err)

	assert.Contains(t, result.MatchedSkills, "AWS")
	assert.NotContains(t, result.MissingSkills, "AWS")
}

func TestScoreIdempotent(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.Score("Amazon SDE", "Java and SQL with some system design")
	require.NoError(t, err)
	second, err := svc.Score("Amazon SDE", "Java and SQL with some system design")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScorePassThresholdIsInclusive(t *testing.T) {
	// Intercept 0 scores an empty resume at exactly 0.5.
	tables := refdata.NewTables([]*refdata.Goal{{
		Name:   "Edge",
		Key:    "edge",
		Skills: []refdata.SkillEntry{{Name: "Anything"}},
	}}, nil)
	registry := model.NewRegistry(map[string]*model.Artifact{
		"edge": {
			Goal:       "edge",
			Vocabulary: map[string]int{"anything": 0},
			IDF:        []float64{1.0},
			NgramMin:   1,
			NgramMax:   1,
			Coef:       []float64{1.0},
			Intercept:  0,
		},
	})
	norm, err := textnorm.New()
	require.NoError(t, err)
	svc := NewService(tables, registry, norm, matching.New(norm, matching.DefaultConfig()), 0.5, 15)

	result, err := svc.Score("Edge", "")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, result.Score, 1e-9)
	assert.True(t, result.IsPass)
}
