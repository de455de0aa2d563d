package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-scorer/internal/refdata"
	"resume-scorer/internal/textnorm"
)

func newTestMatcher(t *testing.T, cfg Config) (*Matcher, *textnorm.Normalizer) {
	t.Helper()
	norm, err := textnorm.New()
	require.NoError(t, err)
	return New(norm, cfg), norm
}

func skillList(names ...string) []refdata.SkillEntry {
	out := make([]refdata.SkillEntry, len(names))
	for i, n := range names {
		out[i] = refdata.SkillEntry{Name: n}
	}
	return out
}

func TestMatchExactSkills(t *testing.T) {
	m, norm := newTestMatcher(t, DefaultConfig())
	tokens := norm.Normalize("Proficient in Java, Python, Data Structures, and Algorithms")

	matched, missing := m.Match(tokens, skillList("Java", "Python", "Data Structures", "Algorithms", "Kubernetes"))

	assert.ElementsMatch(t, []string{"Java", "Python", "Data Structures", "Algorithms"}, matched)
	assert.Equal(t, []string{"Kubernetes"}, missing)
}

func TestMatchAliasEquivalence(t *testing.T) {
	m, norm := newTestMatcher(t, DefaultConfig())
	tokens := norm.Normalize("Strong OOP fundamentals and Amazon Web Services experience")

	skills := []refdata.SkillEntry{
		{Name: "Object Oriented Programming", Aliases: []string{"OOP"}},
		{Name: "AWS", Aliases: []string{"Amazon Web Services", "EC2"}},
		{Name: "Kafka", Aliases: []string{"Message Queues"}},
	}
	matched, missing := m.Match(tokens, skills)

	assert.ElementsMatch(t, []string{"Object Oriented Programming", "AWS"}, matched)
	assert.Equal(t, []string{"Kafka"}, missing)
}

func TestMatchFuzzySpelling(t *testing.T) {
	m, norm := newTestMatcher(t, DefaultConfig())
	tokens := norm.Normalize("familiar with algoritms")

	matched, missing := m.Match(tokens, skillList("Algorithms"))

	assert.Equal(t, []string{"Algorithms"}, matched)
	assert.Empty(t, missing)
}

func TestMatchLemmatizedForms(t *testing.T) {
	m, norm := newTestMatcher(t, DefaultConfig())
	tokens := norm.Normalize("designed relational databases")

	matched, _ := m.Match(tokens, skillList("Databases"))
	assert.Equal(t, []string{"Databases"}, matched)
}

func TestMatchPartialThresholdFallback(t *testing.T) {
	// "javascript" scores 57 against "java": below the full threshold of 70
	// but above the relaxed fallback of 55.
	m, norm := newTestMatcher(t, DefaultConfig())
	tokens := norm.Normalize("javascript")

	matched, _ := m.Match(tokens, skillList("Java"))
	assert.Equal(t, []string{"Java"}, matched)

	strict, _ := newTestMatcher(t, Config{FullThreshold: 70, PartialThreshold: 60, TokenThreshold: 80})
	matched, missing := strict.Match(tokens, skillList("Java"))
	assert.Empty(t, matched)
	assert.Equal(t, []string{"Java"}, missing)
}

func TestMatchMultiWordTokenFallback(t *testing.T) {
	// A lone "design" mention satisfies the per-word check for the
	// two-word phrase "System Design".
	m, norm := newTestMatcher(t, DefaultConfig())
	tokens := norm.Normalize("led the design of a payments platform")

	matched, _ := m.Match(tokens, skillList("System Design"))
	assert.Equal(t, []string{"System Design"}, matched)
}

func TestMatchMissingPreservesDeclaredOrder(t *testing.T) {
	m, norm := newTestMatcher(t, DefaultConfig())
	tokens := norm.Normalize("java developer")

	_, missing := m.Match(tokens, skillList("Kubernetes", "Terraform", "Java", "Haskell"))
	assert.Equal(t, []string{"Kubernetes", "Terraform", "Haskell"}, missing)
}

func TestMatchPartition(t *testing.T) {
	m, norm := newTestMatcher(t, DefaultConfig())
	skills := skillList("Java", "Python", "SQL", "Kubernetes", "Terraform")

	cases := []string{
		"",
		"Java and SQL",
		"completely unrelated text about cooking",
		"Java Python SQL Kubernetes Terraform",
	}
	for _, resume := range cases {
		matched, missing := m.Match(norm.Normalize(resume), skills)

		assert.Len(t, append(matched, missing...), len(skills), "resume=%q", resume)
		seen := map[string]bool{}
		for _, s := range append(matched, missing...) {
			assert.False(t, seen[s], "duplicate %q for resume=%q", s, resume)
			seen[s] = true
		}
		for _, s := range skills {
			assert.True(t, seen[s.Name], "lost %q for resume=%q", s.Name, resume)
		}
	}
}

func TestMatchEmptyResume(t *testing.T) {
	m, _ := newTestMatcher(t, DefaultConfig())

	matched, missing := m.Match(nil, skillList("Java", "Python"))
	assert.Empty(t, matched)
	assert.Equal(t, []string{"Java", "Python"}, missing)
}
