package matching

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"resume-scorer/internal/refdata"
	"resume-scorer/internal/textnorm"
)

// Config holds the fuzzy similarity thresholds (fuzzywuzzy ratio, 0-100).
type Config struct {
	// FullThreshold applies to canonical names and aliases.
	FullThreshold int
	// PartialThreshold is the relaxed last-chance threshold for the
	// canonical name once every alias has failed.
	PartialThreshold int
	// TokenThreshold applies to single words of a multi-word phrase.
	TokenThreshold int
}

// DefaultConfig returns the shipped thresholds.
func DefaultConfig() Config {
	return Config{FullThreshold: 70, PartialThreshold: 55, TokenThreshold: 80}
}

// Matcher partitions a goal's skill list into matched and missing skills
// against a normalized resume.
type Matcher struct {
	norm *textnorm.Normalizer
	cfg  Config
}

// New constructs a Matcher.
func New(norm *textnorm.Normalizer, cfg Config) *Matcher {
	return &Matcher{norm: norm, cfg: cfg}
}

// Match tests each canonical skill for presence in the resume tokens: the
// canonical name at the full threshold, then any alias at the full threshold
// (first satisfying alias wins), then the canonical name again at the relaxed
// partial threshold. Missing skills keep the declared skill order; every skill
// lands in exactly one of the two lists.
func (m *Matcher) Match(resumeTokens []string, skills []refdata.SkillEntry) (matched []string, missing []string) {
	for _, skill := range skills {
		if m.matches(skill, resumeTokens) {
			matched = append(matched, skill.Name)
		} else {
			missing = append(missing, skill.Name)
		}
	}
	return matched, missing
}

func (m *Matcher) matches(skill refdata.SkillEntry, resumeTokens []string) bool {
	if m.present(skill.Name, resumeTokens, m.cfg.FullThreshold) {
		return true
	}
	for _, alt := range skill.Aliases {
		if m.present(alt, resumeTokens, m.cfg.FullThreshold) {
			return true
		}
	}
	return m.present(skill.Name, resumeTokens, m.cfg.PartialThreshold)
}

// present slides a window of the phrase's length over the lemmatized resume
// and accepts the phrase once any window clears the threshold. Multi-word
// phrases additionally match when any single phrase word hits any resume
// token at the token threshold, which catches partial mentions like "design"
// for "System Design".
func (m *Matcher) present(phrase string, resumeTokens []string, threshold int) bool {
	phraseTokens := m.norm.Normalize(phrase)
	n := len(phraseTokens)
	if n == 0 || len(resumeTokens) == 0 {
		return false
	}

	target := strings.Join(phraseTokens, " ")
	for i := 0; i+n <= len(resumeTokens); i++ {
		candidate := strings.Join(resumeTokens[i:i+n], " ")
		if fuzzy.Ratio(candidate, target) >= threshold {
			return true
		}
	}

	if n > 1 {
		for _, word := range phraseTokens {
			for _, token := range resumeTokens {
				if fuzzy.Ratio(word, token) >= m.cfg.TokenThreshold {
					return true
				}
			}
		}
	}
	return false
}
