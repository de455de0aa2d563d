package refdata

import "strings"

// SkillEntry is a canonical skill name with its alternate names.
type SkillEntry struct {
	Name    string
	Aliases []string
}

// SkillGroup is a presentation category with an ordered set of skill names.
type SkillGroup struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// Goal is a career target with its required skills and presentation groups.
// Goals are built once at startup and never mutated.
type Goal struct {
	Name   string
	Key    string
	Skills []SkillEntry
	Groups []SkillGroup
}

// SkillNames returns the goal's canonical skill names in declared order.
func (g *Goal) SkillNames() []string {
	out := make([]string, len(g.Skills))
	for i, s := range g.Skills {
		out[i] = s.Name
	}
	return out
}

// Tables is the read-only reference data shared across requests.
type Tables struct {
	goals       map[string]*Goal
	goalNames   []string
	suggestions map[string][]string
}

// NewTables builds reference tables from already-assembled goals and the
// goal-agnostic suggestion map.
func NewTables(goals []*Goal, suggestions map[string][]string) *Tables {
	t := &Tables{
		goals:       make(map[string]*Goal, len(goals)),
		goalNames:   make([]string, 0, len(goals)),
		suggestions: make(map[string][]string, len(suggestions)),
	}
	for _, g := range goals {
		t.goals[g.Name] = g
		t.goalNames = append(t.goalNames, g.Name)
	}
	for skill, items := range suggestions {
		t.suggestions[strings.ToLower(skill)] = items
	}
	return t
}

// Goal returns the goal for the given name, if supported.
func (t *Tables) Goal(name string) (*Goal, bool) {
	g, ok := t.goals[name]
	return g, ok
}

// GoalNames returns the supported goal names in declared order.
func (t *Tables) GoalNames() []string {
	return append([]string(nil), t.goalNames...)
}

// GoalKeys returns the artifact file keys for all supported goals.
func (t *Tables) GoalKeys() []string {
	out := make([]string, 0, len(t.goalNames))
	for _, name := range t.goalNames {
		out = append(out, t.goals[name].Key)
	}
	return out
}

// Suggestions returns the learning suggestions for a skill, case-insensitively.
// Skills without an entry return nil.
func (t *Tables) Suggestions(skill string) []string {
	return t.suggestions[strings.ToLower(skill)]
}

// GoalKey converts a goal name to its artifact file key, e.g.
// "Amazon SDE" -> "amazon_sde".
func GoalKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}
