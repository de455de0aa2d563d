package refdata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Load reads the declarative reference data from dir and assembles the
// immutable tables: goals.json (goal -> ordered skill names),
// alternate_skills.json (skill -> aliases), skill_groups.json (goal -> ordered
// category groups) and suggestions.json (skill -> suggestion strings).
func Load(dir string) (*Tables, error) {
	var goalSkills map[string][]string
	if err := readJSON(filepath.Join(dir, "goals.json"), &goalSkills); err != nil {
		return nil, err
	}
	if len(goalSkills) == 0 {
		return nil, fmt.Errorf("goals.json: no goals declared")
	}

	var aliases map[string][]string
	if err := readJSON(filepath.Join(dir, "alternate_skills.json"), &aliases); err != nil {
		return nil, err
	}

	var groups map[string][]SkillGroup
	if err := readJSON(filepath.Join(dir, "skill_groups.json"), &groups); err != nil {
		return nil, err
	}

	var suggestions map[string][]string
	if err := readJSON(filepath.Join(dir, "suggestions.json"), &suggestions); err != nil {
		return nil, err
	}

	names := sortedKeys(goalSkills)
	goals := make([]*Goal, 0, len(names))
	for _, name := range names {
		g, err := buildGoal(name, goalSkills[name], aliases, groups[name])
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return NewTables(goals, suggestions), nil
}

func buildGoal(name string, skillNames []string, aliases map[string][]string, groups []SkillGroup) (*Goal, error) {
	if len(skillNames) == 0 {
		return nil, fmt.Errorf("goal %q: empty skill list", name)
	}
	seen := make(map[string]bool, len(skillNames))
	skills := make([]SkillEntry, 0, len(skillNames))
	for _, skillName := range skillNames {
		trimmed := strings.TrimSpace(skillName)
		if trimmed == "" {
			return nil, fmt.Errorf("goal %q: blank skill name", name)
		}
		lower := strings.ToLower(trimmed)
		if seen[lower] {
			return nil, fmt.Errorf("goal %q: duplicate skill %q", name, trimmed)
		}
		seen[lower] = true
		skills = append(skills, SkillEntry{
			Name:    trimmed,
			Aliases: append([]string(nil), aliases[trimmed]...),
		})
	}
	return &Goal{
		Name:   name,
		Key:    GoalKey(name),
		Skills: skills,
		Groups: append([]SkillGroup(nil), groups...),
	}, nil
}

func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

func sortedKeys(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	// Stable order for error messages and artifact loading.
	sort.Strings(out)
	return out
}
