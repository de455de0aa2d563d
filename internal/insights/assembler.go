package insights

import (
	"strings"

	"resume-scorer/internal/refdata"
)

// SuggestionLookup returns the suggestion strings for a canonical skill, or
// nil when the skill has none.
type SuggestionLookup func(skill string) []string

// GroupMissing places each missing skill into its declared category. Groups
// keep their declared order via the input slice; skills within a group keep
// missing-list order. Skills outside every declared group are omitted from
// the mapping only, never from the missing list itself.
func GroupMissing(missing []string, groups []refdata.SkillGroup) map[string][]string {
	grouped := make(map[string][]string)
	for _, group := range groups {
		declared := make(map[string]bool, len(group.Skills))
		for _, s := range group.Skills {
			declared[strings.ToLower(s)] = true
		}
		var members []string
		for _, s := range missing {
			if declared[strings.ToLower(s)] {
				members = append(members, s)
			}
		}
		if len(members) > 0 {
			grouped[group.Category] = members
		}
	}
	return grouped
}

// LearningPath concatenates the suggestion strings for each missing skill in
// missing-list order. Skills without a table entry contribute nothing;
// suggestion strings are not deduplicated across skills.
func LearningPath(missing []string, lookup SuggestionLookup) []string {
	path := make([]string, 0, len(missing))
	for _, skill := range missing {
		path = append(path, lookup(skill)...)
	}
	return path
}

// Assemble runs grouping and learning-path construction over the same capped
// missing list that ships in the response.
func Assemble(missing []string, groups []refdata.SkillGroup, lookup SuggestionLookup) (map[string][]string, []string) {
	return GroupMissing(missing, groups), LearningPath(missing, lookup)
}
