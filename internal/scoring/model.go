package scoring

// Request is the inbound scoring payload.
type Request struct {
	StudentID  string `json:"student_id" binding:"required"`
	Goal       string `json:"goal" binding:"required"`
	ResumeText string `json:"resume_text"`
}

// Result is the assembled scoring response. It is built fresh per request and
// never mutated afterwards.
type Result struct {
	Score                 float64             `json:"score"`
	IsPass                bool                `json:"is_pass"`
	MatchedSkills         []string            `json:"matched_skills"`
	MissingSkills         []string            `json:"missing_skills"`
	MissingSkillsGrouped  map[string][]string `json:"missing_skills_grouped"`
	SuggestedLearningPath []string            `json:"suggested_learning_path"`
}
