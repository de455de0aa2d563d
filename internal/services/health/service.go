package health

// Service encapsulates health and version reporting.
type Service struct {
	version string
	goals   []string
}

// NewService constructs a health service reporting the given version and
// supported goals.
func NewService(version string, goals []string) *Service {
	return &Service{version: version, goals: goals}
}

// Status returns a simple health payload.
func (s *Service) Status() map[string]bool {
	return map[string]bool{"ok": true}
}

// Info returns the version payload served on the root endpoint.
func (s *Service) Info() map[string]any {
	return map[string]any{
		"version":         s.version,
		"status":          "Resume Scoring Service Active",
		"supported_goals": s.goals,
	}
}
