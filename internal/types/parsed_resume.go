// Package types contains the shared data structures passed between pipeline stages.
package types

// ParsedResume holds the structured fields recovered from a single resume document.
// It is produced once per file and treated as read-only by consumers.
type ParsedResume struct {
	Degree          string   `json:"degree,omitempty"`
	Domain          string   `json:"domain,omitempty"`
	TechnicalSkills SkillSet `json:"technical_skills"`
	ExperienceYears int      `json:"experience_years"`
}

// HasDegree reports whether a degree was recovered from the document.
func (r *ParsedResume) HasDegree() bool {
	return r.Degree != ""
}
