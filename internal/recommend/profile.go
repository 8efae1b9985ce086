// Package recommend blends semantic similarity and market signal into ranked
// career recommendations.
package recommend

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// BuildResumeProfile flattens a parsed resume into the single string that gets
// embedded: degree label, experience label, and the deduplicated union of all
// technical skills. Category grouping is discarded at this step.
func BuildResumeProfile(resume *types.ParsedResume) string {
	flatSkills := resume.TechnicalSkills.Flatten()

	combined := fmt.Sprintf("degree: %s experience: %d years technical skills: %s",
		resume.Degree, resume.ExperienceYears, strings.Join(flatSkills, " "))

	return strings.TrimSpace(strings.ToLower(combined))
}

// DynamicWeights selects the semantic/market blend from experience. Market
// demand matters relatively more for early-career candidates, where semantic
// fit alone is a weaker signal. The pair always sums to 1.
func DynamicWeights(experienceYears int) (semantic, market float64) {
	switch {
	case experienceYears <= 2:
		return 0.6, 0.4
	case experienceYears <= 7:
		return 0.7, 0.3
	default:
		return 0.8, 0.2
	}
}
