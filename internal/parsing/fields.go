// Package parsing recovers structured career signals from raw resume text.
// All extraction functions are pure over their inputs; reference data is read
// at call time and missing data degrades to empty results.
package parsing

import (
	"regexp"
	"strconv"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// ExtractDegreeAndDomain scans the degree table in order and returns the first
// pair whose degree string occurs as a substring of the whitespace-normalized
// text. Two hard-coded fallbacks cover common engineering-degree spellings.
// Returns empty strings when nothing matches.
func ExtractDegreeAndDomain(text string, table []DegreeEntry) (string, string) {
	clean := whitespaceRun.ReplaceAllString(strings.ToLower(text), " ")

	for _, entry := range table {
		degree := strings.ToLower(entry.Degree)
		if degree != "" && strings.Contains(clean, degree) {
			return degree, strings.ToLower(entry.Domain)
		}
	}

	if strings.Contains(clean, "b.tech") || strings.Contains(clean, "btech") {
		return "bachelor of technology", "technology"
	}
	if strings.Contains(clean, "b.e") {
		return "bachelor of engineering", "technology"
	}

	return "", ""
}

// skillsSection bounds the searchable region: everything between a "skills"
// marker and the next projects/education/experience heading. Skills mentioned
// elsewhere in the document are intentionally ignored.
var skillsSection = regexp.MustCompile(`(?s)skills(.*?)(projects|education|experience)`)

// ExtractTechnicalSkills matches the taxonomy against the bounded skills
// section of the text. A category appears in the result only if at least one
// of its skills matched, and only matched skills are kept (in taxonomy order).
// No bounded section means no skills.
func ExtractTechnicalSkills(text string, taxonomy map[string][]string) map[string][]string {
	detected := make(map[string][]string)

	section := skillsSection.FindStringSubmatch(strings.ToLower(text))
	if section == nil {
		return detected
	}
	sectionText := section[1]

	for category, skills := range taxonomy {
		var matched []string
		for _, skill := range skills {
			pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`)
			if err != nil {
				continue
			}
			if pattern.MatchString(sectionText) {
				matched = append(matched, skill)
			}
		}
		if len(matched) > 0 {
			detected[category] = matched
		}
	}

	return detected
}

var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years`),
	regexp.MustCompile(`(\d+)\s*yrs`),
	regexp.MustCompile(`over\s*(\d+)\s*years`),
	regexp.MustCompile(`(\d+)\s*year`),
}

// ExtractExperienceYears collects every integer matched by the experience
// patterns across the whole text and returns the maximum, or 0 if none match.
// Maximum-over-matches is deliberate: resumes often mention shorter earlier
// spans before the total.
func ExtractExperienceYears(text string) int {
	lower := strings.ToLower(text)

	years := 0
	for _, pattern := range experiencePatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			n, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			if n > years {
				years = n
			}
		}
	}

	return years
}
