package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testDegreeTable = []DegreeEntry{
	{Degree: "master of science", Domain: "science"},
	{Degree: "bachelor of science", Domain: "science"},
	{Degree: "bachelor of commerce", Domain: "commerce"},
}

func TestExtractDegreeAndDomain_FirstMatchWins(t *testing.T) {
	// Both degrees occur; table order breaks the tie.
	text := "completed bachelor of science, then master of science in physics"

	degree, domain := ExtractDegreeAndDomain(text, testDegreeTable)

	assert.Equal(t, "master of science", degree)
	assert.Equal(t, "science", domain)
}

func TestExtractDegreeAndDomain_WhitespaceNormalized(t *testing.T) {
	text := "Bachelor   of\n\tCommerce from somewhere"

	degree, domain := ExtractDegreeAndDomain(text, testDegreeTable)

	assert.Equal(t, "bachelor of commerce", degree)
	assert.Equal(t, "commerce", domain)
}

func TestExtractDegreeAndDomain_BTechFallback(t *testing.T) {
	degree, domain := ExtractDegreeAndDomain("graduated with a b.tech in 2019", testDegreeTable)

	assert.Equal(t, "bachelor of technology", degree)
	assert.Equal(t, "technology", domain)
}

func TestExtractDegreeAndDomain_BEFallback(t *testing.T) {
	degree, domain := ExtractDegreeAndDomain("b.e. mechanical engineering", nil)

	assert.Equal(t, "bachelor of engineering", degree)
	assert.Equal(t, "technology", domain)
}

func TestExtractDegreeAndDomain_NoMatch(t *testing.T) {
	degree, domain := ExtractDegreeAndDomain("self-taught developer", testDegreeTable)

	assert.Equal(t, "", degree)
	assert.Equal(t, "", domain)
}

var testTaxonomy = map[string][]string{
	"languages": {"python", "java"},
	"databases": {"sql"},
}

func TestExtractTechnicalSkills_BoundedSection(t *testing.T) {
	text := "skills: python, sql projects: built a scraper in java"

	detected := ExtractTechnicalSkills(text, testTaxonomy)

	// java appears only outside the skills section and must be ignored.
	assert.Equal(t, map[string][]string{
		"languages": {"python"},
		"databases": {"sql"},
	}, detected)
}

func TestExtractTechnicalSkills_NoSkillsMarker(t *testing.T) {
	text := "experienced with python and sql on large projects"

	assert.Empty(t, ExtractTechnicalSkills(text, testTaxonomy))
}

func TestExtractTechnicalSkills_SectionSpansNewlines(t *testing.T) {
	text := "skills\npython\nsql\neducation: some university"

	detected := ExtractTechnicalSkills(text, testTaxonomy)

	assert.Equal(t, []string{"python"}, detected["languages"])
	assert.Equal(t, []string{"sql"}, detected["databases"])
}

func TestExtractTechnicalSkills_WholeWordOnly(t *testing.T) {
	// "javascript" must not match the "java" taxonomy entry.
	text := "skills: javascript projects:"

	detected := ExtractTechnicalSkills(text, testTaxonomy)

	assert.Empty(t, detected["languages"])
}

func TestExtractExperienceYears_MaxOverMatches(t *testing.T) {
	text := "5+ years of experience, previously 2 years"

	assert.Equal(t, 5, ExtractExperienceYears(text))
}

func TestExtractExperienceYears_YrsVariant(t *testing.T) {
	assert.Equal(t, 3, ExtractExperienceYears("worked for 3 yrs as a developer"))
}

func TestExtractExperienceYears_OverVariant(t *testing.T) {
	assert.Equal(t, 10, ExtractExperienceYears("over 10 years in the industry"))
}

func TestExtractExperienceYears_NoneFound(t *testing.T) {
	assert.Equal(t, 0, ExtractExperienceYears("fresh graduate looking for a first role"))
}
