package parsing

import (
	"log/slog"

	"github.com/jonathan/career-compass/internal/extraction"
	"github.com/jonathan/career-compass/internal/types"
)

// rawPreviewLen is how much extracted text gets logged for debugging.
const rawPreviewLen = 500

// Parser turns resume files into ParsedResume records using two static
// reference datasets. Reference files are re-read on every parse; callers that
// parse in a tight loop can cache at a higher layer.
type Parser struct {
	degreeTablePath   string
	skillTaxonomyPath string
}

// NewParser creates a parser reading reference data from the given paths.
func NewParser(degreeTablePath, skillTaxonomyPath string) *Parser {
	return &Parser{
		degreeTablePath:   degreeTablePath,
		skillTaxonomyPath: skillTaxonomyPath,
	}
}

// ParseFile extracts text from the resume at path and recovers all structured
// fields. Extraction failures degrade to an empty record, never an error.
func (p *Parser) ParseFile(path string) *types.ParsedResume {
	text := extraction.FromFile(path)

	preview := text
	if len(preview) > rawPreviewLen {
		preview = preview[:rawPreviewLen]
	}
	slog.Debug("extracted resume text",
		"component", "parsing",
		"operation", "parse_file",
		"path", path,
		"preview", preview,
	)

	return p.ParseText(text)
}

// ParseText recovers structured fields from already-extracted resume text.
func (p *Parser) ParseText(text string) *types.ParsedResume {
	degree, domain := ExtractDegreeAndDomain(text, LoadDegreeTable(p.degreeTablePath))
	skills := ExtractTechnicalSkills(text, LoadSkillTaxonomy(p.skillTaxonomyPath))

	return &types.ParsedResume{
		Degree:          degree,
		Domain:          domain,
		TechnicalSkills: types.CategorizedSkills(skills),
		ExperienceYears: ExtractExperienceYears(text),
	}
}
