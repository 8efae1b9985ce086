package parsing

import (
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"os"
)

// DegreeEntry is one row of the degree reference table. Table order matters:
// the first degree found in a resume wins.
type DegreeEntry struct {
	Degree string
	Domain string
}

// LoadDegreeTable reads the (degree, domain) CSV reference table. A missing or
// unreadable file degrades to an empty table so extraction never fails closed
// on missing static data.
func LoadDegreeTable(path string) []DegreeEntry {
	f, err := os.Open(path)
	if err != nil {
		slog.Warn("degree table unavailable", "component", "parsing", "path", path, "error", err)
		return nil
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		slog.Warn("degree table unreadable", "component", "parsing", "path", path, "error", err)
		return nil
	}

	var table []DegreeEntry
	for i, record := range records {
		if len(record) < 2 {
			continue
		}
		// Skip the header row.
		if i == 0 && record[0] == "degree" {
			continue
		}
		table = append(table, DegreeEntry{Degree: record[0], Domain: record[1]})
	}

	return table
}

// LoadSkillTaxonomy reads the category -> skills JSON reference file. A missing
// or malformed file degrades to an empty taxonomy.
func LoadSkillTaxonomy(path string) map[string][]string {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("skill taxonomy unavailable", "component", "parsing", "path", path, "error", err)
		return map[string][]string{}
	}

	var taxonomy map[string][]string
	if err := json.Unmarshal(data, &taxonomy); err != nil {
		slog.Warn("skill taxonomy unreadable", "component", "parsing", "path", path, "error", err)
		return map[string][]string{}
	}

	return taxonomy
}
