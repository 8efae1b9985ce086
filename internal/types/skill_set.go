package types

import (
	"encoding/json"
	"fmt"
	"sort"
)

// SkillSet represents skills attached to a resume, in one of two shapes:
// a flat list, or a mapping of category name to skills within that category.
// Exactly one of the two fields is populated. The zero value is an empty set.
type SkillSet struct {
	Flat        []string            `json:"-"`
	Categorized map[string][]string `json:"-"`
}

// FlatSkills builds a SkillSet from a plain list of skills.
func FlatSkills(skills []string) SkillSet {
	return SkillSet{Flat: skills}
}

// CategorizedSkills builds a SkillSet from a category -> skills mapping.
func CategorizedSkills(byCategory map[string][]string) SkillSet {
	return SkillSet{Categorized: byCategory}
}

// IsEmpty reports whether the set contains no skills.
func (s SkillSet) IsEmpty() bool {
	if len(s.Flat) > 0 {
		return false
	}
	for _, skills := range s.Categorized {
		if len(skills) > 0 {
			return false
		}
	}
	return true
}

// Flatten returns all skills as a deduplicated list with category grouping
// discarded. The order is deterministic: flat sets keep declaration order,
// categorized sets iterate categories alphabetically and keep in-category
// declaration order. Duplicates keep their first position.
func (s SkillSet) Flatten() []string {
	seen := make(map[string]bool)
	var flat []string

	appendSkill := func(skill string) {
		if skill == "" || seen[skill] {
			return
		}
		seen[skill] = true
		flat = append(flat, skill)
	}

	for _, skill := range s.Flat {
		appendSkill(skill)
	}

	categories := make([]string, 0, len(s.Categorized))
	for category := range s.Categorized {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		for _, skill := range s.Categorized[category] {
			appendSkill(skill)
		}
	}

	return flat
}

// MarshalJSON emits the underlying shape: a JSON array for flat sets, a JSON
// object for categorized sets, and {} for an empty set.
func (s SkillSet) MarshalJSON() ([]byte, error) {
	if s.Flat != nil {
		return json.Marshal(s.Flat)
	}
	if s.Categorized == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.Categorized)
}

// UnmarshalJSON accepts either a JSON array of skills or an object mapping
// category names to skill arrays.
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	var byCategory map[string][]string
	if err := json.Unmarshal(data, &byCategory); err == nil {
		*s = SkillSet{Categorized: byCategory}
		return nil
	}

	var flat []string
	if err := json.Unmarshal(data, &flat); err == nil {
		*s = SkillSet{Flat: flat}
		return nil
	}

	return fmt.Errorf("technical_skills must be a list or a category mapping")
}
