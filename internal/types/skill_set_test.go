package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillSet_FlattenFlat(t *testing.T) {
	set := FlatSkills([]string{"Python", "SQL", "Python", "Go"})

	assert.Equal(t, []string{"Python", "SQL", "Go"}, set.Flatten())
}

func TestSkillSet_FlattenCategorized(t *testing.T) {
	set := CategorizedSkills(map[string][]string{
		"languages": {"Python", "Java"},
		"databases": {"SQL", "Python"},
	})

	// Categories iterate alphabetically; duplicates keep their first position.
	assert.Equal(t, []string{"SQL", "Python", "Java"}, set.Flatten())
}

func TestSkillSet_FlattenEmpty(t *testing.T) {
	var set SkillSet

	assert.True(t, set.IsEmpty())
	assert.Empty(t, set.Flatten())
}

func TestSkillSet_UnmarshalCategorized(t *testing.T) {
	var set SkillSet
	err := json.Unmarshal([]byte(`{"languages":["Python"],"databases":["SQL"]}`), &set)

	require.NoError(t, err)
	assert.Nil(t, set.Flat)
	assert.Equal(t, map[string][]string{
		"languages": {"Python"},
		"databases": {"SQL"},
	}, set.Categorized)
}

func TestSkillSet_UnmarshalFlat(t *testing.T) {
	var set SkillSet
	err := json.Unmarshal([]byte(`["Go","Docker"]`), &set)

	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Docker"}, set.Flat)
	assert.Nil(t, set.Categorized)
}

func TestSkillSet_UnmarshalInvalid(t *testing.T) {
	var set SkillSet
	err := json.Unmarshal([]byte(`42`), &set)

	assert.Error(t, err)
}

func TestSkillSet_MarshalRoundTrip(t *testing.T) {
	set := CategorizedSkills(map[string][]string{"languages": {"Python"}})

	data, err := json.Marshal(set)
	require.NoError(t, err)

	var decoded SkillSet
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, set.Categorized, decoded.Categorized)
}

func TestMarketSnapshot_IsNeutral(t *testing.T) {
	assert.True(t, MarketSnapshot{}.IsNeutral())
	assert.False(t, MarketSnapshot{JobCount: 12}.IsNeutral())
}
