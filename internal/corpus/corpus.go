// Package corpus loads and serves the static career-profile corpus.
//
// The corpus is a JSON asset produced offline (profiles plus precomputed
// embeddings) and loaded once at process start. Failure to load is the one
// hard error in the pipeline: there is no degraded behavior without profiles.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/career-compass/internal/types"
)

// profileSchema validates the corpus file shape before decoding. Catching a
// malformed asset here beats scoring against half-decoded profiles.
const profileSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["career_title", "skills", "embedding"],
    "properties": {
      "career_title": {"type": "string", "minLength": 1},
      "description": {"type": "string"},
      "skills": {"type": "array", "items": {"type": "string"}},
      "embedding": {"type": "array", "items": {"type": "number"}, "minItems": 1}
    }
  },
  "minItems": 1
}`

// Load reads, validates, and decodes the corpus file at path.
func Load(path string) ([]types.CareerProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus %s: %w", path, err)
	}

	schemaLoader := gojsonschema.NewStringLoader(profileSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("failed to validate corpus %s: %w", path, err)
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return nil, fmt.Errorf("invalid corpus %s: %s: %s", path, first.Field(), first.Description())
	}

	var profiles []types.CareerProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode corpus %s: %w", path, err)
	}

	return profiles, nil
}
