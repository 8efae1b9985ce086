package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/career-compass/internal/embedding"
)

// ONetProfile is one occupation entry from the processed O*NET dataset.
type ONetProfile struct {
	Title    string `json:"title"`
	ONetCode string `json:"onet_code"`
}

// TitleMapping records the best O*NET match for one career title.
type TitleMapping struct {
	CareerTitle      string  `json:"career_title"`
	MatchedONetTitle string  `json:"matched_onet_title"`
	SimilarityScore  float64 `json:"similarity_score"`
	ONetCode         string  `json:"onet_code"`
}

// MapTitles maps each career title to the O*NET occupation whose title embeds
// closest to it. This is a build-time utility for corpus curation, not part of
// the request path, so titles are embedded on the fly.
func MapTitles(ctx context.Context, embedder embedding.Embedder, careerTitles []string, onetProfiles []ONetProfile) ([]TitleMapping, error) {
	if len(onetProfiles) == 0 {
		return nil, fmt.Errorf("no O*NET profiles to match against")
	}

	onetEmbeddings := make([][]float32, len(onetProfiles))
	for i, profile := range onetProfiles {
		vec, err := embedder.Embed(ctx, profile.Title)
		if err != nil {
			return nil, fmt.Errorf("failed to embed O*NET title %q: %w", profile.Title, err)
		}
		onetEmbeddings[i] = vec
	}

	mappings := make([]TitleMapping, 0, len(careerTitles))
	for _, title := range careerTitles {
		vec, err := embedder.Embed(ctx, title)
		if err != nil {
			return nil, fmt.Errorf("failed to embed career title %q: %w", title, err)
		}

		bestIndex := 0
		bestScore := -1.0
		for i, onetVec := range onetEmbeddings {
			score := embedding.CosineSimilarity(vec, onetVec)
			if score > bestScore {
				bestScore = score
				bestIndex = i
			}
		}

		mappings = append(mappings, TitleMapping{
			CareerTitle:      title,
			MatchedONetTitle: onetProfiles[bestIndex].Title,
			SimilarityScore:  bestScore,
			ONetCode:         onetProfiles[bestIndex].ONetCode,
		})
	}

	return mappings, nil
}

// WriteMappings saves title mappings as indented JSON.
func WriteMappings(path string, mappings []TitleMapping) error {
	data, err := json.MarshalIndent(mappings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode title mappings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
