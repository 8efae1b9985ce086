package corpus

import (
	"sort"

	"github.com/jonathan/career-compass/internal/embedding"
	"github.com/jonathan/career-compass/internal/types"
)

// Ranked pairs a corpus profile with its similarity to a resume embedding.
type Ranked struct {
	Profile    *types.CareerProfile
	Similarity float64
}

// RankBySimilarity orders all profiles descending by cosine similarity to the
// resume embedding. The sort is stable, so ties keep corpus order.
func RankBySimilarity(profiles []types.CareerProfile, resumeEmbedding []float32) []Ranked {
	ranked := make([]Ranked, len(profiles))
	for i := range profiles {
		ranked[i] = Ranked{
			Profile:    &profiles[i],
			Similarity: embedding.CosineSimilarity(resumeEmbedding, profiles[i].Embedding),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Similarity > ranked[j].Similarity
	})

	return ranked
}
