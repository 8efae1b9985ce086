package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-compass/internal/corpus"
	"github.com/jonathan/career-compass/internal/embedding"
	"github.com/jonathan/career-compass/internal/types"
)

const (
	// skillMatchThreshold is the cosine similarity at or above which a
	// profile skill counts as matched by the resume.
	skillMatchThreshold = 0.35
	// missingSkillCap truncates the missing list, in profile-skill order.
	missingSkillCap = 5
	// minFinalScore filters out recommendations at or below this score.
	minFinalScore = 20.0
	// marketLookupLimit bounds concurrent per-profile market lookups.
	marketLookupLimit = 8
)

// MarketProvider supplies a labor-market snapshot per career title. It never
// fails; degraded availability surfaces as a neutral snapshot.
type MarketProvider interface {
	Fetch(ctx context.Context, title string) types.MarketSnapshot
}

// Engine scores a parsed resume against the career corpus. Construct one per
// process and share it; the corpus is read-only and skill embeddings are
// memoized across requests.
type Engine struct {
	profiles []types.CareerProfile
	embedder embedding.Embedder
	market   MarketProvider

	mu        sync.Mutex
	skillVecs map[string][]float32
}

// NewEngine creates an engine over the loaded corpus.
func NewEngine(profiles []types.CareerProfile, embedder embedding.Embedder, market MarketProvider) *Engine {
	return &Engine{
		profiles:  profiles,
		embedder:  embedder,
		market:    market,
		skillVecs: make(map[string][]float32),
	}
}

// Recommend produces the full ranked, filtered recommendation list for a
// parsed resume. Results are sorted descending by final score and every entry
// satisfies final_score > 20. Market lookups run on a bounded worker pool; the
// cache absorbs their cost after warm-up.
func (e *Engine) Recommend(ctx context.Context, resume *types.ParsedResume) ([]types.Recommendation, error) {
	logger := slog.With("component", "recommend", "operation", "recommend")

	profileText := BuildResumeProfile(resume)
	resumeVec, err := e.embedder.Embed(ctx, profileText)
	if err != nil {
		return nil, fmt.Errorf("failed to embed resume profile: %w", err)
	}

	ranked := corpus.RankBySimilarity(e.profiles, resumeVec)
	semanticWeight, marketWeight := DynamicWeights(resume.ExperienceYears)

	results := make([]types.Recommendation, len(ranked))
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(marketLookupLimit)

	for i, entry := range ranked {
		group.Go(func() error {
			snapshot := e.market.Fetch(gctx, entry.Profile.CareerTitle)
			matched, missing := e.skillGap(gctx, resumeVec, entry.Profile)

			semanticScore := round2(entry.Similarity * 100)
			results[i] = types.Recommendation{
				CareerTitle:    entry.Profile.CareerTitle,
				SemanticScore:  semanticScore,
				MarketScore:    snapshot.MarketScore,
				FinalScore:     round2(semanticScore*semanticWeight + snapshot.MarketScore*marketWeight),
				SemanticWeight: semanticWeight,
				MarketWeight:   marketWeight,
				JobCount:       snapshot.JobCount,
				AverageSalary:  snapshot.AverageSalary,
				MatchedSkills:  matched,
				MissingSkills:  missing,
			}
			return nil
		})
	}
	// Workers absorb their own failures, so Wait only reflects ctx cancellation.
	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})

	recommendations := make([]types.Recommendation, 0, len(results))
	for _, r := range results {
		if r.FinalScore > minFinalScore {
			recommendations = append(recommendations, r)
		}
	}

	logger.Info("recommendations ready",
		"profiles_scored", len(results),
		"kept", len(recommendations),
		"semantic_weight", semanticWeight,
	)

	return recommendations, nil
}

// skillGap partitions a profile's skills by embedding similarity against the
// resume. Both lists keep profile declaration order; missing is capped at 5.
// A skill whose embedding cannot be computed counts as missing.
func (e *Engine) skillGap(ctx context.Context, resumeVec []float32, profile *types.CareerProfile) (matched, missing []string) {
	matched = make([]string, 0, len(profile.Skills))
	missing = make([]string, 0, len(profile.Skills))

	for _, skill := range profile.Skills {
		vec, err := e.skillEmbedding(ctx, skill)
		if err != nil {
			slog.Warn("failed to embed skill",
				"component", "recommend", "skill", skill, "error", err)
			missing = append(missing, skill)
			continue
		}
		if embedding.CosineSimilarity(resumeVec, vec) >= skillMatchThreshold {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	if len(missing) > missingSkillCap {
		missing = missing[:missingSkillCap]
	}
	return matched, missing
}

// skillEmbedding memoizes per-skill embeddings; profile skills repeat across
// requests and the vectors are immutable.
func (e *Engine) skillEmbedding(ctx context.Context, skill string) ([]float32, error) {
	e.mu.Lock()
	vec, ok := e.skillVecs[skill]
	e.mu.Unlock()
	if ok {
		return vec, nil
	}

	vec, err := e.embedder.Embed(ctx, skill)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.skillVecs[skill] = vec
	e.mu.Unlock()
	return vec, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
