// Package dashboard derives presentation-oriented aggregate metrics from a
// parsed resume and the career corpus, focused on the single best-fit profile.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/jonathan/career-compass/internal/corpus"
	"github.com/jonathan/career-compass/internal/embedding"
	"github.com/jonathan/career-compass/internal/recommend"
	"github.com/jonathan/career-compass/internal/types"
)

const (
	// DefaultTopK is the number of top careers listed on the dashboard.
	DefaultTopK = 5
	// jobMatchThreshold counts a profile as a "job match" when its match
	// percentage exceeds it. A coarse market-breadth signal.
	jobMatchThreshold = 20.0
	// Tag thresholds on match percentage.
	hotThreshold = 80.0
	newThreshold = 65.0
	// skillMatchThreshold mirrors the recommendation engine's gap threshold.
	skillMatchThreshold = 0.35
	// maxSkillGaps caps the reported gap list.
	maxSkillGaps = 5
)

// Summarizer computes dashboard summaries against a fixed corpus. Like the
// recommendation engine, it is constructed once and shared.
type Summarizer struct {
	profiles []types.CareerProfile
	embedder embedding.Embedder
}

// NewSummarizer creates a summarizer over the loaded corpus.
func NewSummarizer(profiles []types.CareerProfile, embedder embedding.Embedder) *Summarizer {
	return &Summarizer{profiles: profiles, embedder: embedder}
}

// Summarize ranks the corpus against the resume and derives metrics for the
// best-fit profile. topK <= 0 selects DefaultTopK.
func (s *Summarizer) Summarize(ctx context.Context, resume *types.ParsedResume, topK int) (*types.DashboardSummary, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	profileText := recommend.BuildResumeProfile(resume)
	resumeVec, err := s.embedder.Embed(ctx, profileText)
	if err != nil {
		return nil, fmt.Errorf("failed to embed resume profile: %w", err)
	}

	ranked := corpus.RankBySimilarity(s.profiles, resumeVec)
	if len(ranked) == 0 {
		return nil, fmt.Errorf("career corpus is empty")
	}
	if topK > len(ranked) {
		topK = len(ranked)
	}

	jobMatches := 0
	for _, entry := range ranked {
		if entry.Similarity*100 > jobMatchThreshold {
			jobMatches++
		}
	}

	topJobs := make([]types.TopJob, 0, topK)
	for _, entry := range ranked[:topK] {
		matchPercentage := round2(entry.Similarity * 100)
		topJobs = append(topJobs, types.TopJob{
			CareerTitle:     entry.Profile.CareerTitle,
			MatchPercentage: matchPercentage,
			Tag:             tagFor(matchPercentage),
		})
	}

	best := ranked[0]
	matched := s.matchedSkills(ctx, resumeVec, best.Profile)

	totalTargetSkills := len(best.Profile.Skills)
	skillRatio := 0.0
	if totalTargetSkills > 0 {
		skillRatio = float64(len(matched)) / float64(totalTargetSkills)
	}

	// Gap list stays in profile-skill declaration order for reproducibility.
	gaps := make([]string, 0, maxSkillGaps)
	for _, skill := range best.Profile.Skills {
		if len(gaps) == maxSkillGaps {
			break
		}
		if !matched[skill] {
			gaps = append(gaps, skill)
		}
	}

	return &types.DashboardSummary{
		ResumeScore:        roundInt(meanTopSimilarities(ranked, 3)*70 + skillRatio*30),
		JobMatches:         jobMatches,
		SkillsMastered:     len(matched),
		TotalTargetSkills:  totalTargetSkills,
		ResumeFit:          roundInt(best.Similarity * 100),
		InterviewReadiness: roundInt(skillRatio * 100),
		JobMatchStrength:   roundInt((best.Similarity*0.7 + skillRatio*0.3) * 100),
		TopJobs:            topJobs,
		SkillGaps:          gaps,
	}, nil
}

// matchedSkills reports which of the profile's skills embed close enough to
// the resume. Skills that fail to embed count as unmatched.
func (s *Summarizer) matchedSkills(ctx context.Context, resumeVec []float32, profile *types.CareerProfile) map[string]bool {
	matched := make(map[string]bool)
	for _, skill := range profile.Skills {
		vec, err := s.embedder.Embed(ctx, skill)
		if err != nil {
			slog.Warn("failed to embed skill",
				"component", "dashboard", "skill", skill, "error", err)
			continue
		}
		if embedding.CosineSimilarity(resumeVec, vec) >= skillMatchThreshold {
			matched[skill] = true
		}
	}
	return matched
}

func tagFor(matchPercentage float64) string {
	switch {
	case matchPercentage > hotThreshold:
		return types.TagHot
	case matchPercentage > newThreshold:
		return types.TagNew
	default:
		return types.TagNormal
	}
}

// meanTopSimilarities averages the similarities of the first n ranked entries
// (fewer if the corpus is smaller).
func meanTopSimilarities(ranked []corpus.Ranked, n int) float64 {
	if n > len(ranked) {
		n = len(ranked)
	}
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, entry := range ranked[:n] {
		sum += entry.Similarity
	}
	return sum / float64(n)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
