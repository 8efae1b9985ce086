package dashboard

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

type mapEmbedder struct {
	vectors  map[string][]float32
	fallback []float32
	fail     bool
}

func (e *mapEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if e.fail {
		return nil, fmt.Errorf("embedding service down")
	}
	if vec, ok := e.vectors[text]; ok {
		return vec, nil
	}
	return e.fallback, nil
}

func (e *mapEmbedder) Close() error { return nil }

func testSummarizer() *Summarizer {
	profiles := []types.CareerProfile{
		{CareerTitle: "Data Analyst", Skills: []string{"sql", "python", "tableau"}, Embedding: []float32{1, 0}},
		{CareerTitle: "Web Developer", Skills: []string{"javascript"}, Embedding: []float32{0.8, 0.6}},
		{CareerTitle: "Writer", Skills: []string{"editing"}, Embedding: []float32{0, 1}},
	}
	embedder := &mapEmbedder{
		vectors: map[string][]float32{
			"degree: bachelor of science experience: 0 years technical skills: sql": {1, 0},
			"sql": {1, 0},
		},
		fallback: []float32{0, 1},
	}
	return NewSummarizer(profiles, embedder)
}

func summaryResume() *types.ParsedResume {
	return &types.ParsedResume{
		Degree:          "bachelor of science",
		TechnicalSkills: types.CategorizedSkills(map[string][]string{"databases": {"sql"}}),
	}
}

func TestSummarize_Metrics(t *testing.T) {
	summarizer := testSummarizer()

	summary, err := summarizer.Summarize(context.Background(), summaryResume(), 0)

	require.NoError(t, err)

	// Similarities: 1.0, 0.8, 0.0. Two exceed the 20% job-match threshold.
	assert.Equal(t, 2, summary.JobMatches)

	// Best fit is Data Analyst with 1 of 3 skills matched.
	assert.Equal(t, 1, summary.SkillsMastered)
	assert.Equal(t, 3, summary.TotalTargetSkills)
	assert.Equal(t, 100, summary.ResumeFit)
	assert.Equal(t, 33, summary.InterviewReadiness)

	// mean(top-3 sims)=0.6 -> 0.6*70 + (1/3)*30 = 52.
	assert.Equal(t, 52, summary.ResumeScore)
	// 0.7*1.0 + 0.3*(1/3) = 0.8 -> 80.
	assert.Equal(t, 80, summary.JobMatchStrength)
}

func TestSummarize_TopJobTags(t *testing.T) {
	summarizer := testSummarizer()

	summary, err := summarizer.Summarize(context.Background(), summaryResume(), 5)

	require.NoError(t, err)
	require.Len(t, summary.TopJobs, 3, "top-k capped at corpus size")

	assert.Equal(t, "Data Analyst", summary.TopJobs[0].CareerTitle)
	assert.Equal(t, types.TagHot, summary.TopJobs[0].Tag)
	assert.Equal(t, types.TagNew, summary.TopJobs[1].Tag)
	assert.Equal(t, types.TagNormal, summary.TopJobs[2].Tag)
}

func TestSummarize_SkillGapsInProfileOrder(t *testing.T) {
	summarizer := testSummarizer()

	summary, err := summarizer.Summarize(context.Background(), summaryResume(), 0)

	require.NoError(t, err)
	assert.Equal(t, []string{"python", "tableau"}, summary.SkillGaps)
}

func TestSummarize_EmbeddingFailure(t *testing.T) {
	summarizer := testSummarizer()
	summarizer.embedder = &mapEmbedder{fail: true}

	_, err := summarizer.Summarize(context.Background(), summaryResume(), 0)

	assert.Error(t, err)
}
