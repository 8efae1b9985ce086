// Package pipeline wires the parser, recommendation engine, and dashboard
// summarizer into the two entry points the surrounding system calls: parse a
// resume file into a structured record, and produce ranked recommendations
// from that record.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/corpus"
	"github.com/jonathan/career-compass/internal/dashboard"
	"github.com/jonathan/career-compass/internal/embedding"
	"github.com/jonathan/career-compass/internal/market"
	"github.com/jonathan/career-compass/internal/observability"
	"github.com/jonathan/career-compass/internal/parsing"
	"github.com/jonathan/career-compass/internal/recommend"
	"github.com/jonathan/career-compass/internal/types"
)

// Pipeline holds the service objects shared across requests. Construct one at
// process start and pass it by reference; there is no package-level state.
type Pipeline struct {
	parser     *parsing.Parser
	engine     *recommend.Engine
	summarizer *dashboard.Summarizer
	embedder   embedding.Embedder
	printer    *observability.Printer
	verbose    bool
}

// New loads the corpus and builds all service objects from config. A corpus
// that fails to load is the one hard failure: nothing can be scored without it.
func New(ctx context.Context, cfg config.Config, out io.Writer) (*Pipeline, error) {
	profiles, err := corpus.Load(cfg.CorpusPath)
	if err != nil {
		return nil, fmt.Errorf("corpus unavailable: %w", err)
	}

	embedder, err := embedding.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	cache := market.NewCache(cfg.MarketCachePath, cfg.MarketCacheTTL())
	client := market.NewClient(market.ClientConfig{
		AppID:   cfg.AdzunaAppID,
		AppKey:  cfg.AdzunaAppKey,
		Country: cfg.AdzunaCountry,
	})
	provider := market.NewProvider(cache, client)

	return &Pipeline{
		parser:     parsing.NewParser(cfg.DegreeTablePath, cfg.SkillTaxonomyPath),
		engine:     recommend.NewEngine(profiles, embedder, provider),
		summarizer: dashboard.NewSummarizer(profiles, embedder),
		embedder:   embedder,
		printer:    observability.NewPrinter(out),
		verbose:    cfg.Verbose,
	}, nil
}

// Close releases the embedder's underlying client.
func (p *Pipeline) Close() error {
	return p.embedder.Close()
}

// ParseResume extracts a structured record from the resume file at path.
func (p *Pipeline) ParseResume(path string) *types.ParsedResume {
	runID := uuid.New()
	slog.Info("parsing resume", "component", "pipeline", "run_id", runID, "path", path)

	resume := p.parser.ParseFile(path)
	if p.verbose {
		p.printer.PrintParsedResume(resume)
	}
	return resume
}

// Recommend parses the resume file and produces the ranked recommendation list.
func (p *Pipeline) Recommend(ctx context.Context, path string) (*types.ParsedResume, []types.Recommendation, error) {
	resume := p.ParseResume(path)

	recommendations, err := p.engine.Recommend(ctx, resume)
	if err != nil {
		return resume, nil, err
	}
	if p.verbose {
		p.printer.PrintRecommendations(recommendations)
	}
	return resume, recommendations, nil
}

// Dashboard parses the resume file and derives dashboard metrics for the
// best-fit career.
func (p *Pipeline) Dashboard(ctx context.Context, path string, topK int) (*types.DashboardSummary, error) {
	resume := p.ParseResume(path)

	summary, err := p.summarizer.Summarize(ctx, resume, topK)
	if err != nil {
		return nil, err
	}
	if p.verbose {
		p.printer.PrintDashboard(summary)
	}
	return summary, nil
}
