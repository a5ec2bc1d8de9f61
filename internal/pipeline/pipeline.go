package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/abhindeves/fake-news-detector/internal/cache"
	"github.com/abhindeves/fake-news-detector/internal/enrich"
	"github.com/abhindeves/fake-news-detector/internal/llm"
	"github.com/abhindeves/fake-news-detector/internal/model"
	"github.com/abhindeves/fake-news-detector/internal/search"
)

// Pipeline coordinates the verification phases in strict order: extract,
// gather (fan-out), evaluate (fan-out), synthesize. All entities created
// during one Verify call belong to that call; concurrent runs share nothing
// mutable.
type Pipeline struct {
	extractor   *Extractor
	gatherer    *Gatherer
	evaluator   *Evaluator
	synthesizer *Synthesizer
	enricher    *enrich.Enricher // nil when enrichment is disabled
}

// New builds a pipeline from configuration, constructing the LLM and search
// providers from their factories.
func New(cfg *model.Config) (*Pipeline, error) {
	llmProvider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, fmt.Errorf("LLM provider: %w", err)
	}

	searchProvider, err := search.NewProvider(search.ConfigFromModel(cfg.Search))
	if err != nil {
		return nil, fmt.Errorf("search provider: %w", err)
	}

	return NewWithProviders(cfg, llmProvider, searchProvider), nil
}

// NewWithProviders builds a pipeline around explicitly constructed backends.
// Used directly by tests to inject doubles.
func NewWithProviders(cfg *model.Config, llmProvider llm.Provider, searchProvider search.Provider) *Pipeline {
	var queryCache cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			queryCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			queryCache = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*time.Minute)
		}
	}

	var enricher *enrich.Enricher
	if cfg.Enrich.Enabled {
		enricher = enrich.NewEnricher(cfg.Enrich)
	}

	return &Pipeline{
		extractor:   NewExtractor(llmProvider),
		gatherer:    NewGatherer(searchProvider, queryCache, cfg.Concurrency.GatherWorkers, cfg.Search.MaxResults),
		evaluator:   NewEvaluator(llmProvider, cfg.Concurrency.EvaluateWorkers),
		synthesizer: NewSynthesizer(llmProvider),
		enricher:    enricher,
	}
}

// Verify runs the full pipeline for one statement and returns the complete
// report. ErrEmptyStatement, ExtractionError and SynthesisError are fatal;
// gathering and evaluation failures degrade per-assumption instead.
func (p *Pipeline) Verify(ctx context.Context, rawStatement string) (*model.Report, error) {
	statement := model.NewStatement(rawStatement)
	if statement.IsEmpty() {
		return nil, ErrEmptyStatement
	}

	started := time.Now()
	report := &model.Report{
		Statement:  statement,
		VerifiedAt: started.UTC(),
	}

	// Phase 1: extraction. Must fully complete before gathering starts.
	phaseStart := time.Now()
	assumptions, err := p.extractor.Extract(ctx, statement)
	if err != nil {
		return nil, err
	}
	report.Assumptions = assumptions
	report.Timing.Extract = time.Since(phaseStart)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Phase 2: gathering. Joins every per-assumption fetch before returning.
	phaseStart = time.Now()
	evidence := p.gatherer.Gather(ctx, assumptions)
	if p.enricher != nil {
		evidence = p.enricher.EnrichSet(ctx, evidence)
	}
	report.Evidence = evidence
	report.Timing.Gather = time.Since(phaseStart)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Phase 3: evaluation. One task per assumption, joined before synthesis.
	phaseStart = time.Now()
	verdicts := p.evaluator.EvaluateAll(ctx, statement, assumptions, evidence)
	report.Verdicts = verdicts
	report.Breakdown = model.Tally(verdicts)
	report.Timing.Evaluate = time.Since(phaseStart)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Phase 4: synthesis
	phaseStart = time.Now()
	final, err := p.synthesizer.Synthesize(ctx, statement, verdicts)
	if err != nil {
		return nil, err
	}
	report.Final = final
	report.Timing.Synthesize = time.Since(phaseStart)
	report.Timing.Total = time.Since(started)

	return report, nil
}
