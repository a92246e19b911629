// Package pipeline streams candidate leads through hard exclusion and then
// scoring, partitions the survivors by priority tier, and emits an
// exclusion audit report. Exclusion runs first so expensive keyword scoring
// never touches leads that could not qualify, and so rule-based and
// score-based decisions stay auditable as two separate outcomes.
package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jonesrussell/leadfilter/internal/domain"
	"github.com/jonesrussell/leadfilter/internal/exclusion"
	"github.com/jonesrussell/leadfilter/internal/logger"
	"github.com/jonesrussell/leadfilter/internal/scoring"
	"github.com/jonesrussell/leadfilter/internal/telemetry"
)

const defaultConcurrency = 4

// Pipeline wires the exclusion engine and the score aggregator into a
// batch processor.
type Pipeline struct {
	engine      *exclusion.Engine
	aggregator  *scoring.Aggregator
	concurrency int
	telemetry   *telemetry.Provider
	log         logger.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithConcurrency sets the worker pool size.
func WithConcurrency(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithTelemetry attaches a telemetry provider.
func WithTelemetry(tp *telemetry.Provider) Option {
	return func(p *Pipeline) {
		p.telemetry = tp
	}
}

// New creates a pipeline.
func New(engine *exclusion.Engine, aggregator *scoring.Aggregator, log logger.Logger, opts ...Option) *Pipeline {
	if log == nil {
		log = logger.NewNop()
	}
	p := &Pipeline{
		engine:      engine,
		aggregator:  aggregator,
		concurrency: defaultConcurrency,
		log:         log,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// outcome is the per-lead result slot. Exactly one of verdict/score is set.
type outcome struct {
	verdict *domain.ExclusionVerdict
	score   *domain.ScoreResult
}

// Process runs a batch. Results are assembled per input index, so the
// partitions preserve input order regardless of worker interleaving.
// Cancelling the context stops the workers; results produced up to that
// point are still returned.
func (p *Pipeline) Process(ctx context.Context, leads []*domain.Lead) *Result {
	start := time.Now()
	runID := uuid.NewString()

	p.log.Info("starting batch",
		logger.String("run_id", runID),
		logger.Int("batch_size", len(leads)),
		logger.Int("concurrency", p.concurrency),
	)

	outcomes := p.processAll(ctx, leads)
	result := p.assemble(runID, leads, outcomes, time.Since(start))

	if p.telemetry != nil {
		p.telemetry.RecordBatch(len(leads), result.Duration)
	}
	p.log.Info("batch complete",
		logger.String("run_id", runID),
		logger.Int("scored", result.Statistics.Total),
		logger.Int("hard_excluded", len(result.Exclusions)),
		logger.Duration("duration", result.Duration),
	)
	return result
}

func (p *Pipeline) processAll(ctx context.Context, leads []*domain.Lead) []outcome {
	outcomes := make([]outcome, len(leads))
	if len(leads) == 0 {
		return outcomes
	}

	if p.telemetry != nil {
		spanCtx, span := p.telemetry.StartSpan(ctx, "pipeline.process",
			attribute.Int("batch_size", len(leads)))
		defer span.End()
		ctx = spanCtx
	}

	jobs := make(chan int, len(leads))
	var wg sync.WaitGroup
	for w := 0; w < p.concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				outcomes[idx] = p.processOne(leads[idx])
			}
		}()
	}
	for i := range leads {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return outcomes
}

func (p *Pipeline) processOne(lead *domain.Lead) outcome {
	start := time.Now()

	verdict := p.engine.Classify(lead)
	if verdict.Excluded {
		if p.telemetry != nil && len(verdict.Reasons) > 0 {
			p.telemetry.RecordExcluded(string(verdict.Reasons[0].Category))
		}
		return outcome{verdict: &verdict}
	}

	score := p.aggregator.CalculateScore(lead)
	if p.telemetry != nil {
		p.telemetry.RecordScored(string(score.Priority), time.Since(start))
	}
	return outcome{score: score}
}

func (p *Pipeline) assemble(runID string, leads []*domain.Lead, outcomes []outcome, elapsed time.Duration) *Result {
	result := &Result{
		RunID:      runID,
		Partitions: make(map[domain.Priority][]*domain.ScoreResult),
		Duration:   elapsed,
	}
	var scored []*domain.ScoreResult
	for i, o := range outcomes {
		switch {
		case o.score != nil:
			result.Partitions[o.score.Priority] = append(result.Partitions[o.score.Priority], o.score)
			scored = append(scored, o.score)
		case o.verdict != nil:
			result.Exclusions = append(result.Exclusions, exclusionEntry(leads[i], o.verdict))
		default:
			// Worker stopped before reaching this lead (context cancelled).
			result.Skipped++
		}
	}
	result.Statistics = scoring.Stats(scored)
	return result
}

func exclusionEntry(lead *domain.Lead, verdict *domain.ExclusionVerdict) domain.ExclusionEntry {
	entry := domain.ExclusionEntry{
		Address:     lead.Address,
		Domain:      lead.Domain(),
		MatchedTerm: verdict.MatchedTerm,
	}
	if len(verdict.Reasons) > 0 {
		entry.Category = verdict.Reasons[0].Category
	}
	return entry
}
