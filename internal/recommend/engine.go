// Package recommend orchestrates the fit aggregator across a job pool:
// filtering by thresholds, deterministic ranking, truncation, insights, and
// alternate-weight scenarios.
package recommend

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobfit-engine/internal/scoring"
	"github.com/jonathan/jobfit-engine/internal/types"
)

// maxScoringWorkers bounds the worker pool for the per-job scoring map
// phase. Scoring is CPU-bound and independent per job; ordering is restored
// by the final sort, so the pool size never affects the result.
const maxScoringWorkers = 8

// Engine generates ranked job recommendations for one candidate. It holds no
// mutable state between calls; concurrent calls never interfere.
type Engine struct {
	logger *zap.Logger
}

// New creates an Engine. A nil logger disables step logging.
func New(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// GenerateRecommendations scores every job in the pool, drops matches below
// the configured fit and confidence floors, and returns the remainder ranked
// and truncated to the configured maximum. Invalid config or criteria is
// rejected with a ValidationError before any scoring runs.
func (e *Engine) GenerateRecommendations(ctx context.Context, criteria types.MatchCriteria, jobs []types.Job, cfg types.RecommendationConfig) ([]types.Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("recommendation config: %w", err)
	}
	if err := criteria.Validate(); err != nil {
		return nil, fmt.Errorf("match criteria: %w", err)
	}

	weights := types.DefaultWeights()
	if cfg.Weights != nil {
		weights = *cfg.Weights
	}

	scored, err := e.scoreAll(ctx, criteria, jobs, weights)
	if err != nil {
		return nil, err
	}

	kept := make([]types.Match, 0, len(scored))
	for _, match := range scored {
		if match.FitScore.Overall < cfg.MinFitScore || match.FitScore.Confidence < cfg.MinConfidence {
			continue
		}
		kept = append(kept, match)
	}

	e.logger.Info("filtered job pool",
		zap.Int("scored", len(scored)),
		zap.Int("dropped", len(scored)-len(kept)),
		zap.Int("left", len(kept)),
	)

	sortMatches(kept)

	if len(kept) > cfg.MaxRecommendations {
		kept = kept[:cfg.MaxRecommendations]
	}
	return kept, nil
}

// scoreAll runs the scoring map phase over the pool with a bounded worker
// pool. Each worker writes to its own index, so the output is independent of
// scheduling.
func (e *Engine) scoreAll(ctx context.Context, criteria types.MatchCriteria, jobs []types.Job, weights types.WeightVector) ([]types.Match, error) {
	matches := make([]types.Match, len(jobs))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxScoringWorkers)
	for i := range jobs {
		i := i
		g.Go(func() error {
			matches[i] = scoring.Evaluate(criteria, jobs[i], weights)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scoring pool: %w", err)
	}
	return matches, nil
}

// sortMatches orders matches by overall fit descending, then confidence
// descending, then posting recency descending, then job ID ascending. The
// final key makes the order total and the output deterministic.
func sortMatches(matches []types.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.FitScore.Overall != b.FitScore.Overall {
			return a.FitScore.Overall > b.FitScore.Overall
		}
		if a.FitScore.Confidence != b.FitScore.Confidence {
			return a.FitScore.Confidence > b.FitScore.Confidence
		}
		if !a.Job.PostedAt.Equal(b.Job.PostedAt) {
			return a.Job.PostedAt.After(b.Job.PostedAt)
		}
		return a.Job.ID < b.Job.ID
	})
}
