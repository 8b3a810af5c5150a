// Package batch converts many lines concurrently, in either direction.
//
// Lines are fanned out to a bounded worker pool and collected in input
// order. A line that fails to convert is reported in its Result and does
// not stop the run; only context cancellation does.
package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/az-ai-labs/numwords/internal/config"
	"github.com/az-ai-labs/numwords/numtext"
)

// Item is one input line. Line is 1-based and counts skipped lines too.
type Item struct {
	Line int
	Text string
}

// Result is the conversion of one Item.
type Result struct {
	Line   int    `json:"line"             yaml:"line"`
	Input  string `json:"input"            yaml:"input"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	Error  string `json:"error,omitempty"  yaml:"error,omitempty"`
}

// OK reports whether the line converted.
func (r Result) OK() bool { return r.Error == "" }

// Options configures a Runner. Zero fields take defaults: 4 workers,
// parse direction, a no-op logger and no metrics.
type Options struct {
	Workers   int
	Direction string
	Mode      numtext.Mode
	Logger    *zap.Logger
	Metrics   *Metrics
}

// Runner converts batches of lines. A Runner may be reused; every Run gets
// its own run ID.
type Runner struct {
	workers   int
	direction string
	mode      numtext.Mode
	log       *zap.Logger
	metrics   *Metrics
}

// New validates opts and returns a Runner.
func New(opts Options) (*Runner, error) {
	r := &Runner{
		workers:   opts.Workers,
		direction: opts.Direction,
		mode:      opts.Mode,
		log:       opts.Logger,
		metrics:   opts.Metrics,
	}
	if r.workers == 0 {
		r.workers = 4
	}
	if r.workers < 0 {
		return nil, fmt.Errorf("batch: workers must be positive (got %d)", r.workers)
	}
	if r.direction == "" {
		r.direction = config.DirectionParse
	}
	if r.direction != config.DirectionParse && r.direction != config.DirectionRender {
		return nil, fmt.Errorf("batch: unknown direction %q", r.direction)
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}
	return r, nil
}

// Run converts items and returns one Result per item, in input order.
// It returns an error only when ctx is canceled before every item ran.
func (r *Runner) Run(ctx context.Context, items []Item) ([]Result, error) {
	runID := uuid.NewString()
	log := r.log.With(zap.String("run_id", runID), zap.String("direction", r.direction))
	log.Info("batch started", zap.Int("lines", len(items)), zap.Int("workers", r.workers))
	start := time.Now()

	results := make([]Result, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, it := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.convert(it)
			if !results[i].OK() {
				log.Debug("line failed", zap.Int("line", it.Line), zap.String("error", results[i].Error))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Warn("batch canceled", zap.Error(err))
		return nil, fmt.Errorf("batch: %w", err)
	}
	if err := ctx.Err(); err != nil {
		log.Warn("batch canceled", zap.Error(err))
		return nil, fmt.Errorf("batch: %w", err)
	}

	failed := 0
	for _, res := range results {
		if !res.OK() {
			failed++
		}
	}
	log.Info("batch finished",
		zap.Int("lines", len(items)),
		zap.Int("failed", failed),
		zap.Duration("elapsed", time.Since(start)))
	return results, nil
}

func (r *Runner) convert(it Item) Result {
	start := time.Now()
	res := Result{Line: it.Line, Input: it.Text}

	switch r.direction {
	case config.DirectionRender:
		out, err := numtext.RenderString(it.Text, r.mode)
		if err != nil {
			res.Error = err.Error()
		} else {
			res.Output = out
		}
	default:
		n, err := numtext.Parse(it.Text)
		if err != nil {
			res.Error = err.Error()
		} else {
			res.Output = n.String()
		}
	}

	if r.metrics != nil {
		r.metrics.observe(r.direction, res.OK(), time.Since(start).Seconds())
	}
	return res
}
