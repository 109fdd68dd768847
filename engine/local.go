package engine

import (
	"context"
	"time"

	"mvc/experiments/metrics"
	"mvc/searcher"

	"github.com/rs/zerolog/log"
)

// Option configures a Local engine.
type Option func(e *Local)

// WithIterations caps the number of rollouts.
func WithIterations(iterations int) Option {
	return func(e *Local) {
		if iterations > 0 {
			e.iterations = iterations
		}
	}
}

// WithDuration caps the wall-clock search time. It takes effect only
// when no iteration budget is set.
func WithDuration(duration time.Duration) Option {
	return func(e *Local) {
		if duration > 0 {
			e.duration = duration
		}
	}
}

// WithCollector attaches a metrics collector.
func WithCollector(collector metrics.Collector) Option {
	return func(e *Local) {
		if collector != nil {
			e.collector = collector
		}
	}
}

// Local drives a single MCTS engine under an iteration or duration
// budget, whichever is configured. When both are configured, the
// iteration budget is used and the duration is not checked. The
// search also stops as soon as the tree closes, since further
// rollouts would be no-ops.
type Local struct {
	mcts       *searcher.MCTS
	iterations int
	duration   time.Duration
	collector  metrics.Collector
}

func NewLocal(m *searcher.MCTS, options ...Option) *Local {
	e := &Local{
		mcts:      m,
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	if e.iterations <= 0 && e.duration <= 0 {
		panic("must specify search iterations or duration")
	}
	return e
}

// Run executes the budgeted search and returns the best cover found
// together with the run metric. Cancelling ctx stops the loop at the
// next rollout boundary.
func (e *Local) Run(ctx context.Context) (*searcher.State, metrics.RunMetric) {
	e.collector.Start()

	if e.iterations > 0 {
		e.iterate(ctx)
	} else {
		e.countdown(ctx)
	}

	solution := e.mcts.GetSolution()
	metric := e.collector.Complete(e.mcts.Answer(), e.mcts.Done())

	log.Info().
		Int("iterations", metric.Iterations).
		Int("answer", metric.Answer).
		Bool("closed", metric.Closed).
		Dur("elapsed", metric.Elapsed).
		Msg("search finished")

	return solution, metric
}

func (e *Local) iterate(ctx context.Context) {
	for i := 0; i < e.iterations; i++ {
		if e.mcts.Done() || ctx.Err() != nil {
			return
		}
		e.mcts.Run()
		e.collector.AddIteration()
	}
}

func (e *Local) countdown(ctx context.Context) {
	start := time.Now()
	for time.Since(start) < e.duration {
		if e.mcts.Done() || ctx.Err() != nil {
			return
		}
		e.mcts.Run()
		e.collector.AddIteration()
	}
}
