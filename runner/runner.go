// Package runner measures the area strategies, either through the testing
// package's benchmark harness or with a pausable stopwatch.
package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"testing"

	"go.uber.org/zap"

	"shape-bench/bench"
	"shape-bench/config"
	"shape-bench/report"
	"shape-bench/stopwatch"
)

// BenchmarkFunc runs f as a benchmark. testing.Benchmark is the default.
type BenchmarkFunc func(f func(b *testing.B)) testing.BenchmarkResult

// Runner measures every strategy selected by its config.
type Runner struct {
	cfg          config.Config
	reporter     report.Reporter
	strategies   []bench.Strategy
	benchmark    BenchmarkFunc
	newStopwatch func() *stopwatch.Stopwatch
	logger       *zap.Logger

	// sw is created on first use and reset for every measurement.
	sw *stopwatch.Stopwatch
}

type Option func(*Runner)

func WithBenchmarkFunc(fn BenchmarkFunc) Option {
	return func(r *Runner) { r.benchmark = fn }
}

func WithStopwatch(fn func() *stopwatch.Stopwatch) Option {
	return func(r *Runner) { r.newStopwatch = fn }
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithStrategies replaces the strategies picked by the config filter.
func WithStrategies(s []bench.Strategy) Option {
	return func(r *Runner) { r.strategies = s }
}

// New validates cfg and builds a Runner that reports to reporter.
func New(cfg config.Config, reporter report.Reporter, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if reporter == nil {
		return nil, errors.New("runner: nil reporter")
	}
	strategies, err := bench.Select(cfg.Filter)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		cfg:          cfg,
		reporter:     reporter,
		strategies:   strategies,
		benchmark:    testing.Benchmark,
		newStopwatch: stopwatch.New,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run measures each strategy Count times, in registry order. Results are
// reported as they complete; the returned slice carries relative speeds.
// On error the results measured so far are returned with it.
func (r *Runner) Run(ctx context.Context) ([]report.Result, error) {
	results := make([]report.Result, 0, len(r.strategies)*r.cfg.Count)
	for _, s := range r.strategies {
		sum := s.Sum()
		if sum != bench.ExpectedSum() {
			return results, fmt.Errorf("strategy %s: sum is %d, want %d", s.Name, sum, bench.ExpectedSum())
		}

		for i := 0; i < r.cfg.Count; i++ {
			if err := ctx.Err(); err != nil {
				return results, fmt.Errorf("run cancelled before %s: %w", s.Name, err)
			}
			r.logger.Debug("measuring strategy",
				zap.String("strategy", s.Name),
				zap.String("mode", r.cfg.Mode),
				zap.Int("run", i+1),
			)

			var res report.Result
			if r.cfg.Mode == config.ModeStopwatch {
				var err error
				if res, err = r.measureStopwatch(ctx, s); err != nil {
					return results, err
				}
			} else {
				res = r.measureHarness(s, sum)
			}
			if res.Runs == 0 {
				r.logger.Warn("benchmark produced no iterations", zap.String("strategy", s.Name))
			}
			r.reporter.Report(res)
			results = append(results, res)
		}
	}

	results = report.Compare(results)
	r.reporter.Summary(results)
	return results, nil
}

func (r *Runner) measureHarness(s bench.Strategy, sum int) report.Result {
	br := r.benchmark(func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sum = s.Sum()
		}
	})

	res := report.Result{
		Strategy:    s.Name,
		Mode:        config.ModeHarness,
		Runs:        br.N,
		Elapsed:     br.T,
		BytesPerOp:  br.AllocedBytesPerOp(),
		AllocsPerOp: br.AllocsPerOp(),
		Sum:         sum,
	}
	if br.N > 0 {
		res.NsPerOp = float64(br.T.Nanoseconds()) / float64(br.N)
	}
	return res
}

// measureStopwatch times Rounds sum calls. The context is checked between
// rounds, outside the timed segments.
func (r *Runner) measureStopwatch(ctx context.Context, s bench.Strategy) (report.Result, error) {
	var before, after runtime.MemStats
	if r.sw == nil {
		r.sw = r.newStopwatch()
	}
	sw := r.sw
	sw.Reset()
	rounds := r.cfg.Rounds

	var sum int
	runtime.GC()
	runtime.ReadMemStats(&before)
	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return report.Result{}, fmt.Errorf("run cancelled during %s after %d rounds: %w", s.Name, i, err)
		}
		sw.Resume()
		sum = s.Sum()
		sw.Pause()
	}
	runtime.ReadMemStats(&after)

	elapsed := sw.Elapsed()
	return report.Result{
		Strategy:    s.Name,
		Mode:        config.ModeStopwatch,
		Runs:        rounds,
		Elapsed:     elapsed,
		NsPerOp:     float64(elapsed.Nanoseconds()) / float64(rounds),
		BytesPerOp:  int64(after.TotalAlloc-before.TotalAlloc) / int64(rounds),
		AllocsPerOp: int64(after.Mallocs-before.Mallocs) / int64(rounds),
		Sum:         sum,
	}, nil
}
