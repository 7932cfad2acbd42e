package report

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log formats accepted by NewReporter.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Reporter receives results as they are measured.
type Reporter interface {
	// Report is called once per measured result.
	Report(r Result)
	// Summary is called once with every result after Compare.
	Summary(results []Result)
	Sync() error
}

// NewReporter returns the reporter for format, writing to w.
func NewReporter(format string, w io.Writer) (Reporter, error) {
	switch format {
	case FormatJSON:
		return NewZapReporter(w), nil
	case FormatConsole:
		return NewZerologReporter(w), nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

type zapReporter struct {
	logger *zap.Logger
}

// NewZapReporter writes one JSON object per line to w.
func NewZapReporter(w io.Writer) Reporter {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		zap.InfoLevel,
	)
	return &zapReporter{logger: zap.New(core)}
}

func (z *zapReporter) Report(r Result) {
	z.logger.Info("benchmark result",
		zap.String("strategy", r.Strategy),
		zap.String("mode", r.Mode),
		zap.Int("runs", r.Runs),
		zap.Float64("ns_per_op", r.NsPerOp),
		zap.Int64("bytes_per_op", r.BytesPerOp),
		zap.Int64("allocs_per_op", r.AllocsPerOp),
		zap.Int("sum", r.Sum),
	)
}

func (z *zapReporter) Summary(results []Result) {
	fastest, ok := Fastest(results)
	if !ok {
		z.logger.Warn("no timed results")
		return
	}
	z.logger.Info("fastest strategy",
		zap.String("strategy", fastest.Strategy),
		zap.Float64("ns_per_op", fastest.NsPerOp),
	)
	for _, r := range results {
		z.logger.Info("relative speed",
			zap.String("strategy", r.Strategy),
			zap.Float64("relative", r.Relative),
		)
	}
}

func (z *zapReporter) Sync() error {
	return z.logger.Sync()
}

type zerologReporter struct {
	logger zerolog.Logger
}

// NewZerologReporter writes human readable lines to w.
func NewZerologReporter(w io.Writer) Reporter {
	out := zerolog.ConsoleWriter{Out: w, NoColor: true}
	return &zerologReporter{logger: zerolog.New(out).With().Timestamp().Logger()}
}

func (z *zerologReporter) Report(r Result) {
	z.logger.Info().
		Str("strategy", r.Strategy).
		Str("mode", r.Mode).
		Int("runs", r.Runs).
		Float64("ns_per_op", r.NsPerOp).
		Int64("bytes_per_op", r.BytesPerOp).
		Int64("allocs_per_op", r.AllocsPerOp).
		Int("sum", r.Sum).
		Msg("benchmark result")
}

func (z *zerologReporter) Summary(results []Result) {
	fastest, ok := Fastest(results)
	if !ok {
		z.logger.Warn().Msg("no timed results")
		return
	}
	z.logger.Info().
		Str("strategy", fastest.Strategy).
		Float64("ns_per_op", fastest.NsPerOp).
		Msg("fastest strategy")
	for _, r := range results {
		z.logger.Info().
			Str("strategy", r.Strategy).
			Str("relative", fmt.Sprintf("%.2fx", r.Relative)).
			Msg("relative speed")
	}
}

// Sync is a no-op; zerolog writes through on every event.
func (z *zerologReporter) Sync() error {
	return nil
}
