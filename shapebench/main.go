// Command shapebench times the four area strategies and reports the results.
//
// Usage:
//
//	go run ./shapebench -mode harness -count 3 -test.benchtime 2s
//	go run ./shapebench -mode stopwatch -rounds 5000 -log json -json out/report.json
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"testing"

	"github.com/google/gops/agent"
	"github.com/pkg/profile"
	"go.uber.org/zap"

	"shape-bench/config"
	"shape-bench/report"
	"shape-bench/runner"
)

func bindFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "measurement mode: harness or stopwatch")
	fs.StringVar(&cfg.Filter, "run", cfg.Filter, "regexp selecting strategies by name")
	fs.IntVar(&cfg.Count, "count", cfg.Count, "measurements per strategy")
	fs.IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "timed sum calls per measurement in stopwatch mode")
	fs.StringVar(&cfg.LogFormat, "log", cfg.LogFormat, "result format: json or console")
	fs.StringVar(&cfg.JSONPath, "json", cfg.JSONPath, "write a JSON report to this file")
	fs.StringVar(&cfg.Profile, "profile", cfg.Profile, "profile the run: none, cpu or mem")
	fs.StringVar(&cfg.ProfilePath, "profile-path", cfg.ProfilePath, "directory for profile output")
	fs.BoolVar(&cfg.Gops, "gops", cfg.Gops, "start a gops diagnostics agent")
}

type stopper interface {
	Stop()
}

type noopStopper struct{}

func (noopStopper) Stop() {}

// startProfile starts the profile named by cfg. The caller must Stop it.
func startProfile(cfg config.Config) stopper {
	opts := []func(*profile.Profile){
		profile.ProfilePath(cfg.ProfilePath),
		profile.NoShutdownHook,
		profile.Quiet,
	}
	switch cfg.Profile {
	case config.ProfileCPU:
		return profile.Start(append(opts, profile.CPUProfile)...)
	case config.ProfileMem:
		return profile.Start(append(opts, profile.MemProfile)...)
	default:
		return noopStopper{}
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			return fmt.Errorf("start gops agent: %w", err)
		}
		defer agent.Close()
	}

	reporter, err := report.NewReporter(cfg.LogFormat, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		// Syncing a terminal can fail harmlessly; keep it at debug.
		if err := reporter.Sync(); err != nil {
			logger.Debug("sync reporter", zap.Error(err))
		}
	}()

	r, err := runner.New(cfg, reporter, runner.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.Info("starting run",
		zap.String("mode", cfg.Mode),
		zap.String("filter", cfg.Filter),
		zap.Int("count", cfg.Count),
		zap.String("profile", cfg.Profile),
	)
	p := startProfile(cfg)
	results, err := r.Run(ctx)
	p.Stop()
	if err != nil {
		return err
	}

	if cfg.JSONPath != "" {
		if err := report.WriteJSON(cfg.JSONPath, results); err != nil {
			return err
		}
		logger.Info("wrote report", zap.String("path", cfg.JSONPath), zap.Int("results", len(results)))
	}
	return nil
}

func main() {
	// Registers -test.benchtime and friends, which testing.Benchmark reads.
	testing.Init()

	cfg := config.Default()
	bindFlags(flag.CommandLine, &cfg)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	go func() {
		// testing.Benchmark cannot be interrupted; restore the default
		// handler so a second Ctrl-C kills the process.
		<-ctx.Done()
		stop()
	}()
	err = run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.Error("shapebench failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}
