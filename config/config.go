// Package config holds the settings of a shapebench run.
package config

import (
	"errors"
	"fmt"

	"shape-bench/bench"
	"shape-bench/report"
)

// Measurement modes.
const (
	ModeHarness   = "harness"
	ModeStopwatch = "stopwatch"
)

// Profile kinds.
const (
	ProfileNone = "none"
	ProfileCPU  = "cpu"
	ProfileMem  = "mem"
)

type Config struct {
	// Mode selects testing.Benchmark (harness) or the manual stopwatch loop.
	Mode string
	// Filter is a regexp over strategy names; empty selects all.
	Filter string
	// Count is how many times each strategy is measured, in either mode.
	Count int
	// Rounds is how many sum calls are timed per strategy in stopwatch mode.
	Rounds int

	LogFormat string
	// JSONPath, when set, receives the full report.
	JSONPath string

	Profile     string
	ProfilePath string
	Gops        bool
}

// Default returns the settings used when no flags are given.
func Default() Config {
	return Config{
		Mode:        ModeHarness,
		Count:       1,
		Rounds:      1000,
		LogFormat:   report.FormatConsole,
		Profile:     ProfileNone,
		ProfilePath: ".",
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	switch c.Mode {
	case ModeHarness, ModeStopwatch:
	default:
		errs = append(errs, fmt.Errorf("mode must be %q or %q, got %q", ModeHarness, ModeStopwatch, c.Mode))
	}
	if c.Count < 1 {
		errs = append(errs, fmt.Errorf("count must be at least 1, got %d", c.Count))
	}
	if c.Rounds < 1 {
		errs = append(errs, fmt.Errorf("rounds must be at least 1, got %d", c.Rounds))
	}
	switch c.LogFormat {
	case report.FormatJSON, report.FormatConsole:
	default:
		errs = append(errs, fmt.Errorf("log format must be %q or %q, got %q", report.FormatJSON, report.FormatConsole, c.LogFormat))
	}
	switch c.Profile {
	case ProfileNone, ProfileCPU, ProfileMem:
	default:
		errs = append(errs, fmt.Errorf("profile must be one of %q, %q, %q, got %q", ProfileNone, ProfileCPU, ProfileMem, c.Profile))
	}
	if _, err := bench.Select(c.Filter); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
