// Package report turns benchmark measurements into log lines and report
// files.
package report

import (
	"math"
	"time"
)

// Result is the measurement of one strategy in one run.
type Result struct {
	Strategy    string        `json:"strategy"`
	Mode        string        `json:"mode"`
	Runs        int           `json:"runs"`
	Elapsed     time.Duration `json:"elapsed_ns"`
	NsPerOp     float64       `json:"ns_per_op"`
	BytesPerOp  int64         `json:"bytes_per_op"`
	AllocsPerOp int64         `json:"allocs_per_op"`
	Sum         int           `json:"sum"`
	Relative    float64       `json:"relative,omitempty"`
}

// Compare returns a copy of results with Relative set to NsPerOp divided by
// the fastest NsPerOp, so the fastest result is 1. Results without a
// positive NsPerOp keep a Relative of 0.
func Compare(results []Result) []Result {
	out := make([]Result, len(results))
	copy(out, results)

	fastest := math.Inf(1)
	for _, r := range out {
		if r.NsPerOp > 0 && r.NsPerOp < fastest {
			fastest = r.NsPerOp
		}
	}
	for i := range out {
		if out[i].NsPerOp > 0 {
			out[i].Relative = out[i].NsPerOp / fastest
		} else {
			out[i].Relative = 0
		}
	}
	return out
}

// Fastest returns the result with the lowest positive NsPerOp.
func Fastest(results []Result) (Result, bool) {
	var best Result
	found := false
	for _, r := range results {
		if r.NsPerOp <= 0 {
			continue
		}
		if !found || r.NsPerOp < best.NsPerOp {
			best = r
			found = true
		}
	}
	return best, found
}
