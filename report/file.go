package report

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/bytedance/sonic"

	"shape-bench/bench"
)

// Document is the layout of the JSON report file.
type Document struct {
	GeneratedAt     time.Time `json:"generated_at"`
	GoVersion       string    `json:"go_version"`
	GOOS            string    `json:"goos"`
	GOARCH          string    `json:"goarch"`
	NumCPU          int       `json:"num_cpu"`
	InnerIterations int       `json:"inner_iterations"`
	Results         []Result  `json:"results"`
}

// NewDocument describes results measured on this machine at now.
func NewDocument(results []Result, now time.Time) Document {
	return Document{
		GeneratedAt:     now.UTC(),
		GoVersion:       runtime.Version(),
		GOOS:            runtime.GOOS,
		GOARCH:          runtime.GOARCH,
		NumCPU:          runtime.NumCPU(),
		InnerIterations: bench.InnerIterationCount,
		Results:         results,
	}
}

// WriteJSON writes results as an indented JSON document to path, creating
// parent directories as needed.
func WriteJSON(path string, results []Result) error {
	data, err := sonic.ConfigStd.MarshalIndent(NewDocument(results, time.Now()), "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// ReadJSON loads a report written by WriteJSON.
func ReadJSON(path string) (Document, error) {
	var doc Document
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("read report: %w", err)
	}
	if err := sonic.ConfigStd.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("decode report %s: %w", path, err)
	}
	return doc, nil
}
