package stopwatch

import (
	"time"
)

// Stopwatch accumulates elapsed time across start/pause/resume cycles.
// It is not safe for concurrent use.
type Stopwatch struct {
	now           func() time.Time
	started       bool
	paused        bool
	lastStartTime time.Time
	activeElapsed time.Duration
}

// New creates a stopped Stopwatch reading the wall clock.
func New() *Stopwatch {
	return NewWithClock(time.Now)
}

// NewWithClock creates a stopped Stopwatch reading now.
func NewWithClock(now func() time.Time) *Stopwatch {
	return &Stopwatch{now: now}
}

// Start starts the stopwatch. It does nothing once started.
func (s *Stopwatch) Start() {
	if !s.started {
		s.started = true
		s.lastStartTime = s.now()
	}
}

// Pause stops counting time until Resume.
func (s *Stopwatch) Pause() {
	if s.started && !s.paused {
		s.activeElapsed += s.now().Sub(s.lastStartTime)
		s.paused = true
	}
}

// Resume continues a paused stopwatch, or starts one that was never started.
func (s *Stopwatch) Resume() {
	if !s.started {
		s.Start()
		return
	}
	if s.paused {
		s.paused = false
		s.lastStartTime = s.now()
	}
}

// Reset discards all accumulated time and stops the stopwatch.
func (s *Stopwatch) Reset() {
	s.started = false
	s.paused = false
	s.activeElapsed = 0
	s.lastStartTime = time.Time{}
}

// Running reports whether time is currently being counted.
func (s *Stopwatch) Running() bool {
	return s.started && !s.paused
}

// Elapsed returns the counted time, including the current segment if the
// stopwatch is running.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.Running() {
		return s.activeElapsed + s.now().Sub(s.lastStartTime)
	}
	return s.activeElapsed
}
