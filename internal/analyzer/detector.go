package analyzer

import (
	"context"
	"time"

	"github.com/csheth/safeguard/internal/upload"
)

// DefaultDelay is how long the static detector pretends to work.
const DefaultDelay = 3000 * time.Millisecond

// Submission is the snapshot handed to a detector when analysis starts.
type Submission struct {
	Content string
	File    *upload.File
}

// Empty reports whether there is nothing to analyze.
func (s Submission) Empty() bool {
	return s.Content == "" && s.File == nil
}

// Detector turns a submission into a report. Implementations must always
// resolve; the only early return allowed is ctx cancellation, which callers
// use when the widget that asked is torn down.
type Detector interface {
	Analyze(ctx context.Context, sub Submission) Report
}

// DetectorFunc adapts a function to the Detector interface.
type DetectorFunc func(ctx context.Context, sub Submission) Report

func (f DetectorFunc) Analyze(ctx context.Context, sub Submission) Report {
	return f(ctx, sub)
}

// StaticDetector waits a fixed delay and then returns FixedReport.
type StaticDetector struct {
	delay time.Duration
	after func(time.Duration) <-chan time.Time
}

// NewStatic builds a StaticDetector. A non-positive delay falls back to DefaultDelay.
func NewStatic(delay time.Duration) *StaticDetector {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &StaticDetector{delay: delay, after: time.After}
}

// Delay returns the configured wait.
func (d *StaticDetector) Delay() time.Duration {
	return d.delay
}

func (d *StaticDetector) Analyze(ctx context.Context, _ Submission) Report {
	select {
	case <-d.after(d.delay):
	case <-ctx.Done():
	}
	return FixedReport()
}
