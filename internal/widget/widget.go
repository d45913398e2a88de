// Package widget holds the analyzer card's state machine, independent of how
// it is drawn.
package widget

import (
	"context"

	"github.com/google/uuid"

	"github.com/csheth/safeguard/internal/analyzer"
	"github.com/csheth/safeguard/internal/upload"
)

// State is the analysis lifecycle of a mounted widget.
type State int

const (
	Idle State = iota
	Analyzing
	Complete
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Analyzing:
		return "analyzing"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Outcome is what a finished run reports back. WidgetID ties it to the
// mount that started it.
type Outcome struct {
	WidgetID string
	Report   analyzer.Report
}

// Run performs the analysis. It blocks and is meant to be called off the UI
// loop; it never reads or writes widget state.
type Run func() Outcome

// Widget owns emailContent, selectedFile and analysisState.
//
// Idle -> Analyzing happens in Start, Analyzing -> Complete in Complete.
// Complete is terminal. All methods must be called from one goroutine.
type Widget struct {
	id       string
	detector analyzer.Detector
	content  string
	file     *upload.File
	state    State
	report   *analyzer.Report
	mounted  bool
	ctx      context.Context
	cancel   context.CancelFunc
}

// New mounts a fresh widget backed by detector.
func New(detector analyzer.Detector) *Widget {
	if detector == nil {
		detector = analyzer.NewStatic(analyzer.DefaultDelay)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Widget{
		id:       uuid.NewString(),
		detector: detector,
		state:    Idle,
		mounted:  true,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (w *Widget) ID() string { return w.id }
func (w *Widget) State() State { return w.state }
func (w *Widget) Content() string { return w.content }
func (w *Widget) Mounted() bool { return w.mounted }

// Analyzing reports whether the loading indicator should show.
func (w *Widget) Analyzing() bool {
	return w.state == Analyzing
}

// SetContent replaces the email text. Edits are refused while analyzing or
// after unmount; the return value says whether the edit applied.
func (w *Widget) SetContent(value string) bool {
	if !w.mounted || w.state == Analyzing {
		return false
	}
	w.content = value
	return true
}

// File returns the selected file, if any.
func (w *Widget) File() (upload.File, bool) {
	if w.file == nil {
		return upload.File{}, false
	}
	return *w.file, true
}

// SelectFile fills the single file slot, replacing any previous selection.
func (w *Widget) SelectFile(file upload.File) bool {
	if !w.mounted {
		return false
	}
	selected := file
	w.file = &selected
	return true
}

// HasInput reports whether either input is present.
func (w *Widget) HasInput() bool {
	return w.content != "" || w.file != nil
}

// CanAnalyze is the trigger's enabled rule.
func (w *Widget) CanAnalyze() bool {
	return w.mounted && w.state != Analyzing && w.HasInput()
}

// Start moves Idle -> Analyzing and returns the run to schedule. It returns
// false (and no run) when the trigger is disabled or the widget already
// finished; in both cases nothing changes.
func (w *Widget) Start() (Run, bool) {
	if !w.CanAnalyze() || w.state != Idle {
		return nil, false
	}
	w.state = Analyzing
	sub := analyzer.Submission{Content: w.content}
	if w.file != nil {
		f := *w.file
		sub.File = &f
	}
	ctx := w.ctx
	detector := w.detector
	id := w.id
	return func() Outcome {
		return Outcome{WidgetID: id, Report: detector.Analyze(ctx, sub)}
	}, true
}

// Complete applies a finished run. Outcomes from another mount, arriving
// after unmount, or arriving outside Analyzing are dropped.
func (w *Widget) Complete(outcome Outcome) bool {
	if !w.mounted || outcome.WidgetID != w.id || w.state != Analyzing {
		return false
	}
	report := outcome.Report
	w.report = &report
	w.state = Complete
	return true
}

// Report returns the results once Complete.
func (w *Widget) Report() (analyzer.Report, bool) {
	if w.state != Complete || w.report == nil {
		return analyzer.Report{}, false
	}
	return *w.report, true
}

// Unmount tears the widget down. A pending run is released and its outcome
// will be ignored.
func (w *Widget) Unmount() {
	if !w.mounted {
		return
	}
	w.mounted = false
	w.cancel()
}
