package widget

import (
	"context"
	"testing"
	"time"

	"github.com/csheth/safeguard/internal/analyzer"
	"github.com/csheth/safeguard/internal/upload"
)

// gateDetector resolves when release is closed or ctx is cancelled.
type gateDetector struct {
	release chan struct{}
	calls   chan analyzer.Submission
}

func newGateDetector() *gateDetector {
	return &gateDetector{release: make(chan struct{}), calls: make(chan analyzer.Submission, 4)}
}

func (g *gateDetector) Analyze(ctx context.Context, sub analyzer.Submission) analyzer.Report {
	g.calls <- sub
	select {
	case <-g.release:
	case <-ctx.Done():
	}
	return analyzer.FixedReport()
}

func TestTriggerEnabledRule(t *testing.T) {
	cases := []struct {
		name    string
		content string
		file    *upload.File
		want    bool
	}{
		{name: "empty", want: false},
		{name: "content only", content: "Dear customer", want: true},
		{name: "file only", file: &upload.File{Name: "mail.eml"}, want: true},
		{name: "both", content: "hi", file: &upload.File{Name: "mail.eml"}, want: true},
		{name: "whitespace counts as content", content: " ", want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := New(newGateDetector())
			w.SetContent(tc.content)
			if tc.file != nil {
				w.SelectFile(*tc.file)
			}
			if got := w.CanAnalyze(); got != tc.want {
				t.Fatalf("CanAnalyze() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDisabledTriggerIsNoop(t *testing.T) {
	w := New(newGateDetector())
	run, ok := w.Start()
	if ok || run != nil {
		t.Fatal("start should be refused without input")
	}
	if w.State() != Idle {
		t.Fatalf("state changed on disabled trigger: %v", w.State())
	}
}

func TestStartIsSynchronousThenCompletes(t *testing.T) {
	detector := newGateDetector()
	w := New(detector)
	w.SetContent("Click here to verify your account")

	run, ok := w.Start()
	if !ok {
		t.Fatal("start should be accepted with content")
	}
	if w.State() != Analyzing || !w.Analyzing() {
		t.Fatalf("state after start = %v, want analyzing", w.State())
	}
	if w.CanAnalyze() {
		t.Fatal("trigger must be disabled while analyzing")
	}
	if _, ok := w.Report(); ok {
		t.Fatal("report must not be visible while analyzing")
	}

	outcomes := make(chan Outcome, 1)
	go func() { outcomes <- run() }()
	sub := <-detector.calls
	if sub.Content != "Click here to verify your account" {
		t.Fatalf("submission content = %q", sub.Content)
	}
	close(detector.release)
	outcome := <-outcomes

	if !w.Complete(outcome) {
		t.Fatal("outcome should apply")
	}
	if w.State() != Complete {
		t.Fatalf("state = %v, want complete", w.State())
	}
	report, ok := w.Report()
	if !ok {
		t.Fatal("report missing after completion")
	}
	if len(report.URLs) != 2 || report.Risk != analyzer.RiskModerate {
		t.Fatalf("unexpected report: %#v", report)
	}
}

func TestInputsDuringAnalysis(t *testing.T) {
	w := New(newGateDetector())
	w.SetContent("first")
	if _, ok := w.Start(); !ok {
		t.Fatal("start refused")
	}
	if w.SetContent("second") {
		t.Fatal("content edits must be refused while analyzing")
	}
	if w.Content() != "first" {
		t.Fatalf("content changed during analysis: %q", w.Content())
	}
	w.SelectFile(upload.File{Name: "late.pdf"})
	if w.CanAnalyze() {
		t.Fatal("selecting a file must not re-enable the trigger while analyzing")
	}
	if _, ok := w.Start(); ok {
		t.Fatal("second start must be refused while analyzing")
	}
}

func TestCompleteIsTerminal(t *testing.T) {
	w := New(analyzer.DetectorFunc(func(context.Context, analyzer.Submission) analyzer.Report {
		return analyzer.FixedReport()
	}))
	w.SetContent("hello")
	run, _ := w.Start()
	w.Complete(run())

	if !w.SetContent("edited after completion") {
		t.Fatal("content should be editable once complete")
	}
	if !w.CanAnalyze() {
		t.Fatal("enabled rule should follow content presence in complete")
	}
	if _, ok := w.Start(); ok {
		t.Fatal("complete has no outgoing transition")
	}
	if w.State() != Complete {
		t.Fatalf("state = %v, want complete", w.State())
	}
	w.SetContent("")
	if w.CanAnalyze() {
		t.Fatal("trigger should disable when input is cleared")
	}
}

func TestSelectFileReplacesPrevious(t *testing.T) {
	w := New(nil)
	w.SelectFile(upload.File{Name: "first.eml", Size: 10})
	w.SelectFile(upload.File{Name: "second.pdf", Size: 20})
	file, ok := w.File()
	if !ok {
		t.Fatal("file missing")
	}
	if file.Name != "second.pdf" || file.Size != 20 {
		t.Fatalf("selected file = %+v, want second.pdf", file)
	}
}

func TestSubmissionSnapshotsFile(t *testing.T) {
	detector := newGateDetector()
	w := New(detector)
	w.SelectFile(upload.File{Name: "orig.eml"})
	run, _ := w.Start()
	w.SelectFile(upload.File{Name: "replacement.eml"})

	go run()
	sub := <-detector.calls
	if sub.File == nil || sub.File.Name != "orig.eml" {
		t.Fatalf("submission should hold the file chosen at start, got %+v", sub.File)
	}
	close(detector.release)
}

func TestUnmountDuringAnalysisDropsOutcome(t *testing.T) {
	detector := newGateDetector()
	w := New(detector)
	w.SetContent("pending")
	run, _ := w.Start()

	outcomes := make(chan Outcome, 1)
	go func() { outcomes <- run() }()
	<-detector.calls

	w.Unmount()
	w.Unmount()

	var outcome Outcome
	select {
	case outcome = <-outcomes:
	case <-time.After(2 * time.Second):
		t.Fatal("unmount should release the pending run")
	}
	if w.Complete(outcome) {
		t.Fatal("outcome applied after unmount")
	}
	if w.State() != Analyzing {
		t.Fatalf("state mutated after teardown: %v", w.State())
	}
	if w.SetContent("late") || w.SelectFile(upload.File{Name: "late.pdf"}) {
		t.Fatal("unmounted widget accepted input")
	}
	if w.Mounted() {
		t.Fatal("widget still reports mounted")
	}
}

func TestOutcomeFromOtherMountIgnored(t *testing.T) {
	w := New(newGateDetector())
	w.SetContent("x")
	w.Start()
	if w.Complete(Outcome{WidgetID: "someone-else", Report: analyzer.FixedReport()}) {
		t.Fatal("foreign outcome applied")
	}
	if w.State() != Analyzing {
		t.Fatalf("state = %v, want analyzing", w.State())
	}
}

func TestMountIDsAreUnique(t *testing.T) {
	a, b := New(nil), New(nil)
	if a.ID() == "" || a.ID() == b.ID() {
		t.Fatalf("mount ids should be unique, got %q and %q", a.ID(), b.ID())
	}
}
