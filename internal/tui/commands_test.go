package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/csheth/safeguard/internal/analyzer"
	"github.com/csheth/safeguard/internal/upload"
	"github.com/csheth/safeguard/internal/widget"
)

func TestSelectFileJobStatsOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "phish.eml")
	if err := os.WriteFile(path, []byte("Subject: hi\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	msg, err := selectFileJob(path, sourcePicker)(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	selected, ok := msg.(fileSelectedMsg)
	if !ok {
		t.Fatalf("expected fileSelectedMsg, got %T", msg)
	}
	if selected.file.Name != "phish.eml" || selected.file.Size != 12 || selected.source != sourcePicker {
		t.Fatalf("unexpected selection %+v", selected)
	}
}

func TestSelectFileJobRejectsDirectories(t *testing.T) {
	msg, err := selectFileJob(t.TempDir(), sourcePicker)(context.Background())
	if !errors.Is(err, upload.ErrNotRegularFile) {
		t.Fatalf("expected ErrNotRegularFile, got %v", err)
	}
	if selected := msg.(fileSelectedMsg); selected.err == nil {
		t.Fatal("message should carry the error for the status line")
	}
}

func TestAnalysisJobWrapsOutcome(t *testing.T) {
	w := widget.New(analyzer.DetectorFunc(func(context.Context, analyzer.Submission) analyzer.Report {
		return analyzer.FixedReport()
	}))
	w.SetContent("hello")
	run, ok := w.Start()
	if !ok {
		t.Fatal("start should succeed")
	}

	msg, err := analysisJob(run)(context.Background())
	if err != nil {
		t.Fatalf("analysis has no error path, got %v", err)
	}
	result, ok := msg.(analysisResultMsg)
	if !ok || result.outcome.WidgetID != w.ID() {
		t.Fatalf("unexpected result %#v", msg)
	}
}

func TestWaitForDropHandlesNilAndClosedChannels(t *testing.T) {
	if waitForDrop(nil) != nil {
		t.Fatal("nil channel should not produce a command")
	}
	if waitForDropError(nil) != nil {
		t.Fatal("nil error channel should not produce a command")
	}

	files := make(chan upload.File)
	close(files)
	if _, ok := waitForDrop(files)().(dropClosedMsg); !ok {
		t.Fatal("closed channel should report dropClosedMsg")
	}

	errs := make(chan error, 1)
	errs <- errors.New("watch failed")
	msg, ok := waitForDropError(errs)().(dropErrorMsg)
	if !ok || msg.err.Error() != "watch failed" {
		t.Fatalf("unexpected message %#v", msg)
	}
	close(errs)
	if got := waitForDropError(errs)(); got != nil {
		t.Fatalf("closed error channel should yield nil, got %#v", got)
	}
}
