package analyzer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/safeguard/internal/upload"
)

func TestFixedReportContent(t *testing.T) {
	t.Parallel()

	report := FixedReport()
	require.Len(t, report.URLs, 2)
	assert.Equal(t, "https://example.com - Safe", report.URLs[0].Line())
	assert.False(t, report.URLs[0].Verdict.Flagged())
	assert.Equal(t, "https://suspicious-link.com - Potential Phishing Attempt", report.URLs[1].Line())
	assert.True(t, report.URLs[1].Verdict.Flagged())
	assert.Equal(t, "No hidden content or steganography detected", report.HiddenContentLine())
	assert.Equal(t, RiskModerate, report.Risk)
	assert.Equal(t, "Moderate Risk: Suspicious URL detected. Exercise caution.", report.Banner())
}

func TestTabsOrderAndCycling(t *testing.T) {
	t.Parallel()

	require.Len(t, Tabs, 3)
	assert.Equal(t, "URL Analysis", Tabs[0].Title())
	assert.Equal(t, "Hidden Content", Tabs[1].Title())
	assert.Equal(t, "Overall Safety", Tabs[2].Title())

	assert.Equal(t, TabHiddenContent, TabURL.Next(1))
	assert.Equal(t, TabURL, TabOverallSafety.Next(1))
	assert.Equal(t, TabOverallSafety, TabURL.Next(-1))
}

func TestStaticDetectorWaitsConfiguredDelay(t *testing.T) {
	t.Parallel()

	fire := make(chan time.Time)
	var requested time.Duration
	d := NewStatic(0)
	d.after = func(delay time.Duration) <-chan time.Time {
		requested = delay
		return fire
	}
	assert.Equal(t, DefaultDelay, d.Delay())

	done := make(chan Report, 1)
	go func() {
		done <- d.Analyze(context.Background(), Submission{Content: "hello"})
	}()

	select {
	case <-done:
		t.Fatal("detector resolved before the delay elapsed")
	case <-time.After(20 * time.Millisecond):
	}

	fire <- time.Now()
	report := <-done
	assert.Equal(t, 3000*time.Millisecond, requested)
	assert.Equal(t, FixedReport(), report)
}

func TestStaticDetectorIgnoresSubmission(t *testing.T) {
	t.Parallel()

	d := NewStatic(time.Millisecond)
	file := &upload.File{Name: "invoice.eml", Size: 42}
	a := d.Analyze(context.Background(), Submission{Content: "anything"})
	b := d.Analyze(context.Background(), Submission{File: file})
	assert.Equal(t, a, b)
}

func TestStaticDetectorReturnsOnCancel(t *testing.T) {
	t.Parallel()

	d := NewStatic(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report := d.Analyze(ctx, Submission{Content: "x"})
	assert.Equal(t, FixedReport(), report)
}

func TestSubmissionEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, Submission{}.Empty())
	assert.False(t, Submission{Content: "x"}.Empty())
	assert.False(t, Submission{File: &upload.File{Name: "a.pdf"}}.Empty())
}
