package tui

import (
	"strings"
	"testing"

	"github.com/csheth/safeguard/internal/upload"
)

func TestFileLabelTruncatesLongNames(t *testing.T) {
	m := newTestModel(t)
	long := strings.Repeat("quarterly-invoice-", 5) + ".pdf"
	m.Update(fileSelectedMsg{file: upload.File{Name: long, Size: 10 * 1000 * 1000}, source: sourcePicker})

	label := m.fileLabel()
	if !strings.HasPrefix(label, "File selected: quarterly-invoice-") {
		t.Fatalf("label = %q", label)
	}
	if !strings.Contains(label, "…") || !strings.HasSuffix(label, "(10 MB)") {
		t.Fatalf("expected truncated name and size, got %q", label)
	}
}

func TestDropzoneShowsAdvisoryLabel(t *testing.T) {
	m := newTestModel(t)
	view := m.dropzoneView(60)
	if !strings.Contains(view, "EML, MSG, PDF, or image files (MAX. 10 MB)") {
		t.Fatalf("dropzone missing advisory label: %q", view)
	}
}

func TestNavShowsSectionsAndFocus(t *testing.T) {
	m := newTestModel(t)
	nav := m.navView()
	for _, want := range []string{"SafeGuard", "Features", "How It Works", "Analyzer", "BROWSE"} {
		if !strings.Contains(nav, want) {
			t.Fatalf("nav missing %q: %q", want, nav)
		}
	}
}

func TestHelpToggleShowsLegend(t *testing.T) {
	m := newTestModel(t)
	if strings.Contains(m.View(), "Key Legend") {
		t.Fatal("legend should start hidden")
	}
	m.Update(runes("?"))
	if !strings.Contains(m.View(), "Key Legend") {
		t.Fatal("? should reveal the legend")
	}
}

func TestPickerViewReplacesPage(t *testing.T) {
	m := newTestModel(t)
	m.Update(runes("u"))
	view := m.View()
	if !strings.Contains(view, "Upload a file") {
		t.Fatal("picker view should be visible")
	}
	if !strings.Contains(view, "UPLOAD") {
		t.Fatal("focus badge should read UPLOAD")
	}
}

func TestRenderLogoAddsShadowRow(t *testing.T) {
	lines := strings.Split(renderLogo(), "\n")
	if len(lines) != len(logoArtLines)+1 {
		t.Fatalf("expected %d logo lines, got %d", len(logoArtLines)+1, len(lines))
	}
}

func TestJoinNonEmptySkipsBlankParts(t *testing.T) {
	if got := joinNonEmpty([]string{"a", "  ", "", "b"}); got != "a\n\nb" {
		t.Fatalf("got %q", got)
	}
}
