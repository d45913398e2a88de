package tui

import (
	"fmt"
	"strings"

	"github.com/csheth/safeguard/internal/landing"
)

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	viewportWidth  int
	viewportHeight int
	cardWidth      int
	editorWidth    int
	pickerHeight   int
}

func newPageLayout() pageLayout {
	return pageLayout{
		viewportWidth:  80,
		viewportHeight: 20,
		cardWidth:      78,
		editorWidth:    72,
		pickerHeight:   16,
	}
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	innerWidth := width - viewportHorizontalPadding
	if innerWidth < minViewportWidth {
		innerWidth = minViewportWidth
	}
	l.viewportWidth = innerWidth

	// nav bar, two gaps and the two status lines
	const chrome = 5
	contentHeight := height - chrome
	if contentHeight < 5 {
		contentHeight = 5
	}
	l.viewportHeight = contentHeight

	l.cardWidth = innerWidth - 2
	if l.cardWidth > cardMaxWidth {
		l.cardWidth = cardMaxWidth
	}
	// card border and padding, then the editor's own border
	l.editorWidth = l.cardWidth - 6

	l.pickerHeight = contentHeight - 4
	if l.pickerHeight < 3 {
		l.pickerHeight = 3
	}
}

type pageView struct {
	content string
	anchors map[landing.Anchor]int
}

type contentBuilder struct {
	builder strings.Builder
	lines   int
}

func (cb *contentBuilder) WriteString(s string) {
	cb.builder.WriteString(s)
	cb.lines += strings.Count(s, "\n")
}

func (cb *contentBuilder) WriteRune(r rune) {
	cb.builder.WriteRune(r)
	if r == '\n' {
		cb.lines++
	}
}

func (cb *contentBuilder) String() string {
	return cb.builder.String()
}

func (cb *contentBuilder) Line() int {
	return cb.lines
}

func (m *model) buildPageContent() pageView {
	cb := &contentBuilder{}
	anchors := map[landing.Anchor]int{}
	section := func(anchor landing.Anchor, body string) {
		if strings.TrimSpace(body) == "" {
			return
		}
		if cb.builder.Len() > 0 {
			cb.WriteString("\n\n")
		}
		anchors[anchor] = cb.Line()
		cb.WriteString(body)
	}

	section(landing.AnchorHero, m.heroView())
	section(landing.AnchorFeatures, m.featuresView())
	section(landing.AnchorHowItWorks, m.stepsView())
	section(landing.AnchorAnalyzer, m.analyzerView())
	if report, ok := m.widget.Report(); ok {
		section(landing.AnchorResults, m.resultsView(report))
	}
	cb.WriteRune('\n')

	return pageView{content: cb.String(), anchors: anchors}
}

func (m *model) markViewportDirty() {
	m.viewportDirty = true
}

func (m *model) refreshViewportIfDirty() {
	if m.viewportDirty {
		m.refreshViewport()
	}
}

func (m *model) refreshViewport() {
	m.viewportDirty = false
	prevYOffset := m.viewport.YOffset
	view := m.buildPageContent()
	m.viewportContent = view.content
	m.sectionAnchors = view.anchors
	m.lineCount = strings.Count(view.content, "\n") + 1
	m.viewport.SetContent(view.content)

	target := prevYOffset
	if m.pendingFocusAnchor != "" {
		if line, ok := view.anchors[m.pendingFocusAnchor]; ok {
			target = line
			m.pendingFocusAnchor = ""
		}
	}
	m.viewport.SetYOffset(m.clampYOffset(target))
}

func (m *model) jumpToRelativeSection(delta int) {
	m.refreshViewportIfDirty()
	anchors := m.availableSections()
	current := m.viewport.YOffset
	if delta > 0 {
		for _, anchor := range anchors {
			if m.clampYOffset(m.sectionAnchors[anchor]) > current {
				m.jumpToSection(anchor)
				return
			}
		}
		m.infoMessage = "Already at the last section."
		return
	}
	if delta < 0 {
		for i := len(anchors) - 1; i >= 0; i-- {
			if m.sectionAnchors[anchors[i]] < current {
				m.jumpToSection(anchors[i])
				return
			}
		}
		m.infoMessage = "Already at the first section."
	}
}

func (m *model) availableSections() []landing.Anchor {
	var ordered []landing.Anchor
	for _, anchor := range sectionSequence {
		if _, ok := m.sectionAnchors[anchor]; ok {
			ordered = append(ordered, anchor)
		}
	}
	return ordered
}

func (m *model) jumpToSection(anchor landing.Anchor) {
	m.refreshViewportIfDirty()
	line, ok := m.sectionAnchors[anchor]
	if !ok {
		if anchor == landing.AnchorResults {
			m.infoMessage = "Results appear once an analysis completes."
		} else {
			m.infoMessage = "Section unavailable."
		}
		return
	}
	m.viewport.SetYOffset(m.clampYOffset(line))
	m.infoMessage = fmt.Sprintf("Jumped to %s.", m.sectionLabel(anchor))
}

func (m *model) sectionLabel(anchor landing.Anchor) string {
	switch anchor {
	case landing.AnchorHero:
		return "the top"
	case landing.AnchorFeatures:
		return m.page.FeaturesTitle
	case landing.AnchorHowItWorks:
		return m.page.HowItWorksTitle
	case landing.AnchorAnalyzer:
		return m.page.Analyzer.SectionTitle
	case landing.AnchorResults:
		return m.page.Analyzer.ResultsTitle
	default:
		return "section"
	}
}

func (m *model) scrollToTop() {
	m.refreshViewportIfDirty()
	m.viewport.GotoTop()
	m.infoMessage = "Jumped to top."
}

func (m *model) scrollToBottom() {
	m.refreshViewportIfDirty()
	m.viewport.GotoBottom()
	m.infoMessage = "Jumped to bottom."
}

func (m *model) clampYOffset(offset int) int {
	maxOffset := m.lineCount - m.viewport.Height
	if m.viewport.Height <= 0 {
		maxOffset = m.lineCount - 1
	}
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset < 0 {
		return 0
	}
	if offset > maxOffset {
		return maxOffset
	}
	return offset
}

func (m *model) wrapWidth(padding int) int {
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	if padding < 0 {
		padding = 0
	}
	available := width - padding
	if available < 20 {
		available = 20
	}
	return available
}
