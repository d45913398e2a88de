package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/safeguard/internal/analyzer"
	"github.com/csheth/safeguard/internal/widget"
)

func (m *model) View() string {
	m.refreshViewportIfDirty()
	body := m.viewport.View()
	if m.focus == focusPicker && !m.quitting {
		body = m.pickerView()
	}
	parts := []string{m.navView(), body, m.statusView()}
	if m.helpVisible {
		parts = append(parts, m.keyLegendView(), m.helpView())
	}
	return joinNonEmpty(parts)
}

func (m *model) navView() string {
	items := []string{navBrandStyle.Render("⛨ " + m.page.Brand)}
	for _, item := range m.page.Nav {
		items = append(items, navKeyStyle.Render(item.Key+" ")+navItemStyle.Render(item.Label))
	}
	items = append(items, focusBadgeStyle.Render(m.focus.String()))
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func (m *model) heroView() string {
	hero := m.page.Hero
	wrap := min(m.wrapWidth(2), 72)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		renderLogo(),
		heroTitleStyle.Render(hero.Headline),
		taglineStyle.Render(wordwrap.String(hero.Tagline, wrap)),
		"",
		ctaStyle.Render(hero.CTA)+helperStyle.Render("  press c"),
	)
}

func (m *model) featuresView() string {
	width := m.wrapWidth(0)
	columns := len(m.page.Features)
	cardWidth := width/columns - 1
	if cardWidth < 24 {
		columns = 1
		cardWidth = min(width, cardMaxWidth)
	}
	cards := make([]string, 0, len(m.page.Features))
	for _, feature := range m.page.Features {
		body := featureTitleStyle.Render(feature.Icon+" "+feature.Title) + "\n" +
			wordwrap.String(feature.Description, cardWidth-4)
		// border (2) plus horizontal padding (2)
		cards = append(cards, featureCardStyle.Width(cardWidth-2).Render(body))
	}
	var grid string
	if columns == 1 {
		grid = lipgloss.JoinVertical(lipgloss.Left, cards...)
	} else {
		grid = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	return sectionHeaderStyle.Render(m.page.FeaturesTitle) + "\n\n" + grid
}

func (m *model) stepsView() string {
	wrap := m.wrapWidth(6)
	lines := []string{sectionHeaderStyle.Render(m.page.HowItWorksTitle), ""}
	for _, step := range m.page.Steps {
		badge := stepBadgeStyle.Render(fmt.Sprintf("%d", step.Number))
		lines = append(lines, badge+" "+stepTitleStyle.Render(step.Title))
		lines = append(lines, indentMultiline(helperStyle.Render(wordwrap.String(step.Description, wrap)), "    "))
	}
	return strings.Join(lines, "\n")
}

func (m *model) analyzerView() string {
	text := m.page.Analyzer
	inner := m.layout.cardWidth - 4
	parts := []string{
		cardTitleStyle.Render(text.CardTitle) + "\n" + helperStyle.Render(wordwrap.String(text.CardSubtitle, inner)),
		m.editorView(),
		m.dropzoneView(inner),
	}
	if label := m.fileLabel(); label != "" {
		parts = append(parts, fileLabelStyle.Render(label))
	}
	parts = append(parts, m.buttonView())
	card := cardStyle.Width(m.layout.cardWidth - 2).Render(joinNonEmpty(parts))
	return sectionHeaderStyle.Render(text.SectionTitle) + "\n\n" + card
}

func (m *model) editorView() string {
	style := editorBoxStyle
	if m.focus == focusEditor {
		style = editorActiveStyle
	}
	return style.Render(m.editor.View())
}

func (m *model) dropzoneView(width int) string {
	prompt := "⇪ " + m.page.Analyzer.DropzonePrompt
	if m.config.DropDir != "" {
		prompt += " or drop one into " + m.config.DropDir
	}
	lines := []string{
		wordwrap.String(prompt, width-4),
		helperStyle.Render(m.filter.Label()),
	}
	return dropzoneStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (m *model) fileLabel() string {
	file, ok := m.widget.File()
	if !ok {
		return ""
	}
	name := truncate.StringWithTail(file.Name, fileNameLimit, "…")
	return fmt.Sprintf("File selected: %s (%s)", name, file.HumanSize())
}

func (m *model) buttonView() string {
	text := m.page.Analyzer
	switch {
	case m.widget.Analyzing():
		return buttonBusyStyle.Render(m.spinner.View() + " " + text.ButtonBusy)
	case m.widget.State() == widget.Complete:
		button := buttonDisabledStyle.Render(text.ButtonIdle)
		if m.widget.CanAnalyze() {
			button = buttonStyle.Render(text.ButtonIdle)
		}
		return button + helperStyle.Render("  Analysis complete. Results below.")
	case m.widget.CanAnalyze():
		return buttonStyle.Render(text.ButtonIdle) + helperStyle.Render("  press a")
	default:
		return buttonDisabledStyle.Render(text.ButtonIdle) + helperStyle.Render("  Paste email content or upload a file to enable analysis.")
	}
}

func (m *model) resultsView(report analyzer.Report) string {
	text := m.page.Analyzer
	width := m.layout.cardWidth

	tabs := make([]string, 0, len(analyzer.Tabs))
	for _, tab := range analyzer.Tabs {
		style := tabStyle
		if tab == m.resultTab {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(tab.Title()))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
	panel := resultPanelStyle.Width(width - 2).Render(m.tabBody(report, width-4))

	return joinNonEmpty([]string{
		sectionHeaderStyle.Render(text.ResultsTitle) + "\n\n" + bar + "\n" + panel,
		reportButtonStyle.Render("⤓ "+text.ReportButton) + "\n" + helperStyle.Render("  ←/→ switch tabs"),
	})
}

func (m *model) tabBody(report analyzer.Report, width int) string {
	switch m.resultTab {
	case analyzer.TabHiddenContent:
		return safeStyle.Render(report.HiddenContentLine())
	case analyzer.TabOverallSafety:
		return bannerStyle.Render("⚠ " + wordwrap.String(report.Banner(), width-4))
	default:
		lines := make([]string, 0, len(report.URLs))
		for _, finding := range report.URLs {
			style := safeStyle
			if finding.Verdict.Flagged() {
				style = flaggedStyle
			}
			lines = append(lines, style.Render(finding.Line()))
		}
		return strings.Join(lines, "\n")
	}
}

func (m *model) pickerView() string {
	filterNote := "Showing " + m.filter.Label() + ". Press * to show all files."
	if !m.filterOn {
		filterNote = "Showing all files. Press * to restore the suggested types."
	}
	return strings.Join([]string{
		sectionHeaderStyle.Render("Upload a file"),
		helperStyle.Render(m.picker.CurrentDirectory),
		m.picker.View(),
		helperStyle.Render(filterNote),
	}, "\n")
}

func (m *model) statusView() string {
	return m.sessionMeterView() + "\n" + m.messageLine()
}

func (m *model) messageLine() string {
	if m.errorMessage != "" {
		return errorStyle.Render(m.errorMessage)
	}
	message := m.infoMessage
	if m.widget.Analyzing() {
		message = fmt.Sprintf("%s %s", m.spinner.View(), message)
	}
	return helperStyle.Render(message)
}

func (m *model) sessionMeterView() string {
	file := "none"
	if f, ok := m.widget.File(); ok {
		file = truncate.StringWithTail(f.Name, 24, "…")
	}
	stats := []string{
		fmt.Sprintf("Mode %s", m.focus),
		fmt.Sprintf("State %s", m.widget.State()),
		fmt.Sprintf("File %s", file),
		fmt.Sprintf("Chars %d", len([]rune(m.widget.Content()))),
	}
	if _, ok := m.widget.Report(); ok {
		stats = append(stats, "Tab "+m.resultTab.Title())
	}
	stats = append(stats, "? keys")
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

type keyHint struct {
	Key         string
	Description string
}

func (m *model) keyLegendView() string {
	hints := []keyHint{
		{"1/2/3", "Features, steps, analyzer"},
		{"[/]", "Jump sections"},
		{"g/G", "Top or bottom"},
		{"c", "Analyze your email"},
		{"i", "Edit email text"},
		{"u", "Upload a file"},
		{"a", "Analyze now"},
		{"←/→", "Switch result tab"},
		{"q", "Quit"},
	}
	rows := []string{sectionHeaderStyle.Render("Key Legend")}
	const columns = 3
	for i := 0; i < len(hints); i += columns {
		end := min(i+columns, len(hints))
		var cells []string
		for _, hint := range hints[i:end] {
			cells = append(cells, lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(hint.Key), keyDescStyle.Render(" "+hint.Description)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return legendBoxStyle.Render(strings.Join(rows, "\n"))
}

func (m *model) helpView() string {
	lines := []string{
		helperStyle.Render("• while editing, esc returns to the page and ctrl+s starts the analysis."),
		helperStyle.Render("• in the file picker, enter selects, * toggles the type filter and q closes it."),
	}
	if m.config.DropDir != "" {
		lines = append(lines, helperStyle.Render("• files copied into "+m.config.DropDir+" are selected automatically."))
	}
	return strings.Join(lines, "\n")
}

func renderLogo() string {
	width := 0
	lineRunes := make([][]rune, len(logoArtLines))
	for i, line := range logoArtLines {
		runes := []rune(line)
		lineRunes[i] = runes
		width = max(width, len(runes))
	}
	width++
	height := len(logoArtLines) + 1

	type cell struct {
		r     rune
		style lipgloss.Style
	}
	grid := make([][]cell, height)
	for i := range grid {
		grid[i] = make([]cell, width)
	}
	// shadow first, offset one cell down and right, then the face on top
	for y, runes := range lineRunes {
		for x, r := range runes {
			if r != ' ' {
				grid[y+1][x+1] = cell{r: r, style: logoShadowStyle}
			}
		}
	}
	for y, runes := range lineRunes {
		for x, r := range runes {
			if r != ' ' {
				grid[y][x] = cell{r: r, style: logoFaceStyle}
			}
		}
	}

	lines := make([]string, height)
	for y, row := range grid {
		var b strings.Builder
		for _, c := range row {
			if c.r == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteString(c.style.Render(string(c.r)))
		}
		lines[y] = b.String()
	}
	return logoContainerStyle.Render(strings.Join(lines, "\n"))
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}

func indentMultiline(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
