package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/csheth/safeguard/internal/analyzer"
	"github.com/csheth/safeguard/internal/landing"
	"github.com/csheth/safeguard/internal/upload"
	"github.com/csheth/safeguard/internal/widget"
)

// Config wires runtime options into the TUI program.
type Config struct {
	// Detector resolves analyses. Nil means the static three second detector.
	Detector analyzer.Detector
	Logger   *zap.Logger
	// StartDir is where the file picker opens.
	StartDir string
	// Filter narrows the picker. Nil uses upload.DefaultFilter.
	Filter *upload.Filter

	DropDir    string
	DropFiles  <-chan upload.File
	DropErrors <-chan error

	// InitialFile is preselected before the first frame.
	InitialFile *upload.File
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	filter := upload.DefaultFilter()
	if config.Filter != nil {
		filter = *config.Filter
	}
	page := landing.SafeGuard()
	layout := newPageLayout()

	editor := textarea.New()
	editor.Placeholder = page.Analyzer.Placeholder
	editor.ShowLineNumbers = false
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.SetWidth(layout.editorWidth)
	editor.SetHeight(editorHeight)
	editor.Blur()

	picker := filepicker.New()
	picker.AllowedTypes = filter.PickerTypes()
	picker.AutoHeight = false
	picker.Height = layout.pickerHeight
	picker.ShowHidden = false
	if config.StartDir != "" {
		picker.CurrentDirectory = config.StartDir
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	vp := viewport.New(layout.viewportWidth, layout.viewportHeight)
	vp.MouseWheelEnabled = true

	w := widget.New(config.Detector)
	logger = logger.With(zap.String("widget", w.ID()))

	m := &model{
		config:         config,
		logger:         logger,
		page:           page,
		filter:         filter,
		filterOn:       true,
		widget:         w,
		jobs:           newJobBus(logger),
		layout:         layout,
		editor:         editor,
		picker:         picker,
		spinner:        spin,
		viewport:       vp,
		pageKeys:       defaultPageKeys(),
		editorKeys:     defaultEditorKeys(),
		pickerKeys:     defaultPickerKeys(),
		focus:          focusPage,
		resultTab:      analyzer.TabURL,
		sectionAnchors: map[landing.Anchor]int{},
		viewportDirty:  true,
		infoMessage:    "Press c to analyze an email, or ? for the key legend.",
	}
	if config.InitialFile != nil {
		m.applyFile(*config.InitialFile, "command line")
	}
	logger.Debug("widget mounted")
	return m
}

type model struct {
	config Config
	logger *zap.Logger
	page   landing.Page
	filter upload.Filter
	// filterOn mirrors whether the picker currently enforces the filter.
	filterOn bool

	widget *widget.Widget
	jobs   *jobBus
	layout pageLayout

	editor   textarea.Model
	picker   filepicker.Model
	spinner  spinner.Model
	viewport viewport.Model

	pageKeys   pageKeyMap
	editorKeys editorKeyMap
	pickerKeys pickerKeyMap

	focus       focusArea
	resultTab   analyzer.Tab
	helpVisible bool
	quitting    bool

	infoMessage  string
	errorMessage string

	viewportContent    string
	lineCount          int
	viewportDirty      bool
	sectionAnchors     map[landing.Anchor]int
	pendingFocusAnchor landing.Anchor
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.picker.Init(),
		waitForDrop(m.config.DropFiles),
		waitForDropError(m.config.DropErrors),
	)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.widget.Analyzing() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			m.markViewportDirty()
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.focus == focusPicker {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.viewport.Width = m.layout.viewportWidth
		m.viewport.Height = m.layout.viewportHeight
		m.editor.SetWidth(m.layout.editorWidth)
		m.picker.Height = m.layout.pickerHeight
		m.markViewportDirty()
		return m, nil
	case jobSignalMsg:
		return m, nil
	case jobResultEnvelope:
		if msg.Payload == nil {
			return m, nil
		}
		return m.Update(msg.Payload)
	case analysisResultMsg:
		return m.handleAnalysisResult(msg)
	case fileSelectedMsg:
		var rearm tea.Cmd
		if msg.source == sourceDropFolder {
			rearm = waitForDrop(m.config.DropFiles)
		}
		if msg.err != nil {
			m.errorMessage = fmt.Sprintf("upload error: %v", msg.err)
			m.markViewportDirty()
			return m, rearm
		}
		m.applyFile(msg.file, msg.source)
		return m, rearm
	case dropErrorMsg:
		m.errorMessage = fmt.Sprintf("drop folder error: %v", msg.err)
		m.logger.Warn("drop folder error", zap.Error(msg.err))
		return m, waitForDropError(m.config.DropErrors)
	case dropClosedMsg:
		return m, nil
	}

	// Everything else (cursor blink, directory listings) feeds the inputs.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	cmds = append(cmds, cmd)
	if m.focus == focusEditor {
		m.editor, cmd = m.editor.Update(msg)
		cmds = append(cmds, cmd)
		m.markViewportDirty()
	}
	return m, tea.Batch(cmds...)
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusEditor:
		return m.handleEditorKey(msg)
	case focusPicker:
		return m.handlePickerKey(msg)
	default:
		return m.handlePageKey(msg)
	}
}

func (m *model) handlePageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if item, ok := m.page.NavFor(msg.String()); ok {
		m.jumpToSection(item.Anchor)
		return m, nil
	}
	keys := m.pageKeys
	switch {
	case key.Matches(msg, keys.Quit):
		return m.quit()
	case key.Matches(msg, keys.CTA):
		m.jumpToSection(landing.AnchorAnalyzer)
		return m, m.focusEditor()
	case key.Matches(msg, keys.Edit):
		return m, m.focusEditor()
	case key.Matches(msg, keys.Upload):
		return m, m.openPicker()
	case key.Matches(msg, keys.Analyze):
		return m, m.startAnalysis()
	case key.Matches(msg, keys.NextSection):
		m.jumpToRelativeSection(1)
		return m, nil
	case key.Matches(msg, keys.PrevSection):
		m.jumpToRelativeSection(-1)
		return m, nil
	case key.Matches(msg, keys.Top):
		m.scrollToTop()
		return m, nil
	case key.Matches(msg, keys.Bottom):
		m.scrollToBottom()
		return m, nil
	case key.Matches(msg, keys.NextTab):
		m.switchTab(1)
		return m, nil
	case key.Matches(msg, keys.PrevTab):
		m.switchTab(-1)
		return m, nil
	case key.Matches(msg, keys.Help):
		m.helpVisible = !m.helpVisible
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.editorKeys.Done):
		m.blurEditor()
		m.infoMessage = "Editing finished. Press a to analyze."
		return m, nil
	case key.Matches(msg, m.editorKeys.Analyze):
		m.blurEditor()
		return m, m.startAnalysis()
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if !m.widget.SetContent(m.editor.Value()) {
		m.editor.SetValue(m.widget.Content())
		m.infoMessage = "Email content is locked while the analysis runs."
	}
	m.markViewportDirty()
	return m, cmd
}

func (m *model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.pickerKeys.Cancel):
		m.focus = focusPage
		m.infoMessage = "Upload canceled."
		m.markViewportDirty()
		return m, nil
	case key.Matches(msg, m.pickerKeys.ToggleFilter):
		m.toggleFilter()
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.focus = focusPage
		m.errorMessage = ""
		m.markViewportDirty()
		return m, tea.Batch(cmd, m.jobs.Start(jobKindSelect, selectFileJob(path, sourcePicker), zap.String("path", path)))
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.infoMessage = fmt.Sprintf("%s is outside the suggested types. Press * to show all files.", filepath.Base(path))
	}
	return m, cmd
}

func (m *model) focusEditor() tea.Cmd {
	if m.widget.Analyzing() {
		m.infoMessage = "Email content is locked while the analysis runs."
		return nil
	}
	m.focus = focusEditor
	m.pendingFocusAnchor = landing.AnchorAnalyzer
	m.infoMessage = "Editing email. Esc to finish, Ctrl+S to analyze."
	m.markViewportDirty()
	return m.editor.Focus()
}

func (m *model) blurEditor() {
	m.editor.Blur()
	m.focus = focusPage
	m.markViewportDirty()
}

func (m *model) openPicker() tea.Cmd {
	m.focus = focusPicker
	m.errorMessage = ""
	m.infoMessage = "Choose a file. Enter selects, * toggles the type filter, q closes."
	return m.picker.Init()
}

func (m *model) toggleFilter() {
	m.filterOn = !m.filterOn
	if m.filterOn {
		m.picker.AllowedTypes = m.filter.PickerTypes()
		m.infoMessage = "Showing " + m.filter.Label()
		return
	}
	m.picker.AllowedTypes = nil
	m.infoMessage = "Showing all files."
}

func (m *model) applyFile(file upload.File, source string) {
	if !m.widget.SelectFile(file) {
		return
	}
	m.errorMessage = ""
	m.infoMessage = fmt.Sprintf("Selected %s from %s.", file.Name, source)
	if !m.filter.Accepts(file.Name) {
		m.infoMessage += " It is outside the suggested types but will still be analyzed."
	}
	m.logger.Info("file selected",
		zap.String("source", source),
		zap.String("name", file.Name),
		zap.Int64("size", file.Size),
	)
	m.markViewportDirty()
}

func (m *model) startAnalysis() tea.Cmd {
	run, ok := m.widget.Start()
	if !ok {
		switch {
		case m.widget.Analyzing():
			m.infoMessage = "Analysis already running."
		case m.widget.State() == widget.Complete:
			m.infoMessage = "Results are ready below."
		default:
			m.infoMessage = "Paste email content or upload a file first."
		}
		return nil
	}
	m.errorMessage = ""
	m.infoMessage = "Analyzing..."
	m.resultTab = analyzer.TabURL
	m.markViewportDirty()
	job := m.jobs.Start(jobKindAnalysis, analysisJob(run),
		zap.Int("content_len", len(m.widget.Content())),
		zap.Bool("has_file", m.hasFile()),
	)
	return tea.Batch(job, m.spinner.Tick)
}

func (m *model) handleAnalysisResult(msg analysisResultMsg) (tea.Model, tea.Cmd) {
	if !m.widget.Complete(msg.outcome) {
		m.logger.Debug("stale analysis outcome dropped", zap.String("outcome_widget", msg.outcome.WidgetID))
		return m, nil
	}
	report, _ := m.widget.Report()
	m.resultTab = analyzer.TabURL
	m.pendingFocusAnchor = landing.AnchorResults
	m.infoMessage = "Analysis complete: " + report.Risk.String() + "."
	m.markViewportDirty()
	return m, nil
}

func (m *model) switchTab(delta int) {
	if _, ok := m.widget.Report(); !ok {
		return
	}
	m.resultTab = m.resultTab.Next(delta)
	m.markViewportDirty()
}

func (m *model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.editor.Blur()
	m.widget.Unmount()
	m.logger.Debug("widget unmounted")
	return m, tea.Quit
}

func (m *model) hasFile() bool {
	_, ok := m.widget.File()
	return ok
}

const (
	sourcePicker     = "file picker"
	sourceDropFolder = "drop folder"
)

