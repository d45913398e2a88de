package tui

import "github.com/charmbracelet/lipgloss"

var (
	brandColor      = lipgloss.Color("#22c55e")
	brandDeepColor  = lipgloss.Color("#14532d")
	brandTextColor  = lipgloss.Color("#f0fdf4")
	mutedColor      = lipgloss.Color("244")
	dangerColor     = lipgloss.Color("#ef4444")
	warningColor    = lipgloss.Color("#facc15")
	panelEdgeColor  = lipgloss.Color("#3f6212")
	disabledBgColor = lipgloss.Color("238")
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(brandColor)
	helperStyle        = lipgloss.NewStyle().Foreground(mutedColor)
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	taglineStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#bbf7d0")).Italic(true)
	heroTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(brandTextColor)
	ctaStyle           = lipgloss.NewStyle().Bold(true).Foreground(brandDeepColor).Background(brandColor).Padding(0, 2)

	navBrandStyle   = lipgloss.NewStyle().Bold(true).Foreground(brandColor).PaddingRight(2)
	navItemStyle    = lipgloss.NewStyle().Foreground(brandTextColor).PaddingRight(2)
	navKeyStyle     = lipgloss.NewStyle().Foreground(mutedColor)
	focusBadgeStyle = lipgloss.NewStyle().Bold(true).Foreground(brandDeepColor).Background(brandColor).Padding(0, 1)

	featureCardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(panelEdgeColor).Padding(0, 1)
	featureTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(brandColor)
	stepBadgeStyle    = lipgloss.NewStyle().Bold(true).Foreground(brandDeepColor).Background(brandColor).Padding(0, 1)
	stepTitleStyle    = lipgloss.NewStyle().Bold(true)

	cardStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(brandColor).Padding(0, 1)
	cardTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(brandTextColor)
	editorBoxStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(mutedColor)
	editorActiveStyle = editorBoxStyle.Copy().BorderForeground(brandColor)
	dropzoneStyle     = lipgloss.NewStyle().Border(dashedBorder).BorderForeground(mutedColor).Padding(0, 1).Align(lipgloss.Center)
	fileLabelStyle    = lipgloss.NewStyle().Foreground(brandColor)

	buttonStyle         = lipgloss.NewStyle().Bold(true).Foreground(brandDeepColor).Background(brandColor).Padding(0, 3)
	buttonBusyStyle     = lipgloss.NewStyle().Bold(true).Foreground(brandTextColor).Background(brandDeepColor).Padding(0, 3)
	buttonDisabledStyle = lipgloss.NewStyle().Foreground(mutedColor).Background(disabledBgColor).Padding(0, 3)
	reportButtonStyle   = lipgloss.NewStyle().Foreground(brandColor).Border(lipgloss.RoundedBorder()).BorderForeground(panelEdgeColor).Padding(0, 2)

	tabStyle         = lipgloss.NewStyle().Foreground(mutedColor).Padding(0, 2)
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(brandDeepColor).Background(brandColor).Padding(0, 2)
	resultPanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(panelEdgeColor).Padding(0, 1)
	safeStyle        = lipgloss.NewStyle().Foreground(brandColor)
	flaggedStyle     = lipgloss.NewStyle().Bold(true).Foreground(dangerColor)
	bannerStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1c1917")).Background(warningColor).Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#86efac")).Padding(0, 1)
	keyStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	keyDescStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4")).PaddingRight(2)
	legendBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(0, 2)

	logoFaceStyle      = lipgloss.NewStyle().Bold(true).Foreground(brandColor)
	logoShadowStyle    = lipgloss.NewStyle().Foreground(brandDeepColor)
	logoContainerStyle = lipgloss.NewStyle().Padding(0, 1)
)

var dashedBorder = lipgloss.Border{
	Top:         "╌",
	Bottom:      "╌",
	Left:        "╎",
	Right:       "╎",
	TopLeft:     "╭",
	TopRight:    "╮",
	BottomLeft:  "╰",
	BottomRight: "╯",
}

var logoArtLines = []string{
	" ___         __        ___                      _ ",
	"/ __| __ _  / _| ___  / __| _  _  __ _  _ _  __| |",
	"\\__ \\/ _` ||  _|/ -_)| (_ || || |/ _` || '_|/ _` |",
	"|___/\\__,_||_|  \\___| \\___| \\_,_|\\__,_||_|  \\__,_|",
}
