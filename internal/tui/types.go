package tui

import "github.com/csheth/safeguard/internal/landing"

// focusArea says which component receives key presses.
type focusArea int

const (
	focusPage focusArea = iota
	focusEditor
	focusPicker
)

var sectionSequence = []landing.Anchor{
	landing.AnchorHero,
	landing.AnchorFeatures,
	landing.AnchorHowItWorks,
	landing.AnchorAnalyzer,
	landing.AnchorResults,
}

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
	cardMaxWidth              = 84
	editorHeight              = 6
	fileNameLimit             = 48
)

func (f focusArea) String() string {
	switch f {
	case focusEditor:
		return "EDIT"
	case focusPicker:
		return "UPLOAD"
	default:
		return "BROWSE"
	}
}
