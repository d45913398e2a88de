package tui

import "github.com/charmbracelet/bubbles/key"

type pageKeyMap struct {
	Quit        key.Binding
	Edit        key.Binding
	Upload      key.Binding
	Analyze     key.Binding
	CTA         key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	Top         key.Binding
	Bottom      key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Help        key.Binding
}

type editorKeyMap struct {
	Done    key.Binding
	Analyze key.Binding
}

type pickerKeyMap struct {
	Cancel       key.Binding
	ToggleFilter key.Binding
}

func defaultPageKeys() pageKeyMap {
	return pageKeyMap{
		Quit:        key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "Quit")),
		Edit:        key.NewBinding(key.WithKeys("i", "e"), key.WithHelp("i", "Edit email text")),
		Upload:      key.NewBinding(key.WithKeys("u", "o"), key.WithHelp("u", "Upload a file")),
		Analyze:     key.NewBinding(key.WithKeys("a", "enter"), key.WithHelp("a", "Analyze now")),
		CTA:         key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "Analyze your email")),
		NextSection: key.NewBinding(key.WithKeys("]"), key.WithHelp("[/]", "Prev/next section")),
		PrevSection: key.NewBinding(key.WithKeys("[")),
		Top:         key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g/G", "Top or bottom")),
		Bottom:      key.NewBinding(key.WithKeys("G", "end")),
		NextTab:     key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("←/→", "Switch result tab")),
		PrevTab:     key.NewBinding(key.WithKeys("left", "h", "shift+tab")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Toggle cheatsheet")),
	}
}

func defaultEditorKeys() editorKeyMap {
	return editorKeyMap{
		Done:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "Stop editing")),
		Analyze: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "Analyze now")),
	}
}

func defaultPickerKeys() pickerKeyMap {
	return pickerKeyMap{
		Cancel:       key.NewBinding(key.WithKeys("q", "x"), key.WithHelp("q", "Close picker")),
		ToggleFilter: key.NewBinding(key.WithKeys("*"), key.WithHelp("*", "Toggle file type filter")),
	}
}
