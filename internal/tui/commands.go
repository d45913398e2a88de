package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/safeguard/internal/upload"
	"github.com/csheth/safeguard/internal/widget"
)

type analysisResultMsg struct {
	outcome widget.Outcome
}

type fileSelectedMsg struct {
	file   upload.File
	err    error
	source string
}

type dropClosedMsg struct{}

type dropErrorMsg struct {
	err error
}

func analysisJob(run widget.Run) jobRunner {
	return func(context.Context) (tea.Msg, error) {
		return analysisResultMsg{outcome: run()}, nil
	}
}

// selectFileJob stats a chosen path; the file itself is never opened.
func selectFileJob(path, source string) jobRunner {
	return func(context.Context) (tea.Msg, error) {
		file, err := upload.Stat(path)
		if err != nil {
			return fileSelectedMsg{err: err, source: source}, err
		}
		return fileSelectedMsg{file: file, source: source}, nil
	}
}

// waitForDrop blocks until the drop folder reports a file. The model re-arms
// it after every delivery.
func waitForDrop(files <-chan upload.File) tea.Cmd {
	if files == nil {
		return nil
	}
	return func() tea.Msg {
		file, ok := <-files
		if !ok {
			return dropClosedMsg{}
		}
		return fileSelectedMsg{file: file, source: sourceDropFolder}
	}
}

func waitForDropError(errs <-chan error) tea.Cmd {
	if errs == nil {
		return nil
	}
	return func() tea.Msg {
		err, ok := <-errs
		if !ok {
			return nil
		}
		return dropErrorMsg{err: err}
	}
}
