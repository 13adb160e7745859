// Package actions wraps the view loop's side effects (browser launch,
// clipboard, markdown export) in bubbletea commands so the model stays a
// pure state machine.
package actions

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/feedview/internal/feed"
)

type Exporter interface {
	Export(entry feed.Entry) (string, error)
}

type OpenURLSuccessMsg struct {
	Status string
	Opened bool
}

type OpenURLErrorMsg struct {
	Err error
}

type ExportSuccessMsg struct {
	Path string
}

type ExportErrorMsg struct {
	Err error
}

// OpenURLCmd launches the URL in the default browser, falling back to the
// clipboard when no browser can be started.
func OpenURLCmd(url string, openFn, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if openFn != nil {
			if err := openFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Opened URL in browser", Opened: true}
			}
		}
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Could not open browser, URL copied to clipboard"}
			}
		}
		return OpenURLErrorMsg{Err: fmt.Errorf("could not open URL or copy to clipboard")}
	}
}

func CopyURLCmd(url string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "URL copied to clipboard"}
			}
		}
		return OpenURLErrorMsg{Err: fmt.Errorf("could not copy URL to clipboard")}
	}
}

func ExportCmd(exporter Exporter, entry feed.Entry) tea.Cmd {
	return func() tea.Msg {
		path, err := exporter.Export(entry)
		if err != nil {
			return ExportErrorMsg{Err: err}
		}
		return ExportSuccessMsg{Path: path}
	}
}
