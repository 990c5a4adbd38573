// ABOUTME: TUI initialization and control
// ABOUTME: Wraps bubbletea program for the clock widget
package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// Controls carries signals from the TUI back to main
type Controls struct {
	Quit chan struct{}
}

// NewControls creates a new control handler
func NewControls() *Controls {
	return &Controls{
		Quit: make(chan struct{}, 1),
	}
}

func (c *Controls) signalQuit() {
	if c == nil {
		return
	}
	select {
	case c.Quit <- struct{}{}:
	default:
	}
}

// NewModel creates a new TUI model
func NewModel(feed Refresher, opts Options) Model {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}

	keys := defaultKeyMap()
	if opts.Fullscreen != nil {
		keys.syncFullscreenHelp(opts.Fullscreen.Active())
	}

	return Model{
		state:         feed.Refresh(),
		feed:          feed,
		frameInterval: opts.FrameInterval,
		showCentis:    opts.ShowCentis,
		fullscreen:    opts.Fullscreen,
		keys:          keys,
		help:          help.New(),
		controls:      opts.Controls,
	}
}

// Run creates the TUI program; the caller runs it
func Run(feed Refresher, opts Options) (*tea.Program, error) {
	var progOpts []tea.ProgramOption
	if opts.Fullscreen != nil && opts.Fullscreen.Active() {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(NewModel(feed, opts), progOpts...)
	return p, nil
}
