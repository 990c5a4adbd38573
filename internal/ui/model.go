// ABOUTME: Bubbletea model for the clock widget
// ABOUTME: Drives the frame refresh, handles key toggles and composes the renderers
package ui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harperreed/clockwidget/internal/timesource"
	"github.com/harperreed/clockwidget/pkg/clock"
)

// DefaultFrameInterval is used when Options leaves it unset (~30 fps)
const DefaultFrameInterval = time.Second / 30

// Refresher hands out a fresh display state per frame
type Refresher interface {
	Refresh() timesource.DisplayState
}

// Options configures the model
type Options struct {
	FrameInterval time.Duration
	ShowCentis    bool
	Fullscreen    Fullscreen
	Controls      *Controls
}

// Model represents the TUI state
type Model struct {
	state timesource.DisplayState
	feed  Refresher

	frameInterval time.Duration
	frame         uint64
	showCentis    bool

	// Display mode
	minimal    bool
	fullscreen Fullscreen

	keys     keyMap
	help     help.Model
	controls *Controls
	quitting bool

	// Dimensions
	width  int
	height int
}

type frameMsg time.Time

func frameTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Init starts the frame loop
func (m Model) Init() tea.Cmd {
	return frameTick(m.frameInterval)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case frameMsg:
		m.state = m.feed.Refresh()
		m.frame++
		return m, frameTick(m.frameInterval)
	}

	return m, nil
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.controls.signalQuit()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Minimal):
		m.minimal = !m.minimal
	case key.Matches(msg, m.keys.Reset):
		m.minimal = false
	case key.Matches(msg, m.keys.Fullscreen):
		return m.toggleFullscreen()
	}

	return m, nil
}

// toggleFullscreen asks the host first; a refusal leaves the view as it is
func (m Model) toggleFullscreen() (tea.Model, tea.Cmd) {
	if m.fullscreen == nil {
		log.Printf("Warning: no fullscreen capability")
		return m, nil
	}

	if m.fullscreen.Active() {
		if err := m.fullscreen.Exit(); err != nil {
			log.Printf("Warning: error exiting fullscreen: %v", err)
			return m, nil
		}
		m.keys.syncFullscreenHelp(false)
		return m, tea.ExitAltScreen
	}

	if err := m.fullscreen.Enter(); err != nil {
		log.Printf("Warning: error attempting to enable fullscreen: %v", err)
		return m, nil
	}
	m.keys.syncFullscreenHelp(true)
	return m, tea.EnterAltScreen
}

// View renders the TUI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	state := m.state
	angles := clock.HandAngles(state.Instant)
	height := max(m.height-1, 1)

	if m.minimal {
		face := renderAnalog(angles, m.width, height, true)
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, face)
	}

	info := renderInfo(state.Instant, state.Sync.Synced, m.showCentis, m.frame)
	infoW, infoH := lipgloss.Width(info), lipgloss.Height(info)

	var body string
	if m.width-infoW >= height*2 {
		// side by side: face left, info right
		face := renderAnalog(angles, m.width-infoW, height, false)
		body = lipgloss.JoinHorizontal(lipgloss.Center, face, info)
	} else {
		// stacked: info on top as on narrow screens
		face := renderAnalog(angles, m.width, max(height-infoH, 2), false)
		body = lipgloss.JoinVertical(lipgloss.Center, info, face)
	}

	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, body) +
		"\n" + styleHelp.Render(m.help.View(m.keys))
}

// Minimal reports whether minimal mode is on
func (m Model) Minimal() bool {
	return m.minimal
}

// State returns the display state of the last frame
func (m Model) State() timesource.DisplayState {
	return m.state
}
