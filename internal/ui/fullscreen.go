// ABOUTME: Fullscreen capability of the host terminal
// ABOUTME: Tracks alternate-screen state and refuses when output is not a terminal
package ui

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrNotTerminal is returned when fullscreen is requested without a terminal
var ErrNotTerminal = errors.New("output is not a terminal")

// Fullscreen is the host's fullscreen capability
type Fullscreen interface {
	Enter() error
	Exit() error
	Active() bool
}

// TerminalFullscreen maps fullscreen onto the terminal's alternate screen.
// The model issues the matching bubbletea command once Enter/Exit succeed.
type TerminalFullscreen struct {
	active     bool
	isTerminal func() bool
}

// NewTerminalFullscreen creates the capability for out. The program starts
// on the alternate screen only when active is requested and out is a terminal.
func NewTerminalFullscreen(out *os.File, active bool) *TerminalFullscreen {
	f := &TerminalFullscreen{
		isTerminal: func() bool {
			fd := out.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
	f.active = active && f.isTerminal()
	return f
}

// Enter switches to fullscreen
func (f *TerminalFullscreen) Enter() error {
	if !f.isTerminal() {
		return ErrNotTerminal
	}
	f.active = true
	return nil
}

// Exit leaves fullscreen
func (f *TerminalFullscreen) Exit() error {
	f.active = false
	return nil
}

// Active reports the current state
func (f *TerminalFullscreen) Active() bool {
	return f.active
}
