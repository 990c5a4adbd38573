// ABOUTME: Digital info renderer
// ABOUTME: UTC, POSIX, binary and local readouts with the sync indicator
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/harperreed/clockwidget/pkg/clock"
)

const (
	syncDot   = "●"
	pulseRate = 15 // frames per pulse phase
)

// renderSyncIndicator shows one of two states; unsynced pulses by frame
func renderSyncIndicator(synced bool, frame uint64) string {
	if synced {
		return styleSynced.Render(syncDot + " SYNCED")
	}
	dot := styleSyncing.Render(syncDot)
	if (frame/pulseRate)%2 == 1 {
		dot = styleSyncing.Faint(true).Render(syncDot)
	}
	return dot + styleSub.Render(" SYNCING")
}

func rule(width int) string {
	return styleRule.Render(strings.Repeat("─", width))
}

// renderInfo lays out the readouts right-aligned, UTC first
func renderInfo(inst clock.Instant, synced, centis bool, frame uint64) string {
	r := clock.Format(inst)

	utc := styleMain.Render(r.UTCTime)
	if centis {
		utc += " " + styleSub.Render(r.Centis)
	}

	groups := [][]string{
		{
			styleLabel.Render("UTC"),
			utc,
			styleSub.Render(strings.ToUpper(r.UTCDate)),
		},
		{
			styleLabel.Render("POSIX"),
			styleMain.Render(r.POSIX),
			"",
			renderBinary(clock.BinaryColumns(inst)),
		},
		{
			styleLabel.Render("LOCAL"),
			styleLocal.Render(r.LocalTime),
		},
	}

	width := 0
	for _, g := range groups {
		width = max(width, lipgloss.Width(lipgloss.JoinVertical(lipgloss.Right, g...)))
	}

	lines := []string{renderSyncIndicator(synced, frame), ""}
	for i, g := range groups {
		if i > 0 {
			lines = append(lines, rule(width))
		}
		lines = append(lines, g...)
	}

	return stylePanel.Render(lipgloss.JoinVertical(lipgloss.Right, lines...))
}
