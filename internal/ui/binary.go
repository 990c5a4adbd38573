// ABOUTME: Binary digit renderer
// ABOUTME: Draws the 4x6 BCD grid of HH:MM:SS with suppressed cells left blank
package ui

import (
	"strings"

	"github.com/harperreed/clockwidget/pkg/clock"
)

const (
	cellOn  = "■"
	cellOff = "□"
	cellGap = " "
)

// binaryGrid renders the grid without styling, one row per weight
func binaryGrid(cols [6]clock.Column) []string {
	grid := clock.Grid(cols)
	lines := make([]string, 0, len(grid))

	for _, row := range grid {
		cells := make([]string, 0, len(row))
		for i, state := range row {
			cell := cellGap
			switch state {
			case clock.CellOn:
				cell = styleBitOn.Render(cellOn)
			case clock.CellOff:
				cell = styleBitOff.Render(cellOff)
			}
			cells = append(cells, cell)
			// pair columns as HH MM SS
			if i%2 == 1 && i < len(row)-1 {
				cells = append(cells, cellGap)
			}
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return lines
}

func renderBinary(cols [6]clock.Column) string {
	return styleLabel.Render("BINARY") + "\n" + strings.Join(binaryGrid(cols), "\n")
}
