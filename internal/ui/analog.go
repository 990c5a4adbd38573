// ABOUTME: Analog face renderer
// ABOUTME: Rasterises the tick ring, hands and centre cap onto a braille canvas
package ui

import (
	"math"

	"github.com/harperreed/clockwidget/pkg/clock"
)

// faceCells picks the largest square face (in dots) that fits the given
// cell area, returned as cell columns and rows
func faceCells(width, height int) (cols, rows int) {
	dots := min(width*2, height*4)
	dots -= dots % 4
	if dots < 8 {
		dots = 8
	}
	return dots / 2, dots / 4
}

// drawFace renders the face for the given angles into cols x rows cells
func drawFace(a clock.Angles, cols, rows int) *canvas {
	c := newCanvas(cols, rows)
	scale := float64(min(c.width(), c.height())-1) / clock.FaceSize

	toDots := func(p clock.Point) (float64, float64) {
		return p.X * scale, p.Y * scale
	}
	thickness := func(w float64) int {
		return max(1, int(math.Round(w*scale/2)))
	}

	for _, tick := range clock.Ticks() {
		seg := tick.Segment()
		x0, y0 := toDots(seg.From)
		x1, y1 := toDots(seg.To)
		c.stroke(x0, y0, x1, y1, thickness(seg.Width))
	}

	for _, hand := range clock.Hands(a) {
		seg := hand.Segment()
		x0, y0 := toDots(seg.From)
		x1, y1 := toDots(seg.To)
		c.stroke(x0, y0, x1, y1, thickness(seg.Width))
	}

	cx, cy := toDots(clock.Point{X: clock.FaceCenter, Y: clock.FaceCenter})
	c.disc(cx, cy, clock.CapRadius*scale)

	return c
}

// renderAnalog draws the face sized to fit width x height cells
func renderAnalog(a clock.Angles, width, height int, dim bool) string {
	cols, rows := faceCells(width, height)
	face := drawFace(a, cols, rows).String()

	if dim {
		return styleFaceDim.Render(face)
	}
	return styleFace.Render(face)
}
