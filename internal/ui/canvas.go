// ABOUTME: Braille dot canvas for terminal line drawing
// ABOUTME: Each cell holds a 2x4 dot matrix rendered as a Unicode braille rune
package ui

import (
	"math"
	"strings"
)

// braille dot bits indexed by [y][x] within a cell
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

type canvas struct {
	cols, rows int
	cells      []uint8
}

func newCanvas(cols, rows int) *canvas {
	return &canvas{
		cols:  cols,
		rows:  rows,
		cells: make([]uint8, cols*rows),
	}
}

// dot dimensions
func (c *canvas) width() int  { return c.cols * 2 }
func (c *canvas) height() int { return c.rows * 4 }

func (c *canvas) set(x, y int) {
	if x < 0 || y < 0 || x >= c.width() || y >= c.height() {
		return
	}
	c.cells[(y/4)*c.cols+x/2] |= brailleBits[y%4][x%2]
}

func (c *canvas) isSet(x, y int) bool {
	if x < 0 || y < 0 || x >= c.width() || y >= c.height() {
		return false
	}
	return c.cells[(y/4)*c.cols+x/2]&brailleBits[y%4][x%2] != 0
}

// line draws from (x0,y0) to (x1,y1) with Bresenham's algorithm
func (c *canvas) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// stroke draws a line of the given thickness in dots by offsetting
// parallel lines along the normal
func (c *canvas) stroke(x0, y0, x1, y1 float64, thickness int) {
	if thickness < 1 {
		thickness = 1
	}
	nx, ny := y0-y1, x1-x0
	if l := math.Hypot(nx, ny); l > 0 {
		nx, ny = nx/l, ny/l
	}

	for i := 0; i < thickness; i++ {
		off := float64(i) - float64(thickness-1)/2
		c.line(
			round(x0+nx*off), round(y0+ny*off),
			round(x1+nx*off), round(y1+ny*off),
		)
	}
}

func (c *canvas) disc(cx, cy, r float64) {
	for y := int(cy - r); y <= int(cy+r+1); y++ {
		for x := int(cx - r); x <= int(cx+r+1); x++ {
			if math.Hypot(float64(x)-cx, float64(y)-cy) <= r {
				c.set(x, y)
			}
		}
	}
}

func (c *canvas) String() string {
	var b strings.Builder
	for r := 0; r < c.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < c.cols; col++ {
			bits := c.cells[r*c.cols+col]
			if bits == 0 {
				b.WriteByte(' ')
				continue
			}
			b.WriteRune(rune(0x2800 + int(bits)))
		}
	}
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func round(v float64) int {
	return int(math.Round(v))
}
