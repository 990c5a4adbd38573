// ABOUTME: Tests for hand angles and binary columns
// ABOUTME: Tests angle ranges, monotonic sweep, bit tests and the suppression table
package clock

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func utcInstant(h, m, s, ms int) Instant {
	return NewInstant(time.Date(2024, 1, 1, h, m, s, ms*int(time.Millisecond), time.UTC), time.UTC)
}

func TestHandAngles(t *testing.T) {
	tests := []struct {
		name     string
		inst     Instant
		expected Angles
	}{
		{"midnight", utcInstant(0, 0, 0, 0), Angles{0, 0, 0}},
		{"half second", utcInstant(0, 0, 0, 500), Angles{Hour: 0, Minute: 0, Second: 3}},
		{"three o'clock", utcInstant(15, 0, 0, 0), Angles{Hour: 90, Minute: 0, Second: 0}},
		{"half past six", utcInstant(6, 30, 0, 0), Angles{Hour: 195, Minute: 180, Second: 0}},
		{"minute with seconds", utcInstant(0, 10, 30, 0), Angles{Hour: 5, Minute: 63, Second: 180}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := HandAngles(tt.inst)
			assert.InDelta(t, tt.expected.Hour, a.Hour, 1e-9)
			assert.InDelta(t, tt.expected.Minute, a.Minute, 1e-9)
			assert.InDelta(t, tt.expected.Second, a.Second, 1e-9)
		})
	}
}

func TestHandAnglesUseLocalTime(t *testing.T) {
	zone := time.FixedZone("UTC-3", -3*3600)
	inst := NewInstant(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), zone)

	// 09:00 local
	assert.InDelta(t, 270.0, HandAngles(inst).Hour, 1e-9)
}

func TestHandAnglesStayInRangeAndAdvance(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	prev := HandAngles(NewInstant(start, time.UTC))

	step := 250 * time.Millisecond
	for at := start.Add(step); at.Before(start.Add(24 * time.Hour)); at = at.Add(step) {
		cur := HandAngles(NewInstant(at, time.UTC))

		for _, pair := range [][2]float64{
			{prev.Hour, cur.Hour},
			{prev.Minute, cur.Minute},
			{prev.Second, cur.Second},
		} {
			if pair[1] < 0 || pair[1] >= 360 {
				t.Fatalf("angle %f out of range at %s", pair[1], at)
			}

			delta := math.Mod(pair[1]-pair[0]+360, 360)
			if delta >= 180 {
				t.Fatalf("hand moved backwards at %s: %f -> %f", at, pair[0], pair[1])
			}
		}
		prev = cur
	}
}

func TestColumnOn(t *testing.T) {
	for d := 0; d <= 9; d++ {
		for _, w := range Weights {
			col := Column{Label: "s", Digit: d, Max: 9}
			assert.Equal(t, d&w == w, col.On(w), "digit %d weight %d", d, w)
		}
	}
}

func TestSuppressionTable(t *testing.T) {
	expected := map[string][]int{
		"H": {8, 4},
		"h": nil,
		"M": {8},
		"m": nil,
		"S": {8},
		"s": nil,
	}

	for _, col := range BinaryColumns(utcInstant(0, 0, 0, 0)) {
		for _, w := range Weights {
			want := false
			for _, s := range expected[col.Label] {
				if s == w {
					want = true
				}
			}
			assert.Equal(t, want, col.Suppressed(w), "column %s weight %d", col.Label, w)
		}
	}
}

func TestBinaryColumnsDigits(t *testing.T) {
	cols := BinaryColumns(utcInstant(23, 59, 7, 0))

	digits := make([]int, 0, len(cols))
	maxes := make([]int, 0, len(cols))
	for _, c := range cols {
		digits = append(digits, c.Digit)
		maxes = append(maxes, c.Max)
	}

	assert.Equal(t, []int{2, 3, 5, 9, 0, 7}, digits)
	assert.Equal(t, []int{2, 9, 5, 9, 5, 9}, maxes)
}

func TestGrid(t *testing.T) {
	const (
		o   = CellOff
		X   = CellOn
		sup = CellSuppressed
	)

	g := Grid(BinaryColumns(utcInstant(23, 59, 59, 0)))

	expected := [4][6]CellState{
		{sup, o, sup, X, sup, X}, // 8
		{sup, o, X, o, X, o},     // 4
		{X, X, o, o, o, o},       // 2
		{o, X, X, X, X, X},       // 1
	}
	assert.Equal(t, expected, g)
}

func TestCellSuppressionWinsOverOn(t *testing.T) {
	// An out-of-range digit still renders blank in a suppressed row
	col := Column{Label: "M", Digit: 9, Max: 5}
	assert.Equal(t, CellSuppressed, col.Cell(8))
	assert.Equal(t, CellOn, col.Cell(1))
	assert.Equal(t, "suppressed", col.Cell(8).String())
}

func TestDecomposeIsIdempotent(t *testing.T) {
	inst := NewInstant(time.Date(2024, 6, 15, 13, 37, 42, 123_000_000, time.UTC), time.UTC)

	first := Decompose(inst)
	second := Decompose(inst)

	assert.Equal(t, first, second)
}
