// ABOUTME: Tests for analog face geometry
// ABOUTME: Tests the tick ring layout and hand placement
package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTickRing(t *testing.T) {
	ticks := Ticks()

	major := 0
	for i, tick := range ticks {
		assert.Equal(t, i, tick.Index)
		assert.InDelta(t, float64(i*6), tick.Angle, 1e-9)
		if tick.Major {
			major++
			assert.Equal(t, 0, i%5, "major tick at %d", i)
			assert.Equal(t, 4.0, tick.Width)
		} else {
			assert.Equal(t, 2.0, tick.Width)
		}
	}

	assert.Equal(t, 12, major)
	assert.Equal(t, 48, len(ticks)-major)
}

func TestTicksAreStatic(t *testing.T) {
	a := Ticks()
	a[0].Angle = 42

	assert.Equal(t, 0.0, Ticks()[0].Angle)
}

func TestTickSegmentAtTwelve(t *testing.T) {
	seg := Ticks()[0].Segment()

	assert.InDelta(t, 100.0, seg.From.X, 1e-9)
	assert.InDelta(t, 15.0, seg.From.Y, 1e-9)
	assert.InDelta(t, 30.0, seg.To.Y, 1e-9)
}

func TestPolar(t *testing.T) {
	tests := []struct {
		name   string
		angle  float64
		radius float64
		x, y   float64
	}{
		{"twelve", 0, 50, 100, 50},
		{"three", 90, 50, 150, 100},
		{"six", 180, 50, 100, 150},
		{"nine", 270, 50, 50, 100},
		{"centre", 123, 0, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Polar(tt.angle, tt.radius)
			assert.InDelta(t, tt.x, p.X, 1e-9)
			assert.InDelta(t, tt.y, p.Y, 1e-9)
		})
	}
}

func TestHands(t *testing.T) {
	hands := Hands(Angles{Hour: 90, Minute: 180, Second: 3})

	assert.Equal(t, HourHand, hands[0].Kind)
	assert.Equal(t, MinuteHand, hands[1].Kind)
	assert.Equal(t, SecondHand, hands[2].Kind)

	hour := hands[0].Segment()
	assert.InDelta(t, 150.0, hour.To.X, 1e-9)
	assert.InDelta(t, 100.0, hour.To.Y, 1e-9)

	minute := hands[1].Segment()
	assert.InDelta(t, 170.0, minute.To.Y, 1e-9)

	// sub-second angle survives into the geometry
	assert.Equal(t, 3.0, hands[2].Angle)
	second := hands[2].Segment()
	assert.Greater(t, second.To.X, 100.0)
	assert.Greater(t, second.From.Y, 100.0)
	assert.Equal(t, "second", hands[2].Kind.String())
}
