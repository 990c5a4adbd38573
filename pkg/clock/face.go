// ABOUTME: Analog face geometry
// ABOUTME: Static 60-tick ring and the three hands in a 200x200 face box
package clock

import "math"

// Face box dimensions; the centre is at (FaceCenter, FaceCenter)
const (
	FaceSize   = 200.0
	FaceCenter = FaceSize / 2
	CapRadius  = 5.0
)

// Point is a position in face coordinates (y grows downwards)
type Point struct {
	X, Y float64
}

// Segment is a stroked line in face coordinates
type Segment struct {
	From  Point
	To    Point
	Width float64
}

// Polar maps an angle (degrees, clockwise from 12) and radius to a point
func Polar(angle, radius float64) Point {
	rad := angle * math.Pi / 180
	return Point{
		X: FaceCenter + radius*math.Sin(rad),
		Y: FaceCenter - radius*math.Cos(rad),
	}
}

// Tick is one mark on the ring
type Tick struct {
	Index int
	Angle float64
	Major bool
	Outer float64
	Inner float64
	Width float64
}

// Segment returns the stroke for the tick
func (t Tick) Segment() Segment {
	return Segment{
		From:  Polar(t.Angle, t.Outer),
		To:    Polar(t.Angle, t.Inner),
		Width: t.Width,
	}
}

var ring = buildRing()

func buildRing() [60]Tick {
	var r [60]Tick
	for i := range r {
		t := Tick{
			Index: i,
			Angle: float64(i * 6),
			Major: i%5 == 0,
		}
		if t.Major {
			t.Outer, t.Inner, t.Width = 85, 70, 4
		} else {
			t.Outer, t.Inner, t.Width = 90, 83, 2
		}
		r[i] = t
	}
	return r
}

// Ticks returns the static tick ring: 12 major ticks every 30°, 48 minor ones
func Ticks() [60]Tick {
	return ring
}

// HandKind identifies a hand
type HandKind int

const (
	HourHand HandKind = iota
	MinuteHand
	SecondHand
)

func (k HandKind) String() string {
	switch k {
	case HourHand:
		return "hour"
	case MinuteHand:
		return "minute"
	default:
		return "second"
	}
}

// Hand is a rotated hand; Tail extends past the centre
type Hand struct {
	Kind   HandKind
	Angle  float64
	Length float64
	Tail   float64
	Width  float64
}

// Segment returns the stroke for the hand
func (h Hand) Segment() Segment {
	return Segment{
		From:  Polar(h.Angle+180, h.Tail),
		To:    Polar(h.Angle, h.Length),
		Width: h.Width,
	}
}

// Hands returns hour, minute and second hands in drawing order
func Hands(a Angles) [3]Hand {
	return [3]Hand{
		{Kind: HourHand, Angle: a.Hour, Length: 50, Width: 6},
		{Kind: MinuteHand, Angle: a.Minute, Length: 70, Width: 4},
		{Kind: SecondHand, Angle: a.Second, Length: 75, Tail: 10, Width: 2},
	}
}
