// ABOUTME: Derived time decomposition for the renderers
// ABOUTME: Computes hand angles and binary-coded-decimal columns from an Instant
package clock

// Angles are hand rotations in degrees, clockwise from 12 o'clock
type Angles struct {
	Hour   float64
	Minute float64
	Second float64
}

// HandAngles computes the three hand rotations from local time.
// The second hand keeps the millisecond fraction for a smooth sweep.
func HandAngles(i Instant) Angles {
	c := i.LocalClock()
	return Angles{
		Second: (float64(c.Second) + float64(c.Millisecond)/1000) * 6,
		Minute: (float64(c.Minute) + float64(c.Second)/60) * 6,
		Hour:   (float64(c.Hour%12) + float64(c.Minute)/60) * 30,
	}
}

// Weights are the bit weights of the binary rows, top to bottom
var Weights = [4]int{8, 4, 2, 1}

// CellState is the rendered state of one binary cell
type CellState int

const (
	CellOff CellState = iota
	CellOn
	CellSuppressed
)

func (s CellState) String() string {
	switch s {
	case CellOn:
		return "on"
	case CellSuppressed:
		return "suppressed"
	default:
		return "off"
	}
}

// Column is one decimal digit of HH:MM:SS
type Column struct {
	Label string // H, h, M, m, S, s
	Digit int
	Max   int
}

// suppressAbove lists, per tens column, the largest weight that is drawn.
// Ones columns are absent and draw every weight.
var suppressAbove = map[string]int{
	"H": 2,
	"M": 4,
	"S": 4,
}

// On reports whether weight w is set in the digit
func (c Column) On(w int) bool {
	return c.Digit&w == w
}

// Suppressed reports whether weight w is left blank for this column
func (c Column) Suppressed(w int) bool {
	limit, ok := suppressAbove[c.Label]
	return ok && w > limit
}

// Cell combines On and Suppressed; suppression wins
func (c Column) Cell(w int) CellState {
	if c.Suppressed(w) {
		return CellSuppressed
	}
	if c.On(w) {
		return CellOn
	}
	return CellOff
}

// BinaryColumns splits local HH:MM:SS into six digit columns
func BinaryColumns(i Instant) [6]Column {
	c := i.LocalClock()
	return [6]Column{
		{Label: "H", Digit: c.Hour / 10, Max: 2},
		{Label: "h", Digit: c.Hour % 10, Max: 9},
		{Label: "M", Digit: c.Minute / 10, Max: 5},
		{Label: "m", Digit: c.Minute % 10, Max: 9},
		{Label: "S", Digit: c.Second / 10, Max: 5},
		{Label: "s", Digit: c.Second % 10, Max: 9},
	}
}

// Grid lays the columns out as rows of weights 8, 4, 2, 1
func Grid(cols [6]Column) [4][6]CellState {
	var g [4][6]CellState
	for r, w := range Weights {
		for c, col := range cols {
			g[r][c] = col.Cell(w)
		}
	}
	return g
}

// Derivation is everything the renderers need from one Instant
type Derivation struct {
	Angles  Angles
	Columns [6]Column
}

// Decompose computes the angles and binary columns for i
func Decompose(i Instant) Derivation {
	return Derivation{
		Angles:  HandAngles(i),
		Columns: BinaryColumns(i),
	}
}
