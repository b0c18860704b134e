package board

import "github.com/daystram/draughts/position"

type Color uint8

const (
	ColorUnknown Color = iota
	ColorLight
	ColorDark
)

// initialRows is how many rows each side fills at the start of a game.
const initialRows = 3

func (c Color) String() string {
	switch c {
	case ColorLight:
		return "Light"
	case ColorDark:
		return "Dark"
	default:
		return ""
	}
}

// Notation is the single letter used in snapshots.
func (c Color) Notation() string {
	switch c {
	case ColorLight:
		return "l"
	case ColorDark:
		return "d"
	default:
		return "-"
	}
}

func ParseColor(n string) (Color, bool) {
	switch n {
	case "l":
		return ColorLight, true
	case "d":
		return ColorDark, true
	default:
		return ColorUnknown, false
	}
}

func (c Color) Opposite() Color {
	switch c {
	case ColorLight:
		return ColorDark
	case ColorDark:
		return ColorLight
	default:
		return ColorUnknown
	}
}

// PromotionRow is the far edge row, opposite to where the color starts.
func (c Color) PromotionRow() int {
	switch c {
	case ColorLight:
		return 0
	case ColorDark:
		return position.Dimension - 1
	default:
		return -1
	}
}

// forward is the row delta of a step towards the opponent's edge.
func (c Color) forward() int {
	switch c {
	case ColorLight:
		return -1
	case ColorDark:
		return 1
	default:
		return 0
	}
}

// InitialColor returns the color of the man standing on p at the start of a
// game, or ColorUnknown if the cell starts empty.
func InitialColor(p position.Pos) Color {
	if !p.IsValid() || !p.IsDark() {
		return ColorUnknown
	}
	switch row := p.Row(); {
	case row < initialRows:
		return ColorDark
	case row >= position.Dimension-initialRows:
		return ColorLight
	default:
		return ColorUnknown
	}
}
