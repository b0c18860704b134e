package board

import "github.com/daystram/draughts/position"

type Kind uint8

const (
	KindUnknown Kind = iota
	KindMan
	KindKing
)

func (k Kind) String() string {
	switch k {
	case KindMan:
		return "Man"
	case KindKing:
		return "King"
	default:
		return ""
	}
}

// Piece is a value; the zero Piece is an empty cell.
type Piece struct {
	Kind  Kind
	Color Color
}

// NoPiece is the content of an empty cell.
var NoPiece = Piece{}

func NewMan(c Color) Piece {
	return Piece{Kind: KindMan, Color: c}
}

func NewKing(c Color) Piece {
	return Piece{Kind: KindKing, Color: c}
}

func (p Piece) IsEmpty() bool {
	return p.Kind == KindUnknown
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return ""
	}
	return p.Color.String() + " " + p.Kind.String()
}

// Symbol returns the layout marker: b/B for light, n/N for dark, upper case
// for kings, and a blank for an empty cell.
func (p Piece) Symbol() rune {
	var sym rune
	switch p.Color {
	case ColorLight:
		sym = 'b'
	case ColorDark:
		sym = 'n'
	default:
		return ' '
	}
	if p.Kind == KindKing {
		sym &^= 0x20 // to upper case
	}
	return sym
}

func (p Piece) SymbolUnicode() string {
	switch p {
	case NewMan(ColorLight):
		return "⛀"
	case NewKing(ColorLight):
		return "⛁"
	case NewMan(ColorDark):
		return "⛂"
	case NewKing(ColorDark):
		return "⛃"
	default:
		return " "
	}
}

// ParsePiece reads a layout marker. Both ' ' and '.' are empty cells.
func ParsePiece(sym rune) (Piece, bool) {
	switch sym {
	case ' ', '.':
		return NoPiece, true
	case 'b':
		return NewMan(ColorLight), true
	case 'B':
		return NewKing(ColorLight), true
	case 'n':
		return NewMan(ColorDark), true
	case 'N':
		return NewKing(ColorDark), true
	default:
		return NoPiece, false
	}
}

// CheckMovement validates a single hop of p from origin to target, given the
// pieces found strictly between them. It returns nil if the hop is legal.
func (p Piece) CheckMovement(origin, target position.Pos, between []Piece) error {
	if !position.OnSameDiagonal(origin, target) {
		return ErrNotDiagonal
	}
	for _, b := range between {
		if b.Color == p.Color {
			return ErrColleagueEating
		}
	}
	r := rules[p.Kind]
	if r.checkMovement == nil {
		return ErrEmptyOrigin
	}
	return r.checkMovement(p, origin, target, between)
}

// CanPromote reports whether p standing on at must be promoted.
func (p Piece) CanPromote(at position.Pos) bool {
	r := rules[p.Kind]
	return r.canPromote != nil && r.canPromote(p, at)
}

// Promoted returns the king replacing p.
func (p Piece) Promoted() Piece {
	return NewKing(p.Color)
}
