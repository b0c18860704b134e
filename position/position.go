package position

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Dimension is the number of rows and columns of the board.
	Dimension = 8

	// Invalid is the position of every cell outside the board.
	Invalid Pos = -1
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a board cell, encoded as row*Dimension+column. Row 0 is the top edge.
type Pos int8

// New returns the position at (row, col), or Invalid if it falls off the board.
func New(row, col int) Pos {
	if row < 0 || row >= Dimension || col < 0 || col >= Dimension {
		return Invalid
	}
	return Pos(row*Dimension + col)
}

// NewPosFromNotation parses a two digit "RC" notation, e.g. "50".
func NewPosFromNotation(n string) (Pos, error) {
	if len(n) != 2 {
		return Invalid, ErrInvalidNotation
	}
	row, col := int(n[0])-'0', int(n[1])-'0'
	p := New(row, col)
	if p == Invalid {
		return Invalid, ErrInvalidNotation
	}
	return p, nil
}

// ParseChain reads a move chain such as "50x32x14", "50-41" or "50 41".
func ParseChain(s string) ([]Pos, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == 'x' || r == '-' || r == ' ' || r == '.' || r == ','
	})
	chain := make([]Pos, 0, len(fields))
	for _, f := range fields {
		p, err := NewPosFromNotation(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, f)
		}
		chain = append(chain, p)
	}
	return chain, nil
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.IsValid() {
		return ""
	}
	return string(rune('0'+p.Row())) + string(rune('0'+p.Col()))
}

func (p Pos) IsValid() bool {
	return p >= 0 && p < Dimension*Dimension
}

func (p Pos) Row() int {
	return int(p) / Dimension
}

func (p Pos) Col() int {
	return int(p) % Dimension
}

// IsDark reports whether the cell is one of the playable dark squares.
func (p Pos) IsDark() bool {
	return (p.Row()+p.Col())%2 == 1
}

// All returns every cell in row-major order.
func All() []Pos {
	all := make([]Pos, 0, Dimension*Dimension)
	for i := Pos(0); i < Dimension*Dimension; i++ {
		all = append(all, i)
	}
	return all
}
