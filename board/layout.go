package board

import (
	"fmt"
	"strings"

	"github.com/daystram/draughts/position"
)

// StartingLayout is the layout of a board at the start of a game.
const StartingLayout = ".n.n.n.n/n.n.n.n./.n.n.n.n/......../......../b.b.b.b./.b.b.b.b/b.b.b.b."

func (b *Board) parseLayout(layout string) error {
	rows := strings.Split(layout, "/")
	if len(rows) != Height {
		return fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidLayout, Height, len(rows))
	}
	return b.parseRows(rows)
}

func (b *Board) parseRows(rows []string) error {
	if len(rows) != Height {
		return fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidLayout, Height, len(rows))
	}
	var cells [Height][Width]Piece
	for y, row := range rows {
		markers := []rune(row)
		if len(markers) != Width {
			return fmt.Errorf("%w: row %d has %d cells", ErrInvalidLayout, y, len(markers))
		}
		for x, sym := range markers {
			piece, ok := ParsePiece(sym)
			if !ok {
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidLayout, string(sym))
			}
			cells[y][x] = piece
		}
	}
	b.cells = cells
	return nil
}

// Rows returns one marker string per row, top row first, with blanks for
// empty cells. NewBoard(WithRows(b.Rows()...)) rebuilds b.
func (b *Board) Rows() []string {
	rows := make([]string, Height)
	for y := 0; y < Height; y++ {
		builder := strings.Builder{}
		for x := 0; x < Width; x++ {
			_, _ = builder.WriteRune(b.Piece(position.New(y, x)).Symbol())
		}
		rows[y] = builder.String()
	}
	return rows
}

// Layout returns the compact single line form of the board, using '.' for
// empty cells and '/' between rows.
func (b *Board) Layout() string {
	rows := b.Rows()
	for i, row := range rows {
		rows[i] = strings.ReplaceAll(row, " ", ".")
	}
	return strings.Join(rows, "/")
}
