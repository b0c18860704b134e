package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/draughts/position"
)

var (
	cellLight = color.New(color.FgBlack, color.BgHiWhite)
	cellDark  = color.New(color.FgBlack, color.BgGreen)
	coord     = color.New(color.Bold)
)

func (b *Board) String() string {
	return b.Dump()
}

// Dump renders the board as plain text with row and column numbers.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := 0; y < Height; y++ {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y))
		for x := 0; x < Width; x++ {
			_, _ = builder.WriteString(fmt.Sprintf(" %c |", b.Piece(position.New(y, x)).Symbol()))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := 0; x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %d ", x))
	}
	return builder.String()
}

// Draw renders the board for a terminal, with colored cells and unicode
// pieces. Colors are dropped when color.NoColor is set.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for y := 0; y < Height; y++ {
		_, _ = builder.WriteString(coord.Sprintf(" %d ", y))
		for x := 0; x < Width; x++ {
			p := position.New(y, x)
			cell := cellLight
			if p.IsDark() {
				cell = cellDark
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", b.Piece(p).SymbolUnicode()))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := 0; x < Width; x++ {
		_, _ = builder.WriteString(coord.Sprintf(" %d ", x))
	}
	return builder.String()
}
