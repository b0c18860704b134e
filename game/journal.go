package game

import (
	"strings"

	"github.com/daystram/draughts/board"
	"github.com/daystram/draughts/position"
)

// journal is the log of hops applied while a move is in progress.
type journal []board.Hop

func (j *journal) record(h board.Hop) {
	*j = append(*j, h)
}

func (j journal) captures() int {
	var n int
	for _, h := range j {
		if h.IsCapture() {
			n++
		}
	}
	return n
}

// undo replays the journal backwards.
func (j journal) undo(b *board.Board) {
	for i := len(j) - 1; i >= 0; i-- {
		b.UndoHop(j[i])
	}
}

// Record describes an accepted move.
type Record struct {
	Color     board.Color
	Hops      []board.Hop
	Penalized position.Pos // piece removed by the capture penalty, or Invalid
}

func (r *Record) Captures() int {
	return journal(r.Hops).captures()
}

// Chain returns the positions visited by the move, origin first.
func (r *Record) Chain() []position.Pos {
	if len(r.Hops) == 0 {
		return nil
	}
	chain := []position.Pos{r.Hops[0].From}
	for _, h := range r.Hops {
		chain = append(chain, h.To)
	}
	return chain
}

// Notation renders the move as e.g. "50-41" or "50x32x14".
func (r *Record) Notation() string {
	if len(r.Hops) == 0 {
		return ""
	}
	builder := strings.Builder{}
	_, _ = builder.WriteString(r.Hops[0].From.Notation())
	for _, h := range r.Hops {
		if h.IsCapture() {
			_, _ = builder.WriteRune('x')
		} else {
			_, _ = builder.WriteRune('-')
		}
		_, _ = builder.WriteString(h.To.Notation())
	}
	return builder.String()
}

func (r *Record) String() string {
	if r.Penalized.IsValid() {
		return r.Notation() + " (penalty " + r.Penalized.Notation() + ")"
	}
	return r.Notation()
}
