package game

import (
	"github.com/daystram/draughts/position"
)

// penalize applies the mandatory capture rule to a move that captured
// nothing: one of the pieces that could have captured, picked at random, is
// removed. It returns the removed position, or Invalid if there was none.
func (g *Game) penalize(candidates []position.Pos) position.Pos {
	if len(candidates) == 0 {
		return position.Invalid
	}
	p := candidates[g.rand.Intn(len(candidates))]
	g.board.Remove(p)
	g.log.Debug().
		Str("turn", g.turn.String()).
		Int("candidates", len(candidates)).
		Msgf("penalty removed %s", p)
	return p
}
