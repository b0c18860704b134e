package board

import "github.com/daystram/draughts/position"

// maxManDistance is the longest hop a man can make: a single jump.
const maxManDistance = 2

type rule struct {
	checkMovement func(p Piece, origin, target position.Pos, between []Piece) error
	canPromote    func(p Piece, at position.Pos) bool
}

// rules is the capability table, indexed by Kind. CheckMovement has already
// rejected non-diagonal hops and own-color captures before dispatching here.
var rules = [KindKing + 1]rule{
	KindMan: {
		checkMovement: checkManMovement,
		canPromote: func(p Piece, at position.Pos) bool {
			return at.Row() == p.Color.PromotionRow()
		},
	},
	KindKing: {
		checkMovement: checkKingMovement,
	},
}

func checkManMovement(p Piece, origin, target position.Pos, between []Piece) error {
	switch distance := position.DiagonalDistance(origin, target); {
	case distance > maxManDistance:
		return ErrTooMuchAdvanced
	case distance == maxManDistance:
		if len(between) != 1 {
			return ErrWithoutEating
		}
		return nil
	default:
		if (target.Row()-origin.Row())*p.Color.forward() <= 0 {
			return ErrNotAdvanced
		}
		return nil
	}
}

func checkKingMovement(_ Piece, _, _ position.Pos, between []Piece) error {
	if len(between) > 1 {
		return ErrTooMuchEatings
	}
	return nil
}
