package board

import "errors"

// Move rejection reasons. Every error returned while validating a move wraps
// exactly one of these.
var (
	ErrOutCoordinate = errors.New("coordinate out of board")
	ErrBadFormat     = errors.New("move needs at least an origin and a target")

	ErrEmptyOrigin    = errors.New("empty origin")
	ErrOppositePiece  = errors.New("origin piece belongs to the opponent")
	ErrNotEmptyTarget = errors.New("target is not empty")

	ErrNotDiagonal     = errors.New("not a diagonal movement")
	ErrNotAdvanced     = errors.New("man cannot move backwards without capturing")
	ErrTooMuchAdvanced = errors.New("man cannot move that far")
	ErrWithoutEating   = errors.New("jump without capturing")
	ErrColleagueEating = errors.New("cannot capture own piece")
	ErrTooMuchEatings  = errors.New("cannot capture more than one piece per jump")

	ErrTooMuchJumps = errors.New("every jump of a chain must capture")

	ErrInvalidLayout = errors.New("invalid layout")
)
