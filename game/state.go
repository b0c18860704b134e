package game

import "github.com/daystram/draughts/board"

type State uint8

const (
	// StateUnknown is when game state is unknown.
	StateUnknown State = iota

	// StateRunning is when the side to move still has a legal move.
	StateRunning

	// StateLightWins is when Dark is to move and cannot.
	StateLightWins

	// StateDarkWins is when Light is to move and cannot.
	StateDarkWins
)

func (s State) IsRunning() bool {
	return s == StateRunning
}

// Winner returns the winning side, or ColorUnknown while the game runs.
func (s State) Winner() board.Color {
	switch s {
	case StateLightWins:
		return board.ColorLight
	case StateDarkWins:
		return board.ColorDark
	default:
		return board.ColorUnknown
	}
}

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "StateUnknown"
	case StateRunning:
		return "StateRunning"
	case StateLightWins:
		return "StateLightWins"
	case StateDarkWins:
		return "StateDarkWins"
	default:
		return ""
	}
}

// State derives the game state from the side to move.
func (g *Game) State() State {
	if !g.IsBlocked() {
		return StateRunning
	}
	if g.turn == board.ColorLight {
		return StateDarkWins
	}
	return StateLightWins
}
