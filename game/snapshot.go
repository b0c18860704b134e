package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/daystram/draughts/board"
)

var (
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

// Snapshot is everything needed to resume a game.
type Snapshot struct {
	Layout string
	Turn   board.Color
}

func (s Snapshot) String() string {
	return s.Layout + " " + s.Turn.Notation()
}

// ParseSnapshot reads the form printed by Snapshot.String.
func ParseSnapshot(s string) (Snapshot, error) {
	segments := strings.Fields(s)
	if len(segments) != 2 {
		return Snapshot{}, fmt.Errorf("%w: incorrect number of segments", ErrInvalidSnapshot)
	}
	turn, ok := board.ParseColor(segments[1])
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: invalid turn", ErrInvalidSnapshot)
	}
	return Snapshot{Layout: segments[0], Turn: turn}, nil
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Layout: g.board.Layout(),
		Turn:   g.turn,
	}
}

// Restore rebuilds a game from a snapshot. Board and turn options are
// overridden by the snapshot.
func Restore(s Snapshot, opts ...GameOption) (*Game, error) {
	if s.Turn != board.ColorLight && s.Turn != board.ColorDark {
		return nil, fmt.Errorf("%w: invalid turn", ErrInvalidSnapshot)
	}
	if s.Layout == "" {
		return nil, fmt.Errorf("%w: missing layout", ErrInvalidSnapshot)
	}
	b, err := board.NewBoard(board.WithLayout(s.Layout))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return NewGame(append(opts, WithBoard(b), WithTurn(s.Turn))...), nil
}
