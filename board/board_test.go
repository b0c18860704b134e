package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daystram/draughts/position"
)

func chain(ns ...string) []position.Pos {
	c := make([]position.Pos, 0, len(ns))
	for _, n := range ns {
		p, err := position.NewPosFromNotation(n)
		if err != nil {
			panic(err)
		}
		c = append(c, p)
	}
	return c
}

func mustBoard(t *testing.T, rows ...string) *Board {
	t.Helper()
	b, err := NewBoard(WithRows(rows...))
	require.NoError(t, err)
	return b
}

func TestPrimitives(t *testing.T) {
	t.Parallel()

	b, err := NewBoard(WithEmpty())
	require.NoError(t, err)
	p := position.New(4, 1)

	b.Put(p, NewMan(ColorDark))
	assert.False(t, b.IsEmpty(p))
	assert.Equal(t, ColorDark, b.Color(p))

	b.Move(p, position.New(5, 2))
	assert.True(t, b.IsEmpty(p))
	assert.Equal(t, NewMan(ColorDark), b.Piece(position.New(5, 2)))

	assert.Equal(t, NewMan(ColorDark), b.Remove(position.New(5, 2)))
	assert.Panics(t, func() { b.Remove(position.New(5, 2)) })
	assert.Panics(t, func() { b.Put(p, NoPiece) })

	assert.Equal(t, NoPiece, b.Piece(position.Invalid))
	assert.Equal(t, 8, b.Dimension())
}

func TestIsEmptyAgreesWithPiece(t *testing.T) {
	t.Parallel()

	b, err := NewBoard()
	require.NoError(t, err)
	for _, p := range position.All() {
		assert.Equal(t, b.IsEmpty(p), b.Piece(p) == NoPiece, "cell %s", p)
	}

	assert.Equal(t, 12, b.Count(ColorLight))
	assert.Equal(t, 12, b.Count(ColorDark))
	for _, piece := range b.Pieces(ColorDark) {
		assert.Equal(t, NewMan(ColorDark), piece)
	}
}

func TestCheckHop(t *testing.T) {
	t.Parallel()

	b := mustBoard(t,
		"        ",
		"  n     ",
		"   n    ",
		"  b     ",
		"     b  ",
		"b   b   ",
		"        ",
		"        ")

	tests := []struct {
		name    string
		turn    Color
		chain   []position.Pos
		wantErr error
	}{
		{name: "step", turn: ColorLight, chain: chain("50", "41")},
		{name: "capture", turn: ColorLight, chain: chain("32", "14")},
		{name: "empty origin", turn: ColorLight, chain: chain("40", "31"), wantErr: ErrEmptyOrigin},
		{name: "opposite piece", turn: ColorLight, chain: chain("23", "34"), wantErr: ErrOppositePiece},
		{name: "occupied target", turn: ColorLight, chain: chain("32", "23"), wantErr: ErrNotEmptyTarget},
		{name: "colleague", turn: ColorLight, chain: chain("54", "36"), wantErr: ErrColleagueEating},
		{name: "backward", turn: ColorLight, chain: chain("45", "56"), wantErr: ErrNotAdvanced},
		{name: "dark capture", turn: ColorDark, chain: chain("23", "41")},
		{name: "single position", turn: ColorLight, chain: chain("50"), wantErr: ErrBadFormat},
		{name: "off board", turn: ColorLight, chain: []position.Pos{position.New(5, 0), position.Invalid}, wantErr: ErrOutCoordinate},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := b.CheckHop(tt.turn, 0, tt.chain)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApplyAndUndoHop(t *testing.T) {
	t.Parallel()

	b := mustBoard(t,
		"        ",
		"        ",
		"        ",
		"        ",
		" n      ",
		"b       ",
		"        ",
		"        ")
	before := b.Clone()

	c := chain("50", "32")
	require.NoError(t, b.CheckHop(ColorLight, 0, c))
	h := b.ApplyHop(0, c)

	assert.True(t, h.IsCapture())
	assert.Equal(t, position.New(4, 1), h.CapturedAt)
	assert.Equal(t, NewMan(ColorDark), h.Captured)
	assert.Equal(t, "50x32", h.String())
	assert.True(t, b.IsEmpty(position.New(4, 1)))
	assert.Equal(t, NewMan(ColorLight), b.Piece(position.New(3, 2)))

	b.UndoHop(h)
	assert.True(t, before.Equal(b))
}

func TestApplyHopPromotes(t *testing.T) {
	t.Parallel()

	b := mustBoard(t,
		"        ",
		"b       ",
		"        ",
		"        ",
		"        ",
		"        ",
		"      n ",
		"        ")
	before := b.Clone()

	h := b.ApplyHop(0, chain("10", "01"))
	assert.False(t, h.IsCapture())
	assert.Equal(t, NewKing(ColorLight), b.Piece(position.New(0, 1)))
	assert.Equal(t, "10-01", h.String())

	h2 := b.ApplyHop(0, chain("66", "77"))
	assert.Equal(t, NewKing(ColorDark), b.Piece(position.New(7, 7)))

	// only the landing cell changed kind
	assert.Equal(t, 1, b.Count(ColorLight))
	assert.Equal(t, 1, b.Count(ColorDark))

	b.UndoHop(h2)
	b.UndoHop(h)
	assert.Equal(t, *before, *b)
}

func TestCheckChain(t *testing.T) {
	t.Parallel()

	b, err := NewBoard(WithEmpty())
	require.NoError(t, err)

	assert.NoError(t, b.CheckChain(nil, 0, 2))
	assert.NoError(t, b.CheckChain(nil, 1, 2))
	assert.NoError(t, b.CheckChain(nil, 2, 3))
	assert.ErrorIs(t, b.CheckChain(nil, 1, 3), ErrTooMuchJumps)
	assert.ErrorIs(t, b.CheckChain(nil, 0, 3), ErrTooMuchJumps)
	assert.ErrorIs(t, b.CheckChain(ErrNotDiagonal, 2, 3), ErrNotDiagonal)
}

func TestCaptureCandidates(t *testing.T) {
	t.Parallel()

	b := mustBoard(t,
		"        ",
		"  n n   ",
		"   n    ",
		"        ",
		" b      ",
		"  n     ",
		" b      ",
		"  b   b ")

	assert.ElementsMatch(t, chain("41", "61"), b.CaptureCandidates(ColorLight, position.New(7, 6)))
	assert.ElementsMatch(t, chain("41"), b.CaptureCandidates(ColorLight, position.New(6, 1)))
	assert.Equal(t, chain("63"), b.CaptureTargets(ColorLight, position.New(4, 1)))
	assert.Empty(t, b.CaptureTargets(ColorLight, position.New(7, 6)))

	king := mustBoard(t,
		"        ",
		"        ",
		"        ",
		"        ",
		"   n    ",
		"        ",
		"        ",
		"B       ")
	assert.Equal(t, chain("34", "25", "16", "07"), king.CaptureTargets(ColorLight, position.New(7, 0)))
}

func TestHasMovement(t *testing.T) {
	t.Parallel()

	b := mustBoard(t,
		"        ",
		"        ",
		"        ",
		"n       ",
		" b      ",
		"  b     ",
		"        ",
		"        ")

	assert.False(t, b.HasMovement(ColorDark, position.New(3, 0)))
	assert.True(t, b.HasMovement(ColorLight, position.New(4, 1)))
	assert.True(t, b.HasMovement(ColorLight, position.New(5, 2)))
}
