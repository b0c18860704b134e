package console

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daystram/draughts/board"
	"github.com/daystram/draughts/game"
	"github.com/daystram/draughts/position"
	"github.com/daystram/draughts/storage"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, input string, opts ...ConsoleOption) (*Interface, string) {
	t.Helper()
	var out bytes.Buffer
	i := NewInterface(append([]ConsoleOption{
		WithInput(strings.NewReader(input)),
		WithOutput(&out),
		WithGameOptions(game.WithSeed(1)),
	}, opts...)...)
	require.NoError(t, i.Run(context.Background()))
	return i, out.String()
}

func newStore(t *testing.T) *storage.Store {
	t.Helper()
	s, err := storage.NewStore(filepath.Join(t.TempDir(), "draughts.db"))
	require.NoError(t, err)
	require.NoError(t, s.InitDB(context.Background()))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRunMoves(t *testing.T) {
	t.Parallel()

	i, out := run(t, "move 50 41\n21-30\nquit\n50-41\n")

	assert.Contains(t, out, "1. Light 50-41")
	assert.Contains(t, out, "2. Dark 21-30")
	assert.Equal(t, board.ColorLight, i.Game().Turn())
	assert.Equal(t, board.ColorDark, i.Game().Color(mustPos(t, "30")))
	assert.True(t, i.Game().Board().IsEmpty(mustPos(t, "50")))
}

func TestRunRejectedMove(t *testing.T) {
	t.Parallel()

	i, out := run(t, "50-40\n50x32\nmove 5a 41\nfoo\n")

	assert.Contains(t, out, "error: not a diagonal movement")
	assert.Contains(t, out, "error: jump without capturing")
	assert.Contains(t, out, "error: invalid notation")
	assert.Contains(t, out, `error: unknown command "foo"`)
	assert.Equal(t, board.ColorLight, i.Game().Turn())
	assert.Equal(t, board.StartingLayout, i.Game().Board().Layout())
}

func TestRunCancelAndNew(t *testing.T) {
	t.Parallel()

	i, out := run(t, "cancel\n21-30\ncancel\nnew\n50-41\n")

	assert.Contains(t, out, "Light resigned")
	assert.Contains(t, out, "Dark wins")
	// nothing is played after a resignation until a new game
	assert.Equal(t, 2, strings.Count(out, "error: game is over"))
	assert.NotContains(t, out, "Dark 21-30")
	assert.Contains(t, out, "1. Light 50-41")
	assert.Equal(t, board.ColorDark, i.Game().Turn())
	assert.Equal(t, 12, i.Game().Board().Count(board.ColorLight))
}

func TestRunReportsWinner(t *testing.T) {
	t.Parallel()

	b, err := board.NewBoard(board.WithRows(
		"        ",
		"        ",
		"        ",
		"        ",
		" n      ",
		"b       ",
		"        ",
		"        "))
	require.NoError(t, err)

	i, out := run(t, "50x32\n21-30\nnew\n", WithStartingBoard(b, board.ColorLight))

	assert.Contains(t, out, "1. Light 50x32")
	assert.Contains(t, out, "Dark is blocked, Light wins")
	assert.Contains(t, out, "error: game is over")
	// new games start from the same board
	assert.Equal(t, b.Layout(), i.Game().Board().Layout())
	assert.Equal(t, board.ColorLight, i.Game().Turn())
}

func TestRunWithoutStore(t *testing.T) {
	t.Parallel()

	_, out := run(t, "save\nlist\nload 0b3a4d5e-0000-4000-8000-000000000000\nhelp\n")

	assert.Equal(t, 3, strings.Count(out, "error: no database configured"))
	assert.Contains(t, out, "capture chain")
}

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStore(t)

	i, out := run(t, "50-41\nsave\n21-30\n", WithStore(s))
	require.NotEmpty(t, i.GameID())
	assert.Contains(t, out, "saved "+i.GameID())

	moves, err := s.Moves(ctx, i.GameID())
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, 2, moves[0].MoveNumber)
	assert.Equal(t, "21-30", moves[0].Notation)
	assert.Equal(t, "d", moves[0].PlayerColor)

	resumed := NewInterface(WithStore(s), WithOutput(&bytes.Buffer{}))
	require.NoError(t, resumed.Load(ctx, i.GameID()))
	assert.Equal(t, *i.Game().Board(), *resumed.Game().Board())
	assert.Equal(t, board.ColorLight, resumed.Game().Turn())

	_, out = run(t, "list\n", WithStore(s))
	assert.Contains(t, out, i.GameID())

	_, out = run(t, "load "+storage.NewGameID()+"\nload\n", WithStore(s))
	assert.Contains(t, out, "error: game not found")
	assert.Contains(t, out, "error: usage: load <id>")
}

func TestContinueAfterLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStore(t)

	first, out := run(t, "50-41\n21-30\nsave\n61-50\n", WithStore(s))
	assert.Contains(t, out, "3. Light 61-50")
	id := first.GameID()

	resumed, out := run(t, "load "+id+"\n23-34\n72-61\n", WithStore(s))
	assert.NotContains(t, out, "error:")
	assert.Contains(t, out, "4. Dark 23-34")
	assert.Contains(t, out, "5. Light 72-61")

	moves, err := s.Moves(ctx, id)
	require.NoError(t, err)
	require.Len(t, moves, 3)
	for n, want := range []string{"61-50", "23-34", "72-61"} {
		assert.Equal(t, n+3, moves[n].MoveNumber)
		assert.Equal(t, want, moves[n].Notation)
	}

	stored, err := s.LoadGame(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, resumed.Game().Board().Layout(), stored.Layout)
	assert.Equal(t, "d", stored.Turn)
	assert.Equal(t, moves[2].LayoutAfterMove, stored.Layout)
}

func TestSnapshotSavedWhenHistoryFails(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStore(t)

	first, _ := run(t, "save\n", WithStore(s))
	id := first.GameID()

	var out bytes.Buffer
	i := NewInterface(WithStore(s), WithOutput(&out), WithGameOptions(game.WithSeed(1)))
	require.NoError(t, i.Load(ctx, id))

	// take the next move number so the history insert collides
	require.NoError(t, s.RecordMove(ctx, storage.MoveRecord{
		GameID:          id,
		MoveNumber:      1,
		Notation:        "52-43",
		PlayerColor:     "l",
		LayoutAfterMove: board.StartingLayout,
	}))

	require.True(t, i.Execute(ctx, "50-41"))
	assert.Contains(t, out.String(), "error: failed to record move 1")

	stored, err := s.LoadGame(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, i.Game().Board().Layout(), stored.Layout)
	assert.Equal(t, "d", stored.Turn)
}

func TestResignedGameStaysOverAfterLoad(t *testing.T) {
	t.Parallel()
	s := newStore(t)

	first, _ := run(t, "save\ncancel\n", WithStore(s))

	i, out := run(t, "load "+first.GameID()+"\n21-30\n", WithStore(s))
	assert.Contains(t, out, "error: game is over")
	assert.Equal(t, 0, i.Game().Board().Count(board.ColorLight))
	assert.Equal(t, board.ColorDark, i.Game().Turn())
}

func mustPos(t *testing.T, n string) position.Pos {
	t.Helper()
	p, err := position.NewPosFromNotation(n)
	require.NoError(t, err)
	return p
}
