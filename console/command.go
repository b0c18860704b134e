package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/daystram/draughts/board"
	"github.com/daystram/draughts/game"
	"github.com/daystram/draughts/position"
	"github.com/daystram/draughts/storage"
)

var errNoStore = errors.New("no database configured")

const helpText = `commands:
  move 50 41      move a piece, also written 50-41
  50x32x14        capture chain
  cancel          resign for the side to move
  d, draw         show the board
  new             start a new game
  save            store the game and record its moves from now on
  load <id>       resume a stored game
  list            list stored games
  help            show this text
  quit            leave`

// Execute runs a single command line. It returns false once the user asks to
// quit.
func (i *Interface) Execute(ctx context.Context, line string) bool {
	args := strings.Fields(line)
	if len(args) == 0 {
		return true
	}

	switch args[0] {
	case "move", "m":
		i.commandMove(ctx, strings.Join(args[1:], " "))
	case "cancel":
		i.commandCancel(ctx)
	case "draw", "d":
		i.commandDraw(ctx)
	case "new":
		i.commandNew(ctx)
	case "save":
		i.commandSave(ctx)
	case "load":
		if len(args) != 2 {
			i.errorf("usage: load <id>")
			return true
		}
		if err := i.Load(ctx, args[1]); err != nil {
			i.errorf("%v", err)
			return true
		}
		i.println(infoColor.Sprintf("loaded %s", i.gameID))
		i.commandDraw(ctx)
	case "list":
		i.commandList(ctx)
	case "help", "?":
		i.println(helpText)
	case "quit", "exit", "q":
		return false
	default:
		if c := args[0][0]; c >= '0' && c <= '9' {
			i.commandMove(ctx, strings.Join(args, " "))
			return true
		}
		i.errorf("unknown command %q", args[0])
	}
	return true
}

func (i *Interface) commandMove(ctx context.Context, notation string) {
	if i.isOver() {
		i.errorf("game is over, start a new one")
		return
	}
	chain, err := position.ParseChain(notation)
	if err != nil {
		i.errorf("%v", err)
		return
	}
	if err := i.game.Move(chain...); err != nil {
		i.errorf("%v", err)
		return
	}

	rec := i.game.LastMove()
	i.moveNumber++
	i.println(fmt.Sprintf("%d. %s %s", i.moveNumber, rec.Color, rec))
	if rec.Penalized.IsValid() {
		i.println(infoColor.Sprintf("%s did not capture and lost the piece on %s", rec.Color, rec.Penalized))
	}
	if err := i.recordMove(ctx, rec); err != nil {
		i.errorf("%v", err)
	}
	i.reportState()
}

func (i *Interface) commandCancel(ctx context.Context) {
	if i.isOver() {
		i.errorf("game is over, start a new one")
		return
	}
	loser := i.game.Turn()
	i.game.Cancel()
	i.resigned = true
	i.println(infoColor.Sprintf("%s resigned", loser))
	if err := i.persist(ctx); err != nil {
		i.errorf("%v", err)
	}
	i.println(winColor.Sprintf("%s wins", loser.Opposite()))
}

func (i *Interface) commandDraw(_ context.Context) {
	i.println(i.game.Draw())
}

func (i *Interface) commandNew(ctx context.Context) {
	i.game = i.newGame()
	i.gameID = ""
	i.moveNumber = 0
	i.resigned = false
	i.log.Debug().Msg("new game")
	i.commandDraw(ctx)
}

func (i *Interface) commandSave(ctx context.Context) {
	if i.store == nil {
		i.errorf("%v", errNoStore)
		return
	}
	if i.gameID == "" {
		i.gameID = storage.NewGameID()
	}
	if err := i.persist(ctx); err != nil {
		i.errorf("%v", err)
		return
	}
	i.println(infoColor.Sprintf("saved %s", i.gameID))
}

func (i *Interface) commandList(ctx context.Context) {
	if i.store == nil {
		i.errorf("%v", errNoStore)
		return
	}
	games, err := i.store.ListGames(ctx)
	if err != nil {
		i.errorf("%v", err)
		return
	}
	if len(games) == 0 {
		i.println("no stored games")
		return
	}
	for _, g := range games {
		turn, _ := board.ParseColor(g.Turn)
		i.println(fmt.Sprintf("%s  %-5s  %s", g.GameID, turn, g.UpdatedAt.Format("2006-01-02 15:04")))
	}
}

// Load replaces the current game with a stored one.
func (i *Interface) Load(ctx context.Context, gameID string) error {
	if i.store == nil {
		return errNoStore
	}
	rec, err := i.store.LoadGame(ctx, gameID)
	if err != nil {
		return err
	}
	snap, err := game.ParseSnapshot(rec.Layout + " " + rec.Turn)
	if err != nil {
		return err
	}
	g, err := game.Restore(snap, i.gameOpts...)
	if err != nil {
		return err
	}
	moves, err := i.store.Moves(ctx, gameID)
	if err != nil {
		return err
	}

	i.game = g
	i.gameID = rec.GameID
	// moves before the first save are not stored; numbering continues from
	// the last stored one
	i.moveNumber = 0
	if len(moves) > 0 {
		i.moveNumber = moves[len(moves)-1].MoveNumber
	}
	// a resigned game is stored with the loser's pieces removed
	i.resigned = g.Board().Count(g.Turn().Opposite()) == 0
	i.log.Debug().Str("game", i.gameID).Int("moves", i.moveNumber).Msg("game loaded")
	return nil
}

// isOver reports whether the current game refuses further moves.
func (i *Interface) isOver() bool {
	return i.resigned || !i.game.State().IsRunning()
}

func (i *Interface) reportState() {
	st := i.game.State()
	if st.IsRunning() {
		return
	}
	winner := st.Winner()
	i.println(winColor.Sprintf("%s is blocked, %s wins", winner.Opposite(), winner))
}

// persist stores the current snapshot if the game has been saved.
func (i *Interface) persist(ctx context.Context) error {
	if i.gameID == "" {
		return nil
	}
	if i.store == nil {
		return errNoStore
	}
	snap := i.game.Snapshot()
	_, err := i.store.SaveGame(ctx, storage.GameRecord{
		GameID: i.gameID,
		Layout: snap.Layout,
		Turn:   snap.Turn.Notation(),
	})
	return err
}

func (i *Interface) recordMove(ctx context.Context, rec *game.Record) error {
	if i.gameID == "" || i.store == nil {
		return nil
	}
	var penalized string
	if rec.Penalized.IsValid() {
		penalized = rec.Penalized.Notation()
	}
	recordErr := i.store.RecordMove(ctx, storage.MoveRecord{
		GameID:          i.gameID,
		MoveNumber:      i.moveNumber,
		Notation:        rec.Notation(),
		Penalized:       penalized,
		PlayerColor:     rec.Color.Notation(),
		LayoutAfterMove: i.game.Board().Layout(),
	})
	// the snapshot is saved even when the history entry is lost
	return errors.Join(recordErr, i.persist(ctx))
}
