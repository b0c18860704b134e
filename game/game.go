package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/daystram/draughts/board"
	"github.com/daystram/draughts/position"
)

// Rand picks the piece removed by the mandatory capture penalty.
type Rand interface {
	Intn(n int) int
}

type gameConfig struct {
	board  *board.Board
	turn   board.Color
	rand   Rand
	seed   uint64
	logger zerolog.Logger
}

type GameOption func(*gameConfig)

// WithBoard starts the game from b instead of the standard starting board.
func WithBoard(b *board.Board) GameOption {
	return func(cfg *gameConfig) {
		cfg.board = b
	}
}

// WithTurn sets the side to move first, on the starting board or on the one
// given by WithBoard.
func WithTurn(c board.Color) GameOption {
	return func(cfg *gameConfig) {
		cfg.turn = c
	}
}

// WithSeed seeds the default penalty generator. Equal seeds replay equal
// penalties.
func WithSeed(seed uint64) GameOption {
	return func(cfg *gameConfig) {
		cfg.seed = seed
	}
}

// WithRand replaces the penalty generator.
func WithRand(r Rand) GameOption {
	return func(cfg *gameConfig) {
		cfg.rand = r
	}
}

func WithLogger(l zerolog.Logger) GameOption {
	return func(cfg *gameConfig) {
		cfg.logger = l
	}
}

// Game is a single draughts game. It is not safe for concurrent use.
type Game struct {
	board *board.Board
	turn  board.Color
	rand  Rand
	log   zerolog.Logger

	last *Record
}

func NewGame(opts ...GameOption) *Game {
	cfg := &gameConfig{
		turn:   board.ColorLight,
		seed:   uint64(time.Now().UnixNano()),
		logger: zerolog.Nop(),
	}
	for _, f := range opts {
		f(cfg)
	}
	if cfg.rand == nil {
		cfg.rand = rand.New(rand.NewSource(cfg.seed))
	}

	g := &Game{
		board: cfg.board,
		turn:  cfg.turn,
		rand:  cfg.rand,
		log:   cfg.logger,
	}
	if g.board == nil {
		g.board, _ = board.NewBoard(board.WithEmpty())
		g.Reset()
		g.turn = cfg.turn
	}
	return g
}

// Reset puts every man on its starting cell and gives the turn to Light.
func (g *Game) Reset() {
	g.board.Reset()
	g.turn = board.ColorLight
	g.last = nil
}

// Move plays a chain of positions for the side to move: a simple step, a
// single capture or a multi-capture. A rejected move leaves the game exactly
// as it was.
func (g *Game) Move(chain ...position.Pos) error {
	if len(chain) < 2 {
		return fmt.Errorf("%w: got %d positions", board.ErrBadFormat, len(chain))
	}
	for i, p := range chain {
		if !p.IsValid() {
			return fmt.Errorf("%w: position %d", board.ErrOutCoordinate, i+1)
		}
	}

	candidates := g.board.CaptureCandidates(g.turn, chain[0])

	var (
		j   journal
		err error
	)
	for pair := 0; pair < len(chain)-1; pair++ {
		if err = g.board.CheckHop(g.turn, pair, chain); err != nil {
			err = fmt.Errorf("%w: hop %s-%s", err, chain[pair], chain[pair+1])
			break
		}
		j.record(g.board.ApplyHop(pair, chain))
	}

	if err = g.board.CheckChain(err, j.captures(), len(chain)); err != nil {
		j.undo(g.board)
		g.log.Debug().
			Str("turn", g.turn.String()).
			Str("chain", chainNotation(chain)).
			Err(err).
			Msg("move rejected")
		return err
	}

	rec := &Record{
		Color:     g.turn,
		Hops:      j,
		Penalized: position.Invalid,
	}
	if j.captures() == 0 {
		rec.Penalized = g.penalize(candidates)
	}
	g.last = rec
	g.turn = g.turn.Opposite()
	g.log.Debug().Msgf("%s played %s", rec.Color, rec)
	return nil
}

// IsBlocked reports whether the side to move has no legal step or jump left,
// which loses the game.
func (g *Game) IsBlocked() bool {
	for _, p := range g.board.Positions(g.turn) {
		if g.board.HasMovement(g.turn, p) {
			return false
		}
	}
	return true
}

// Cancel forfeits the game for the side to move: all of its pieces are taken
// off the board and the turn passes.
func (g *Game) Cancel() {
	for _, p := range g.board.Positions(g.turn) {
		g.board.Remove(p)
	}
	g.log.Debug().Msgf("%s resigned", g.turn)
	g.turn = g.turn.Opposite()
	g.last = nil
}

func (g *Game) Color(p position.Pos) board.Color {
	return g.board.Color(p)
}

func (g *Game) Piece(p position.Pos) board.Piece {
	return g.board.Piece(p)
}

func (g *Game) Turn() board.Color {
	return g.turn
}

func (g *Game) Dimension() int {
	return g.board.Dimension()
}

// Board returns a copy of the current board.
func (g *Game) Board() *board.Board {
	return g.board.Clone()
}

// LastMove returns the last accepted move, or nil.
func (g *Game) LastMove() *Record {
	return g.last
}

func (g *Game) String() string {
	return g.board.String() + "\n" + g.turn.String()
}

// Draw renders the board for a terminal followed by the side to move.
func (g *Game) Draw() string {
	return g.board.Draw() + "\n" + g.turn.String()
}

func chainNotation(chain []position.Pos) string {
	ns := make([]string, len(chain))
	for i, p := range chain {
		ns[i] = p.Notation()
	}
	return strings.Join(ns, "-")
}
