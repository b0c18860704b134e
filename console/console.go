package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/daystram/draughts/board"
	"github.com/daystram/draughts/game"
	"github.com/daystram/draughts/storage"
)

var (
	infoColor  = color.New(color.FgCyan)
	errorColor = color.New(color.FgRed)
	winColor   = color.New(color.FgGreen, color.Bold)
)

type consoleConfig struct {
	in       io.Reader
	out      io.Writer
	store    *storage.Store
	gameOpts []game.GameOption
	logger   zerolog.Logger
	history  string

	start     *board.Board
	startTurn board.Color
}

type ConsoleOption func(*consoleConfig)

func WithInput(r io.Reader) ConsoleOption {
	return func(cfg *consoleConfig) {
		cfg.in = r
	}
}

func WithOutput(w io.Writer) ConsoleOption {
	return func(cfg *consoleConfig) {
		cfg.out = w
	}
}

// WithStore enables save, load and list. Moves of a saved game are recorded
// as they are played.
func WithStore(s *storage.Store) ConsoleOption {
	return func(cfg *consoleConfig) {
		cfg.store = s
	}
}

// WithStartingBoard makes every new game start from a copy of b with turn to
// move.
func WithStartingBoard(b *board.Board, turn board.Color) ConsoleOption {
	return func(cfg *consoleConfig) {
		cfg.start = b
		cfg.startTurn = turn
	}
}

// WithGameOptions is applied to every game the console creates or restores.
func WithGameOptions(opts ...game.GameOption) ConsoleOption {
	return func(cfg *consoleConfig) {
		cfg.gameOpts = append(cfg.gameOpts, opts...)
	}
}

func WithLogger(l zerolog.Logger) ConsoleOption {
	return func(cfg *consoleConfig) {
		cfg.logger = l
	}
}

// WithHistoryFile keeps line history across sessions on a terminal.
func WithHistoryFile(path string) ConsoleOption {
	return func(cfg *consoleConfig) {
		cfg.history = path
	}
}

// Interface drives a two player game from text commands.
type Interface struct {
	game     *game.Game
	gameOpts []game.GameOption
	store    *storage.Store
	log      zerolog.Logger

	start     *board.Board
	startTurn board.Color

	// gameID is set once the game has been saved
	gameID     string
	moveNumber int
	resigned   bool

	in      io.Reader
	out     io.Writer
	history string
}

func NewInterface(opts ...ConsoleOption) *Interface {
	cfg := &consoleConfig{
		in:     os.Stdin,
		out:    os.Stdout,
		logger: zerolog.Nop(),
	}
	for _, f := range opts {
		f(cfg)
	}
	i := &Interface{
		gameOpts:  cfg.gameOpts,
		store:     cfg.store,
		log:       cfg.logger,
		start:     cfg.start,
		startTurn: cfg.startTurn,
		in:        cfg.in,
		out:       cfg.out,
		history:   cfg.history,
	}
	i.game = i.newGame()
	return i
}

func (i *Interface) newGame() *game.Game {
	if i.start == nil {
		return game.NewGame(i.gameOpts...)
	}
	opts := append([]game.GameOption{}, i.gameOpts...)
	return game.NewGame(append(opts, game.WithBoard(i.start.Clone()), game.WithTurn(i.startTurn))...)
}

// Game returns the game being played.
func (i *Interface) Game() *game.Game {
	return i.game
}

// GameID returns the storage id of the current game, or "" if unsaved.
func (i *Interface) GameID() string {
	return i.gameID
}

// Run reads commands until quit or end of input.
func (i *Interface) Run(ctx context.Context) error {
	reader, err := i.newLineReader()
	if err != nil {
		return err
	}
	defer reader.Close()

	i.commandDraw(ctx)
	i.println(infoColor.Sprint("type 'help' for commands"))
	for {
		reader.SetPrompt(i.prompt())
		line, err := reader.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		}
		if err != nil {
			return err
		}
		if !i.Execute(ctx, line) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

func (i *Interface) prompt() string {
	if i.gameID != "" {
		return fmt.Sprintf("draughts [%s] %s> ", i.gameID[:8], i.game.Turn())
	}
	return fmt.Sprintf("draughts %s> ", i.game.Turn())
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}

func (i *Interface) errorf(format string, a ...any) {
	i.println(errorColor.Sprintf("error: "+format, a...))
}

type lineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
	Close() error
}

// newLineReader uses readline when attached to a terminal and plain line
// scanning otherwise.
func (i *Interface) newLineReader() (lineReader, error) {
	if f, ok := i.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          i.prompt(),
			HistoryFile:     i.history,
			InterruptPrompt: "^C",
			EOFPrompt:       "quit",
			Stdin:           f,
			Stdout:          i.out,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to start line editor: %w", err)
		}
		return rl, nil
	}
	return &scanReader{scanner: bufio.NewScanner(i.in)}, nil
}

type scanReader struct {
	scanner *bufio.Scanner
}

func (r *scanReader) SetPrompt(string) {}

func (r *scanReader) Readline() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.scanner.Text()), nil
}

func (r *scanReader) Close() error {
	return nil
}
