package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/daystram/draughts/board"
	"github.com/daystram/draughts/console"
	"github.com/daystram/draughts/game"
	"github.com/daystram/draughts/storage"
)

const (
	exitOK = iota
	exitErr
)

var (
	seed    = flag.Uint64("seed", 0, "seed for the capture penalty, 0 picks one from the clock")
	dbPath  = flag.String("db", "", "sqlite database file for save, load and list")
	resume  = flag.String("resume", "", "id of a stored game to resume, requires -db")
	layout  = flag.String("layout", "", "starting layout, rows from the top separated by '/'")
	turn    = flag.String("turn", "l", "side to move first on a custom layout, l or d")
	history = flag.String("history", "", "file keeping command history")
	verbose = flag.Bool("v", false, "log debug events")
	noColor = flag.Bool("nocolor", false, "disable colored output")
)

func main() {
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly, NoColor: *noColor})
	color.NoColor = color.NoColor || *noColor

	if err := realMain(); err != nil {
		log.Error().Err(err).Msg("draughts stopped")
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	gameOpts := []game.GameOption{game.WithLogger(log.Logger)}
	if *seed != 0 {
		gameOpts = append(gameOpts, game.WithSeed(*seed))
	}

	consoleOpts := []console.ConsoleOption{
		console.WithLogger(log.Logger),
		console.WithHistoryFile(*history),
	}
	if *dbPath != "" {
		store, err := storage.NewStore(*dbPath, storage.WithLogger(log.Logger))
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.InitDB(ctx); err != nil {
			return err
		}
		consoleOpts = append(consoleOpts, console.WithStore(store))
		log.Debug().Str("db", *dbPath).Msg("storage ready")
	}

	consoleOpts = append(consoleOpts, console.WithGameOptions(gameOpts...))
	if *layout != "" {
		snap, err := game.ParseSnapshot(*layout + " " + *turn)
		if err != nil {
			return err
		}
		b, err := board.NewBoard(board.WithLayout(snap.Layout))
		if err != nil {
			return err
		}
		consoleOpts = append(consoleOpts, console.WithStartingBoard(b, snap.Turn))
	}

	i := console.NewInterface(consoleOpts...)
	if *resume != "" {
		if err := i.Load(ctx, *resume); err != nil {
			return err
		}
	}
	return i.Run(ctx)
}
