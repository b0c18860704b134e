package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

var (
	ErrGameNotFound  = errors.New("game not found")
	ErrInvalidRecord = errors.New("invalid record")
)

var validate = validator.New()

type storeConfig struct {
	logger zerolog.Logger
}

type StoreOption func(*storeConfig)

func WithLogger(l zerolog.Logger) StoreOption {
	return func(cfg *storeConfig) {
		cfg.logger = l
	}
}

// Store keeps game snapshots and move history in SQLite. Writes are
// synchronous, one transaction each.
type Store struct {
	db   *sql.DB
	path string
	log  zerolog.Logger
}

func NewStore(dataSourceName string, opts ...StoreOption) (*Store, error) {
	cfg := &storeConfig{
		logger: zerolog.Nop(),
	}
	for _, f := range opts {
		f(cfg)
	}

	// foreign keys are a per connection setting
	dsn := dataSourceName
	if !strings.Contains(dsn, "?") {
		dsn += "?_foreign_keys=on"
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// a single writer keeps sqlite from reporting busy
	db.SetMaxOpenConns(1)

	return &Store{
		db:   db,
		path: dataSourceName,
		log:  cfg.logger,
	}, nil
}

// InitDB creates the database schema.
func (s *Store) InitDB(ctx context.Context) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, Schema); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
		return nil
	})
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// DeleteDB closes the store and removes the database file.
func (s *Store) DeleteDB() error {
	if err := s.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete database file: %w", err)
	}
	return nil
}

// NewGameID returns a fresh game identifier.
func NewGameID() string {
	return uuid.New().String()
}

// SaveGame inserts or updates the snapshot of a game. An empty GameID is
// filled with a new one. The stored record is returned.
func (s *Store) SaveGame(ctx context.Context, rec GameRecord) (GameRecord, error) {
	now := time.Now().UTC()
	if rec.GameID == "" {
		rec.GameID = NewGameID()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
	if err := validateRecord(rec); err != nil {
		return GameRecord{}, err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		query := `INSERT INTO games (game_id, layout, turn, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(game_id) DO UPDATE SET
			layout = excluded.layout,
			turn = excluded.turn,
			updated_at = excluded.updated_at`
		_, err := tx.ExecContext(ctx, query,
			rec.GameID, rec.Layout, rec.Turn, rec.CreatedAt, rec.UpdatedAt,
		)
		return err
	})
	if err != nil {
		return GameRecord{}, fmt.Errorf("failed to save game %s: %w", rec.GameID, err)
	}
	s.log.Debug().Str("game", rec.GameID).Msg("game saved")
	return rec, nil
}

func (s *Store) LoadGame(ctx context.Context, gameID string) (GameRecord, error) {
	if _, err := uuid.Parse(gameID); err != nil {
		return GameRecord{}, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	var g GameRecord
	err := s.db.QueryRowContext(ctx,
		`SELECT game_id, layout, turn, created_at, updated_at FROM games WHERE game_id = ?`,
		gameID,
	).Scan(&g.GameID, &g.Layout, &g.Turn, &g.CreatedAt, &g.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GameRecord{}, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	if err != nil {
		return GameRecord{}, fmt.Errorf("query failed: %w", err)
	}
	return g, nil
}

// ListGames returns all stored games, most recently updated first.
func (s *Store) ListGames(ctx context.Context) ([]GameRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT game_id, layout, turn, created_at, updated_at FROM games ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var g GameRecord
		if err := rows.Scan(&g.GameID, &g.Layout, &g.Turn, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}
	return games, nil
}

// RecordMove appends a move to the history of a stored game.
func (s *Store) RecordMove(ctx context.Context, rec MoveRecord) error {
	if rec.MoveTimeUTC.IsZero() {
		rec.MoveTimeUTC = time.Now().UTC()
	}
	if err := validateRecord(rec); err != nil {
		return err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		query := `INSERT INTO moves (
			game_id, move_number, notation, penalized, player_color, layout_after_move, move_time_utc
		) VALUES (?, ?, ?, ?, ?, ?, ?)`
		_, err := tx.ExecContext(ctx, query,
			rec.GameID, rec.MoveNumber, rec.Notation, rec.Penalized,
			rec.PlayerColor, rec.LayoutAfterMove, rec.MoveTimeUTC,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to record move %d of %s: %w", rec.MoveNumber, rec.GameID, err)
	}
	return nil
}

// Moves returns the history of a game in play order.
func (s *Store) Moves(ctx context.Context, gameID string) ([]MoveRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		move_id, game_id, move_number, notation, penalized, player_color, layout_after_move, move_time_utc
	FROM moves WHERE game_id = ? ORDER BY move_number`, gameID)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		err := rows.Scan(
			&m.MoveID, &m.GameID, &m.MoveNumber, &m.Notation, &m.Penalized,
			&m.PlayerColor, &m.LayoutAfterMove, &m.MoveTimeUTC,
		)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		moves = append(moves, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}
	return moves, nil
}

func (s *Store) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func validateRecord(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	details := make([]string, 0, len(errs))
	for _, e := range errs {
		details = append(details, fmt.Sprintf("%s failed %s validation", e.Field(), e.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidRecord, strings.Join(details, "; "))
}
