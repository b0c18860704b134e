package storage

import "time"

// GameRecord is a row in the games table: the latest snapshot of a game.
type GameRecord struct {
	GameID    string    `db:"game_id" validate:"required,uuid"`
	Layout    string    `db:"layout" validate:"required"`
	Turn      string    `db:"turn" validate:"required,oneof=l d"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// MoveRecord is a row in the moves table.
type MoveRecord struct {
	MoveID          int64     `db:"move_id"`
	GameID          string    `db:"game_id" validate:"required,uuid"`
	MoveNumber      int       `db:"move_number" validate:"min=1"`
	Notation        string    `db:"notation" validate:"required,min=5"`
	Penalized       string    `db:"penalized" validate:"omitempty,numeric,len=2"`
	PlayerColor     string    `db:"player_color" validate:"required,oneof=l d"`
	LayoutAfterMove string    `db:"layout_after_move" validate:"required"`
	MoveTimeUTC     time.Time `db:"move_time_utc"`
}

const Schema = `
CREATE TABLE IF NOT EXISTS games (
	game_id TEXT PRIMARY KEY,
	layout TEXT NOT NULL,
	turn TEXT NOT NULL CHECK(turn IN ('l', 'd')),
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS moves (
	move_id INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id TEXT NOT NULL,
	move_number INTEGER NOT NULL,
	notation TEXT NOT NULL,
	penalized TEXT NOT NULL DEFAULT '',
	player_color TEXT NOT NULL CHECK(player_color IN ('l', 'd')),
	layout_after_move TEXT NOT NULL,
	move_time_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (game_id) REFERENCES games(game_id) ON DELETE CASCADE,
	UNIQUE(game_id, move_number)
);

CREATE INDEX IF NOT EXISTS idx_moves_game_id ON moves(game_id);
CREATE INDEX IF NOT EXISTS idx_games_updated_at ON games(updated_at);
`
