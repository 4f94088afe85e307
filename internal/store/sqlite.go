package store

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"werewolfgm/internal/game"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshot (
	id        INTEGER PRIMARY KEY CHECK (id = 1),
	phase     TEXT    NOT NULL,
	round     INTEGER NOT NULL,
	active    INTEGER NOT NULL,
	taken_at  INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS snapshot_player (
	number   INTEGER NOT NULL,
	name     TEXT    NOT NULL,
	role     TEXT    NOT NULL,
	alive    INTEGER NOT NULL,
	position INTEGER NOT NULL
);
`

// SQLiteStore persists the snapshot in a local SQLite file, so a game
// survives a process restart.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed creates) the snapshot database at path
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// SaveSnapshot replaces the stored snapshot in a single transaction
func (s *SQLiteStore) SaveSnapshot(snap game.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM snapshot`); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM snapshot_player`); err != nil {
		return fmt.Errorf("clear players: %w", err)
	}

	active := 0
	if snap.Active {
		active = 1
	}
	_, err = tx.Exec(
		`INSERT INTO snapshot (id, phase, round, active, taken_at) VALUES (1, ?, ?, ?, ?)`,
		string(snap.Phase), snap.Round, active, snap.TakenAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	for i, p := range snap.Players {
		alive := 0
		if p.Alive {
			alive = 1
		}
		_, err = tx.Exec(
			`INSERT INTO snapshot_player (number, name, role, alive, position) VALUES (?, ?, ?, ?, ?)`,
			p.Number, p.Name, string(p.Role), alive, i,
		)
		if err != nil {
			return fmt.Errorf("insert player %s: %w", p.Name, err)
		}
	}

	return tx.Commit()
}

// LoadSnapshot reads back the stored snapshot, or ErrNoSnapshot
func (s *SQLiteStore) LoadSnapshot() (game.Snapshot, error) {
	var (
		phase   string
		round   int
		active  int
		takenAt int64
	)
	err := s.db.QueryRow(`SELECT phase, round, active, taken_at FROM snapshot WHERE id = 1`).
		Scan(&phase, &round, &active, &takenAt)
	if err == sql.ErrNoRows {
		return game.Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}

	rows, err := s.db.Query(`SELECT number, name, role, alive FROM snapshot_player ORDER BY position`)
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("read players: %w", err)
	}
	defer rows.Close()

	var players []game.PlayerSnapshot
	for rows.Next() {
		var (
			p     game.PlayerSnapshot
			role  string
			alive int
		)
		if err := rows.Scan(&p.Number, &p.Name, &role, &alive); err != nil {
			return game.Snapshot{}, fmt.Errorf("scan player: %w", err)
		}
		p.Role = game.Role(role)
		p.Alive = alive != 0
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return game.Snapshot{}, fmt.Errorf("iterate players: %w", err)
	}

	return game.Snapshot{
		Phase:   game.Phase(phase),
		Round:   round,
		Active:  active != 0,
		Players: players,
		TakenAt: time.UnixMilli(takenAt).UTC(),
	}, nil
}

// Close closes the database handle
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
