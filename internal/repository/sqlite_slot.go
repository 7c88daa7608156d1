package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS state_slots (
	key     TEXT PRIMARY KEY,
	payload TEXT NOT NULL
)`

// SQLiteSlot implements StateSlot on a single-row SQLite table. Each slot is
// identified by its key; this application only ever uses one.
type SQLiteSlot struct {
	db  *sqlx.DB
	key string
}

// NewSQLiteSlot creates the backing table if needed and returns a slot bound
// to the given key.
func NewSQLiteSlot(db *sqlx.DB, key string) (*SQLiteSlot, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &SQLiteSlot{db: db, key: key}, nil
}

// GetDB returns the underlying database connection
func (s *SQLiteSlot) GetDB() *sqlx.DB {
	return s.db
}

func (s *SQLiteSlot) Load(ctx context.Context) ([]byte, error) {
	var payload string
	err := s.db.GetContext(ctx, &payload, `SELECT payload FROM state_slots WHERE key = ?`, s.key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, err
	}
	return []byte(payload), nil
}

func (s *SQLiteSlot) Save(ctx context.Context, payload []byte) error {
	query := `
		INSERT INTO state_slots (key, payload) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET payload = excluded.payload
	`
	_, err := s.db.ExecContext(ctx, query, s.key, string(payload))
	return err
}
