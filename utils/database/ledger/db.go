package ledger

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Store is the append-only sanction ledger backed by the 'punishments'
// table. There are deliberately no update or delete operations.
type Store struct {
	db *sqlx.DB
}

// New ensures the punishments table exists and returns the store.
func New(db *sqlx.DB) (*Store, error) {
	schema := `CREATE TABLE IF NOT EXISTS punishments (
	          id INTEGER PRIMARY KEY AUTOINCREMENT,
	          subject_id INTEGER NOT NULL,
	          actor_id INTEGER NOT NULL,
	          kind TEXT NOT NULL,
	          reason TEXT NOT NULL,
	          created_at TEXT NOT NULL
	      );`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create punishments table: %w", err)
	}
	return &Store{db: db}, nil
}
