package guildconfig

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Store holds per-guild announcement channel pointers, one row per guild.
type Store struct {
	db *sqlx.DB
}

// New ensures the guild_config table exists and returns the store.
func New(db *sqlx.DB) (*Store, error) {
	schema := `CREATE TABLE IF NOT EXISTS guild_config (
	          guild_id INTEGER NOT NULL PRIMARY KEY,
	          pillory_channel INTEGER,
	          decree_channel INTEGER
	      );`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create guild_config table: %w", err)
	}
	return &Store{db: db}, nil
}
