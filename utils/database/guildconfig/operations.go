package guildconfig

import (
	"database/sql"
	"errors"
	"fmt"
)

// The upserts below update only their own column so that setting one
// channel never clobbers the other one stored in the same row.

// SetPilloryChannel upserts the pillory announcement channel for a guild.
func (s *Store) SetPilloryChannel(guildID, channelID int64) error {
	query := `INSERT INTO guild_config (guild_id, pillory_channel)
		VALUES (?, ?)
		ON CONFLICT(guild_id) DO UPDATE SET
			pillory_channel = excluded.pillory_channel;`
	if _, err := s.db.Exec(query, guildID, channelID); err != nil {
		return fmt.Errorf("failed to set pillory channel for guild %d: %w", guildID, err)
	}
	return nil
}

// PilloryChannel returns the configured pillory channel for a guild.
// ok is false when the guild has no configured channel.
func (s *Store) PilloryChannel(guildID int64) (int64, bool, error) {
	return s.channel(guildID, "pillory_channel")
}

// SetDecreeChannel upserts the decree proclamation channel for a guild.
func (s *Store) SetDecreeChannel(guildID, channelID int64) error {
	query := `INSERT INTO guild_config (guild_id, decree_channel)
		VALUES (?, ?)
		ON CONFLICT(guild_id) DO UPDATE SET
			decree_channel = excluded.decree_channel;`
	if _, err := s.db.Exec(query, guildID, channelID); err != nil {
		return fmt.Errorf("failed to set decree channel for guild %d: %w", guildID, err)
	}
	return nil
}

// DecreeChannel returns the configured decree channel for a guild.
func (s *Store) DecreeChannel(guildID int64) (int64, bool, error) {
	return s.channel(guildID, "decree_channel")
}

func (s *Store) channel(guildID int64, column string) (int64, bool, error) {
	var id sql.NullInt64
	query := fmt.Sprintf("SELECT %s FROM guild_config WHERE guild_id = ?", column)
	err := s.db.Get(&id, query, guildID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get %s for guild %d: %w", column, guildID, err)
	}
	if !id.Valid {
		return 0, false, nil
	}
	return id.Int64, true, nil
}
