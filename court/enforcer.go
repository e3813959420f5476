package court

import (
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
)

// DiscordEnforcer implements Enforcer over a live discordgo session.
type DiscordEnforcer struct {
	Session *discordgo.Session
}

func (e *DiscordEnforcer) Ban(guildID, userID int64, reason string) error {
	return e.Session.GuildBanCreateWithReason(snowflake(guildID), snowflake(userID), reason, 0)
}

func (e *DiscordEnforcer) Kick(guildID, userID int64, reason string) error {
	return e.Session.GuildMemberDeleteWithReason(snowflake(guildID), snowflake(userID), reason)
}

func (e *DiscordEnforcer) Timeout(guildID, userID int64, until time.Time, reason string) error {
	return e.Session.GuildMemberTimeout(snowflake(guildID), snowflake(userID), &until)
}

// ClearTimeout lifts a timeout by sending a nil end time.
func (e *DiscordEnforcer) ClearTimeout(guildID, userID int64, reason string) error {
	return e.Session.GuildMemberTimeout(snowflake(guildID), snowflake(userID), nil)
}

func snowflake(id int64) string {
	return strconv.FormatInt(id, 10)
}
