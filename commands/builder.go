package commands

import (
	"royal-court/commands/defs"

	"github.com/bwmarrin/discordgo"
)

// GenerateCommands returns every slash command the court registers. The
// set is static; registration bulk-overwrites whatever Discord has.
func GenerateCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		defs.Banish,
		defs.CastOut,
		defs.Pillory,
		defs.Stocks,
		defs.Pardon,
		defs.Summon,
		defs.Purge,
		defs.Chronicle,
		defs.CourtLog,
		defs.Decree,
		defs.SetPillory,
		defs.SetDecree,
		defs.Help,
		defs.CourtStatus,
	}
}
