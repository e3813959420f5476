package court

import (
	"fmt"
	"log"

	"royal-court/bot"
	"royal-court/utils"

	"github.com/bwmarrin/discordgo"
)

const (
	minPurgeAmount = 1
	maxPurgeAmount = 100
)

// HandlePurge bulk-deletes recent messages in the invoking channel, then
// records a self-referential audit entry for the acting moderator. Only
// the moderator sees the confirmation; the cleanse speaks for itself.
func HandlePurge(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}
	opts := optionMap(i)
	amount := intOption(opts, "amount", 10)

	if amount < minPurgeAmount || amount > maxPurgeAmount {
		utils.EditResponseEmbed(s, i.Interaction,
			utils.CourtResponse(b.Flavor.Prefix(), "Thou mayest cleanse between 1 and 100 messages only, m'lord!", false))
		return
	}

	msgs, err := s.ChannelMessages(i.ChannelID, amount, "", "", "")
	if err != nil {
		log.Printf("Failed to list messages in channel %s: %v", i.ChannelID, err)
		utils.EditResponseEmbed(s, i.Interaction,
			utils.CourtResponse(b.Flavor.Prefix(), "The royal seal hath no power to cleanse here!", false))
		return
	}
	if len(msgs) == 0 {
		utils.EditResponseEmbed(s, i.Interaction,
			utils.CourtResponse(b.Flavor.Prefix(), "No messages could be cleansed! The hall is already bare.", false))
		return
	}

	ids := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		ids = append(ids, msg.ID)
	}
	if err := s.ChannelMessagesBulkDelete(i.ChannelID, ids); err != nil {
		log.Printf("Failed to bulk delete in channel %s: %v", i.ChannelID, err)
		utils.EditResponseEmbed(s, i.Interaction,
			utils.CourtResponse(b.Flavor.Prefix(), "Messages older than a fortnight cannot be cleansed!", false))
		return
	}

	if _, err := b.Court.RecordPurge(parseSnowflake(i.Member.User.ID), len(ids)); err != nil {
		replyCourtError(s, i, b, err)
		return
	}

	desc := fmt.Sprintf("🧹  %s\n\n*By order of %s*", b.Flavor.Message("purge", len(ids)), i.Member.Mention())
	utils.EditResponseEmbed(s, i.Interaction, utils.CourtEmbed("", desc, "grey"))
}
