package court

import (
	"fmt"
	"log"
	"time"

	"royal-court/bot"
	"royal-court/court"
	"royal-court/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleChronicle shows one soul's full judgment history, newest first,
// capped for display by the history aggregator.
func HandleChronicle(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}
	opts := optionMap(i)
	target := opts["member"].UserValue(s)

	records, err := b.Court.Chronicle(parseSnowflake(target.ID))
	if err != nil {
		replyCourtError(s, i, b, err)
		return
	}

	targetMember, _ := fetchMember(s, i.GuildID, target.ID)
	name := displayName(targetMember, target)

	if len(records) == 0 {
		utils.EditResponseEmbed(s, i.Interaction,
			utils.CourtResponse(b.Flavor.Prefix(),
				fmt.Sprintf("%s beareth no recorded misdeeds. A soul of pure virtue!", name), true))
		return
	}

	view := court.BuildHistoryView(records, time.Now().UTC())

	embed := utils.CourtEmbed(
		fmt.Sprintf("📜  Chronicle of %s", name),
		fmt.Sprintf("**Recorded Transgressions:** %d\n*Most recent judgments first:*", view.Total),
		"dark_gold")
	for _, entry := range view.Entries {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s %s • %s", entry.Icon, entry.Label, entry.Age),
			Value:  fmt.Sprintf("**Judgment:** %s", entry.Reason),
			Inline: false,
		})
	}

	footer := "Minor infractions only."
	if view.Total > 5 {
		footer = "A troublesome soul indeed!"
	}
	if more := view.MoreSummary(); more != "" {
		footer = more
	}
	embed.Footer = &discordgo.MessageEmbedFooter{Text: footer}

	utils.EditResponseEmbed(s, i.Interaction, embed)
}

// HandleCourtLog shows the most recent judgments across the whole realm.
func HandleCourtLog(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}
	opts := optionMap(i)
	limit := intOption(opts, "limit", 10)

	records, err := b.Court.CourtLog(limit)
	if err != nil {
		replyCourtError(s, i, b, err)
		return
	}

	if len(records) == 0 {
		utils.EditResponseEmbed(s, i.Interaction,
			utils.CourtResponse(b.Flavor.Prefix(), "No judgments have been recorded in the royal chronicles!", true))
		return
	}

	embed := utils.CourtEmbed("⚖️  Recent Royal Judgments",
		fmt.Sprintf("**Last %d judgments in the realm:**", len(records)), "blue")
	for _, rec := range records {
		reason := rec.Reason
		if len(reason) > 100 {
			reason = reason[:100] + "..."
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("%s %s", court.KindIcon(rec.Kind), memberDisplayName(s, i.GuildID, rec.SubjectID)),
			Value: fmt.Sprintf("**Action:** %s\n**By:** %s\n**Reason:** %s\n**When:** <t:%d:R>",
				court.KindLabel(rec.Kind), memberDisplayName(s, i.GuildID, rec.ActorID), reason, rec.CreatedAt.Unix()),
			Inline: false,
		})
	}
	embed.Footer = &discordgo.MessageEmbedFooter{Text: "The Royal Court"}

	utils.EditResponseEmbed(s, i.Interaction, embed)
}
