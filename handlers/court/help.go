package court

import (
	"log"

	"royal-court/bot"
	"royal-court/utils"

	"github.com/bwmarrin/discordgo"
)

var charter = []struct {
	name string
	desc string
}{
	{"purge", "Cleanse the hall of messages (1-100)"},
	{"banish", "Exile a soul forever from the realm"},
	{"castout", "Cast a peasant from the castle gates"},
	{"pillory", "Bind a wretch in public stocks"},
	{"stocks", "Mute a tongue with royal locks"},
	{"pardon", "Grant royal mercy to a soul"},
	{"summon", "Issue a royal summons to court"},
	{"chronicle", "Read the criminal records of a soul"},
	{"decree", "Proclaim a royal decree to a channel"},
	{"setpillory", "Set the pillory announcement hall"},
	{"setdecree", "Set the royal decree proclamation hall"},
	{"courtlog", "View all recent judgments in the realm"},
	{"court-status", "Survey the keep's machinery"},
}

func HandleHelp(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}

	embed := utils.CourtEmbed("📜  Royal Charter of Commands",
		"**Hark!** Here be the royal commands for administering the realm:\n", "gold")
	for _, cmd := range charter {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "**/" + cmd.name + "**",
			Value:  "*" + cmd.desc + "*",
			Inline: false,
		})
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "⚖️  Remember, noble lord:",
		Value:  "These commands require the royal seal. Justice must be tempered with mercy.",
		Inline: false,
	})
	embed.Footer = &discordgo.MessageEmbedFooter{Text: "The Royal Court"}

	utils.EditResponseEmbed(s, i.Interaction, embed)
}
