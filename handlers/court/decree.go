package court

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"royal-court/bot"
	"royal-court/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleDecree proclaims a message in, by priority: the explicitly named
// hall, the guild's configured decree hall, or the current channel. A
// configured hall that has vanished or refuses the herald is a soft
// failure, not a crash.
func HandleDecree(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}
	opts := optionMap(i)
	message := opts["message"].StringValue()

	channelID := i.ChannelID
	if opt, ok := opts["channel"]; ok {
		channelID = opt.ChannelValue(s).ID
	} else if configured, ok, err := b.Court.DecreeChannel(parseSnowflake(i.GuildID)); err != nil {
		log.Printf("Failed to read decree channel for guild %s: %v", i.GuildID, err)
	} else if ok {
		id := strconv.FormatInt(configured, 10)
		// The stored hall may have been deleted since it was configured.
		if _, chErr := s.Channel(id); chErr == nil {
			channelID = id
		} else {
			log.Printf("Configured decree hall %s is gone, falling back to current channel: %v", id, chErr)
		}
	}

	channelName := channelID
	if ch, err := s.Channel(channelID); err == nil {
		channelName = ch.Name
	}

	embed := &discordgo.MessageEmbed{
		Title:       "📜  " + b.Flavor.Title(),
		Description: fmt.Sprintf("%s\n\n%s\n\n%s", b.Flavor.Opening(), message, b.Flavor.Closing()),
		Color:       utils.CourtColor("gold"),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Author: &discordgo.MessageEmbedAuthor{
			Name:    fmt.Sprintf("Proclaimed by %s, Herald of the Crown", displayName(i.Member, i.Member.User)),
			IconURL: i.Member.User.AvatarURL(""),
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("✨ %s • The Royal Court", b.Flavor.Signature()),
		},
	}

	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		log.Printf("Failed to send decree to channel %s: %v", channelID, err)
		utils.EditResponseEmbed(s, i.Interaction,
			utils.CourtResponse(b.Flavor.Prefix(),
				fmt.Sprintf("I cannot herald thy decree in <#%s>! The heralds are barred!", channelID), false))
		return
	}

	if _, err := b.Court.RecordDecree(parseSnowflake(i.Member.User.ID), channelName, message); err != nil {
		replyCourtError(s, i, b, err)
		return
	}

	utils.EditResponseEmbed(s, i.Interaction,
		utils.CourtResponse(b.Flavor.Prefix(), b.Flavor.Message("decree_confirm", "<#"+channelID+">"), true))
}

func HandleSetPillory(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}
	channel := optionMap(i)["channel"].ChannelValue(s)

	if err := b.Court.SetPilloryChannel(parseSnowflake(i.GuildID), parseSnowflake(channel.ID)); err != nil {
		replyCourtError(s, i, b, err)
		return
	}
	utils.EditResponseEmbed(s, i.Interaction,
		utils.CourtResponse(b.Flavor.Prefix(),
			fmt.Sprintf("The pillory yard hath been raised in %s. Let all who trespass beware!", channel.Mention()), true))
}

func HandleSetDecree(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}
	channel := optionMap(i)["channel"].ChannelValue(s)

	if err := b.Court.SetDecreeChannel(parseSnowflake(i.GuildID), parseSnowflake(channel.ID)); err != nil {
		replyCourtError(s, i, b, err)
		return
	}
	utils.EditResponseEmbed(s, i.Interaction,
		utils.CourtResponse(b.Flavor.Prefix(),
			fmt.Sprintf("The royal decree hall hath been established in %s. All proclamations shall echo there!", channel.Mention()), true))
}
