package court

import (
	"fmt"
	"log"
	"strconv"

	"royal-court/bot"
	"royal-court/model"
	"royal-court/utils"

	"github.com/bwmarrin/discordgo"
)

// Default judgments, applied when the moderator gives no reason.
const (
	defaultBanishReason  = "By royal decree"
	defaultCastOutReason = "Unfit for the court"
	defaultPilloryReason = "Crimes against the Crown"
	defaultStocksReason  = "Bound by royal order"
	defaultPardonReason  = "Royal mercy granted"
	defaultSummonReason  = "Summoned before the Crown"
)

func HandleBanish(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}
	opts := optionMap(i)
	target := opts["member"].UserValue(s)
	reason := stringOption(opts, "reason", defaultBanishReason)

	req, err := buildRequest(s, i, target)
	if err != nil {
		log.Printf("Error resolving banish target: %v", err)
		utils.SendFollowUpError(s, i.Interaction, "I know not of that soul in our realm.")
		return
	}
	req.Reason = reason

	rec, err := b.Court.Banish(req)
	if err != nil {
		replyCourtError(s, i, b, err)
		return
	}

	targetMember, _ := fetchMember(s, i.GuildID, target.ID)
	desc := fmt.Sprintf("%s\n\n**Crime:** %s\n**Judge:** %s",
		b.Flavor.Message("banish", displayName(targetMember, target)), reason, i.Member.Mention())
	embed := utils.CourtEmbed("🏴  ROYAL BANISHMENT", desc, "red")
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("Judgment #%d • Let this be a warning to all who would defy the Crown", rec.ID),
	}
	utils.EditResponseEmbed(s, i.Interaction, embed)
}

func HandleCastOut(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}
	opts := optionMap(i)
	target := opts["member"].UserValue(s)
	reason := stringOption(opts, "reason", defaultCastOutReason)

	// Resolve the member before the kick removes them from the guild.
	targetMember, _ := fetchMember(s, i.GuildID, target.ID)

	req, err := buildRequest(s, i, target)
	if err != nil {
		log.Printf("Error resolving castout target: %v", err)
		utils.SendFollowUpError(s, i.Interaction, "I know not of that soul in our realm.")
		return
	}
	req.Reason = reason

	rec, err := b.Court.CastOut(req)
	if err != nil {
		replyCourtError(s, i, b, err)
		return
	}

	desc := fmt.Sprintf("%s\n\n**Crime:** %s\n**Judge:** %s",
		b.Flavor.Message("castout", displayName(targetMember, target)), reason, i.Member.Mention())
	embed := utils.CourtEmbed("🚪  CAST FROM COURT", desc, "orange")
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("Judgment #%d • May they learn humility beyond our walls", rec.ID),
	}
	utils.EditResponseEmbed(s, i.Interaction, embed)
}

func HandlePillory(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	handleTimedSanction(s, i, b, model.SanctionPillory)
}

func HandleStocks(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	handleTimedSanction(s, i, b, model.SanctionStocks)
}

func handleTimedSanction(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, kind model.SanctionKind) {
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}
	opts := optionMap(i)
	target := opts["member"].UserValue(s)
	minutes := intOption(opts, "minutes", 0)

	defaultReason := defaultPilloryReason
	if kind == model.SanctionStocks {
		defaultReason = defaultStocksReason
	}
	reason := stringOption(opts, "reason", defaultReason)

	req, err := buildRequest(s, i, target)
	if err != nil {
		log.Printf("Error resolving %s target: %v", kind, err)
		utils.SendFollowUpError(s, i.Interaction, "I know not of that soul in our realm.")
		return
	}
	req.Kind = kind
	req.Minutes = minutes
	req.Reason = reason

	result, err := b.Court.Sentence(req)
	if err != nil {
		replyCourtError(s, i, b, err)
		return
	}

	targetMember, _ := fetchMember(s, i.GuildID, target.ID)
	name := displayName(targetMember, target)

	if kind == model.SanctionPillory {
		announceShame(s, b, req.GuildID, name, result.Label, reason)
	}

	title := "🪓  PUBLIC PILLORY"
	color := "dark_gold"
	footer := "Public shame is a powerful teacher"
	if kind == model.SanctionStocks {
		title = "🔒  ROYAL SILENCE"
		color = "orange"
		footer = "Silence breeds contemplation"
	}

	desc := fmt.Sprintf("%s\n\n**Crime:** %s\n**Judge:** %s\n**Until:** <t:%d:R>",
		b.Flavor.Message(string(kind), name, result.Label), reason, i.Member.Mention(), result.Until.Unix())
	embed := utils.CourtEmbed(title, desc, color)
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("Judgment #%d • %s", result.Record.ID, footer),
	}
	utils.EditResponseEmbed(s, i.Interaction, embed)
}

// announceShame posts the public shaming line to the configured pillory
// hall. A missing, deleted or unwritable hall is a soft failure: the
// sanction already stuck, so we only log.
func announceShame(s *discordgo.Session, b *bot.Bot, guildID int64, name, label, reason string) {
	chanID, ok, err := b.Court.PilloryChannel(guildID)
	if err != nil {
		log.Printf("Failed to read pillory channel for guild %d: %v", guildID, err)
		return
	}
	if !ok {
		return
	}
	channel := strconv.FormatInt(chanID, 10)
	if _, err := s.ChannelMessageSend(channel, b.Flavor.Message("shame", name, label, reason)); err != nil {
		log.Printf("Cannot herald in pillory hall %s: %v", channel, err)
	}
}

func HandlePardon(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}
	opts := optionMap(i)
	target := opts["member"].UserValue(s)

	req, err := buildRequest(s, i, target)
	if err != nil {
		log.Printf("Error resolving pardon target: %v", err)
		utils.SendFollowUpError(s, i.Interaction, "I know not of that soul in our realm.")
		return
	}
	req.Reason = defaultPardonReason

	rec, err := b.Court.Pardon(req)
	if err != nil {
		replyCourtError(s, i, b, err)
		return
	}

	targetMember, _ := fetchMember(s, i.GuildID, target.ID)
	desc := fmt.Sprintf("%s\n\n**Granted by:** %s",
		b.Flavor.Message("pardon", displayName(targetMember, target)), i.Member.Mention())
	embed := utils.CourtEmbed("🕊️  ROYAL PARDON", desc, "green")
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("Judgment #%d • Mercy is the mark of a true monarch", rec.ID),
	}
	utils.EditResponseEmbed(s, i.Interaction, embed)
}

func HandleSummon(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}
	opts := optionMap(i)
	target := opts["member"].UserValue(s)
	reason := stringOption(opts, "reason", defaultSummonReason)

	rec, err := b.Court.RecordSummon(parseSnowflake(i.Member.User.ID), parseSnowflake(target.ID), reason)
	if err != nil {
		replyCourtError(s, i, b, err)
		return
	}

	desc := fmt.Sprintf("%s\n\n**Reason:** %s\n**Issued by:** %s",
		b.Flavor.Message("summon", target.Mention()), reason, i.Member.Mention())
	embed := utils.CourtEmbed("📯  ROYAL SUMMONS", desc, "gold")
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("Judgment #%d • Heed the call or face the consequences", rec.ID),
	}
	utils.EditResponseEmbed(s, i.Interaction, embed)
}
