package court

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"royal-court/bot"
	"royal-court/court"
	"royal-court/utils"

	"github.com/bwmarrin/discordgo"
)

// parseSnowflake converts a Discord ID to the integer form the stores use.
// Discord guarantees numeric IDs; a malformed one maps to 0 and is caught
// by the platform calls failing downstream.
func parseSnowflake(id string) int64 {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		log.Printf("Unexpected non-numeric snowflake %q: %v", id, err)
		return 0
	}
	return n
}

func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// stringOption returns the named string option, or def when absent/empty.
func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name, def string) string {
	if opt, ok := opts[name]; ok {
		if v := opt.StringValue(); v != "" {
			return v
		}
	}
	return def
}

func intOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string, def int) int {
	if opt, ok := opts[name]; ok {
		return int(opt.IntValue())
	}
	return def
}

// fetchGuild prefers the state cache and falls back to the API.
func fetchGuild(s *discordgo.Session, guildID string) (*discordgo.Guild, error) {
	if g, err := s.State.Guild(guildID); err == nil && len(g.Roles) > 0 {
		return g, nil
	}
	g, err := s.Guild(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild %s: %w", guildID, err)
	}
	return g, nil
}

func fetchMember(s *discordgo.Session, guildID, userID string) (*discordgo.Member, error) {
	if m, err := s.State.Member(guildID, userID); err == nil {
		return m, nil
	}
	m, err := s.GuildMember(guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch member %s in guild %s: %w", userID, guildID, err)
	}
	return m, nil
}

// topRolePosition returns the highest role position a member holds. Members
// with only @everyone rank at 0.
func topRolePosition(guild *discordgo.Guild, roleIDs []string) int {
	positions := make(map[string]int, len(guild.Roles))
	for _, role := range guild.Roles {
		positions[role.ID] = role.Position
	}
	top := 0
	for _, id := range roleIDs {
		if pos, ok := positions[id]; ok && pos > top {
			top = pos
		}
	}
	return top
}

// buildRequest resolves the (actor, target) tuple and derives a fresh
// authority context from live guild data. Never cached: the hierarchy can
// change between commands.
func buildRequest(s *discordgo.Session, i *discordgo.InteractionCreate, target *discordgo.User) (court.SanctionRequest, error) {
	guild, err := fetchGuild(s, i.GuildID)
	if err != nil {
		return court.SanctionRequest{}, err
	}
	targetMember, err := fetchMember(s, i.GuildID, target.ID)
	if err != nil {
		return court.SanctionRequest{}, err
	}
	botMember, err := fetchMember(s, i.GuildID, s.State.User.ID)
	if err != nil {
		return court.SanctionRequest{}, err
	}

	return court.SanctionRequest{
		GuildID:  parseSnowflake(i.GuildID),
		ActorID:  parseSnowflake(i.Member.User.ID),
		TargetID: parseSnowflake(target.ID),
		Authority: court.AuthorityContext{
			TargetIsOwner: guild.OwnerID == target.ID,
			TargetIsSelf:  target.ID == s.State.User.ID,
			BotRank:       topRolePosition(guild, botMember.Roles),
			TargetRank:    topRolePosition(guild, targetMember.Roles),
		},
	}, nil
}

func displayName(member *discordgo.Member, user *discordgo.User) string {
	if member != nil && member.Nick != "" {
		return member.Nick
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

// memberDisplayName resolves a stored subject ID back to a name for
// display, tolerating members who have since left.
func memberDisplayName(s *discordgo.Session, guildID string, userID int64) string {
	id := strconv.FormatInt(userID, 10)
	if m, err := fetchMember(s, guildID, id); err == nil {
		return displayName(m, m.User)
	}
	return fmt.Sprintf("Unknown (%d)", userID)
}

// replyCourtError turns a typed court failure into a flavored embed,
// editing the deferred response. PersistenceFailed is additionally pushed
// to the log channel: the platform action stuck without an audit row.
func replyCourtError(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, err error) {
	var cerr *court.Error
	if !errors.As(err, &cerr) {
		log.Printf("Unexpected error in %s: %v", i.ApplicationCommandData().Name, err)
		utils.EditResponseEmbed(s, i.Interaction,
			utils.CourtResponse(b.Flavor.Prefix(), "An ill omen befell the royal scribes! The chronicles shall record this mishap.", false))
		return
	}

	message := cerr.Reason
	if message == "" {
		message = court.UserMessage(cerr.Kind)
	}
	if cerr.Kind == court.KindPersistenceFailed {
		log.Printf("Persistence failure in %s: %v", i.ApplicationCommandData().Name, err)
		if logErr := utils.LogError(s, b.Config.LogChannelID, "Ledger", i.ApplicationCommandData().Name, err.Error()); logErr != nil {
			log.Printf("Failed to report audit gap to log channel: %v", logErr)
		}
	}
	utils.EditResponseEmbed(s, i.Interaction, utils.CourtResponse(b.Flavor.Prefix(), message, false))
}
