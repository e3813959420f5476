package defs

import "github.com/bwmarrin/discordgo"

// Platform-level permission gates. Discord enforces these before the
// interaction ever reaches us; the court's own authority policy is applied
// on top.
var (
	permBanMembers      = int64(discordgo.PermissionBanMembers)
	permKickMembers     = int64(discordgo.PermissionKickMembers)
	permModerateMembers = int64(discordgo.PermissionModerateMembers)
	permManageMessages  = int64(discordgo.PermissionManageMessages)
	permAdministrator   = int64(discordgo.PermissionAdministrator)

	sentenceMin = float64(1)
	sentenceMax = float64(40320)
)

func targetOption(desc string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "member",
		Description: desc,
		Required:    true,
	}
}

func reasonOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "reason",
		Description: "The crime committed",
		Required:    false,
	}
}

func minutesOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "minutes",
		Description: "Sentence length in minutes (1 to 40320)",
		Required:    true,
		MinValue:    &sentenceMin,
		MaxValue:    sentenceMax,
	}
}

var Banish = &discordgo.ApplicationCommand{
	Name:                     "banish",
	Description:              "Exile a soul forever from the realm",
	DefaultMemberPermissions: &permBanMembers,
	Options: []*discordgo.ApplicationCommandOption{
		targetOption("The soul to banish"),
		reasonOption(),
	},
}

var CastOut = &discordgo.ApplicationCommand{
	Name:                     "castout",
	Description:              "Cast a peasant from the castle gates",
	DefaultMemberPermissions: &permKickMembers,
	Options: []*discordgo.ApplicationCommandOption{
		targetOption("The peasant to cast out"),
		reasonOption(),
	},
}

var Pillory = &discordgo.ApplicationCommand{
	Name:                     "pillory",
	Description:              "Bind a wretch in public stocks",
	DefaultMemberPermissions: &permModerateMembers,
	Options: []*discordgo.ApplicationCommandOption{
		targetOption("The wretch to bind"),
		minutesOption(),
		reasonOption(),
	},
}

var Stocks = &discordgo.ApplicationCommand{
	Name:                     "stocks",
	Description:              "Mute a tongue with royal locks",
	DefaultMemberPermissions: &permModerateMembers,
	Options: []*discordgo.ApplicationCommandOption{
		targetOption("The tongue to silence"),
		minutesOption(),
		reasonOption(),
	},
}

var Pardon = &discordgo.ApplicationCommand{
	Name:                     "pardon",
	Description:              "Grant royal mercy to a soul",
	DefaultMemberPermissions: &permModerateMembers,
	Options: []*discordgo.ApplicationCommandOption{
		targetOption("The soul to pardon"),
	},
}

var Summon = &discordgo.ApplicationCommand{
	Name:                     "summon",
	Description:              "Issue a royal summons to court",
	DefaultMemberPermissions: &permAdministrator,
	Options: []*discordgo.ApplicationCommandOption{
		targetOption("The subject to summon"),
		reasonOption(),
	},
}

var Purge = &discordgo.ApplicationCommand{
	Name:                     "purge",
	Description:              "Cleanse the hall of messages (1-100)",
	DefaultMemberPermissions: &permManageMessages,
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "amount",
			Description: "How many messages to cleanse (default 10)",
			Required:    false,
		},
	},
}
