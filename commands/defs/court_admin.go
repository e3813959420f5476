package defs

import "github.com/bwmarrin/discordgo"

var Chronicle = &discordgo.ApplicationCommand{
	Name:                     "chronicle",
	Description:              "Read the criminal records of a soul",
	DefaultMemberPermissions: &permAdministrator,
	Options: []*discordgo.ApplicationCommandOption{
		targetOption("The soul whose record to read"),
	},
}

var CourtLog = &discordgo.ApplicationCommand{
	Name:                     "courtlog",
	Description:              "View all recent judgments in the realm",
	DefaultMemberPermissions: &permAdministrator,
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "limit",
			Description: "How many judgments to show (1-25, default 10)",
			Required:    false,
		},
	},
}

var Decree = &discordgo.ApplicationCommand{
	Name:                     "decree",
	Description:              "Proclaim a royal decree to a channel",
	DefaultMemberPermissions: &permAdministrator,
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "message",
			Description: "The proclamation",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "The hall to proclaim in (default: decree hall, then here)",
			Required:    false,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
	},
}

var SetPillory = &discordgo.ApplicationCommand{
	Name:                     "setpillory",
	Description:              "Set the pillory announcement hall",
	DefaultMemberPermissions: &permAdministrator,
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "The hall for public shaming",
			Required:    true,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
	},
}

var SetDecree = &discordgo.ApplicationCommand{
	Name:                     "setdecree",
	Description:              "Set the royal decree proclamation hall",
	DefaultMemberPermissions: &permAdministrator,
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "The hall for proclamations",
			Required:    true,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
	},
}

var Help = &discordgo.ApplicationCommand{
	Name:                     "help",
	Description:              "Display the royal charter of commands",
	DefaultMemberPermissions: &permAdministrator,
}

var CourtStatus = &discordgo.ApplicationCommand{
	Name:                     "court-status",
	Description:              "Display bot and system status information",
	DefaultMemberPermissions: &permAdministrator,
}
