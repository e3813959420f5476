package utils

import "github.com/bwmarrin/discordgo"

// Court embed palette.
var courtColors = map[string]int{
	"gold":      0xC27C0E,
	"dark_gold": 0xA84300,
	"red":       0x992D22,
	"green":     0x1F8B4C,
	"blue":      0x206694,
	"purple":    0x9B59B6,
	"orange":    0xE67E22,
	"grey":      0x607D8B,
}

// CourtColor resolves a palette name, defaulting to gold.
func CourtColor(name string) int {
	if c, ok := courtColors[name]; ok {
		return c
	}
	return courtColors["gold"]
}

// CourtEmbed builds an embed in the court house style.
func CourtEmbed(title, description, colorName string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Description: description,
		Color:       CourtColor(colorName),
	}
	if title != "" {
		embed.Title = "⚔️  " + title
	}
	return embed
}

// CourtResponse builds a short flavored status embed. prefix is the random
// exclamation supplied by the flavor provider.
func CourtResponse(prefix, message string, success bool) *discordgo.MessageEmbed {
	color := "green"
	if !success {
		color = "red"
	}
	full := message
	if prefix != "" {
		full = prefix + " " + message
	}
	return CourtEmbed("", full, color)
}
