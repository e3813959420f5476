package handlers

import (
	"log"

	"royal-court/bot"
	courthandler "royal-court/handlers/court"

	"github.com/bwmarrin/discordgo"
)

func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)
	addHandlers(b)
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	wrap := func(h func(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot)) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			h(s, i, b)
		}
	}

	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"banish":       wrap(courthandler.HandleBanish),
		"castout":      wrap(courthandler.HandleCastOut),
		"pillory":      wrap(courthandler.HandlePillory),
		"stocks":       wrap(courthandler.HandleStocks),
		"pardon":       wrap(courthandler.HandlePardon),
		"summon":       wrap(courthandler.HandleSummon),
		"purge":        wrap(courthandler.HandlePurge),
		"chronicle":    wrap(courthandler.HandleChronicle),
		"courtlog":     wrap(courthandler.HandleCourtLog),
		"decree":       wrap(courthandler.HandleDecree),
		"setpillory":   wrap(courthandler.HandleSetPillory),
		"setdecree":    wrap(courthandler.HandleSetDecree),
		"help":         wrap(courthandler.HandleHelp),
		"court-status": wrap(SystemInfoHandler),
	}
}

func addHandlers(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		// Guild-only bot; ignore DM invocations outright.
		if i.GuildID == "" || i.Member == nil {
			return
		}
		h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]
		if !ok {
			return
		}
		// A panicking handler must not take the dispatch loop down with it.
		defer func() {
			if r := recover(); r != nil {
				log.Printf("Handler for %s panicked: %v", i.ApplicationCommandData().Name, r)
			}
		}()
		h(s, i)
	})
}
