package bot

import (
	"log"
	"time"

	"royal-court/commands"
	"royal-court/court"
	"royal-court/flavor"
	"royal-court/model"
	"royal-court/utils/database/guildconfig"
	"royal-court/utils/database/ledger"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
)

type Bot struct {
	Session            *discordgo.Session
	Config             *model.Config
	Court              *court.Service
	Flavor             *flavor.Provider
	DB                 *sqlx.DB
	CommandHandlers    map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)
	RegisteredCommands []*discordgo.ApplicationCommand
	StartedAt          time.Time
	done               chan struct{}
}

func New(cfg *model.Config, db *sqlx.DB, ledgerStore *ledger.Store, channelStore *guildconfig.Store, flavorProvider *flavor.Provider) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers | discordgo.IntentsGuildMessages

	b := &Bot{
		Session:   dg,
		Config:    cfg,
		Court:     court.NewService(ledgerStore, channelStore, &court.DiscordEnforcer{Session: dg}),
		Flavor:    flavorProvider,
		DB:        db,
		StartedAt: time.Now(),
		done:      make(chan struct{}),
	}
	return b, nil
}

func (b *Bot) Close() {
	log.Println("Gracefully shutting down.")
	close(b.done)
	b.Session.Close()
	if err := b.DB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}

// RefreshCommands bulk-overwrites the global command set.
func (b *Bot) RefreshCommands() {
	cmds := commands.GenerateCommands()
	log.Printf("Registering %d commands...", len(cmds))
	registeredCmds, err := b.Session.ApplicationCommandBulkOverwrite(b.Config.AppID, "", cmds)
	if err != nil {
		log.Printf("cannot update commands: %v", err)
		return
	}
	b.RegisteredCommands = registeredCmds
}
