package bot

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"royal-court/utils"
)

func (b *Bot) Run() {
	err := b.Session.Open()
	if err != nil {
		log.Fatalf("Error opening connection: %v", err)
	}

	b.RefreshCommands()

	fmt.Println("Royal Court is now in session. Press CTRL-C to adjourn.")
	if err := utils.LogInfo(b.Session, b.Config.LogChannelID, "System", "Startup", "The court has convened."); err != nil {
		log.Printf("Failed to send startup log: %v", err)
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}
