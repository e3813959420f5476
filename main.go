package main

import (
	"log"
	"os"
	"path/filepath"

	"royal-court/bot"
	"royal-court/config"
	"royal-court/flavor"
	"royal-court/handlers"
	"royal-court/utils"
	"royal-court/utils/database"
	"royal-court/utils/database/guildconfig"
	"royal-court/utils/database/ledger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if err := utils.SetupLogging(cfg.LogDir); err != nil {
		log.Fatalf("Error setting up logging: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	ledgerStore, err := ledger.New(db)
	if err != nil {
		log.Fatalf("Error creating ledger store: %v", err)
	}
	channelStore, err := guildconfig.New(db)
	if err != nil {
		log.Fatalf("Error creating guild config store: %v", err)
	}

	flavorProvider, err := flavor.Load(cfg.FlavorPath)
	if err != nil {
		log.Printf("Error loading flavor file, using defaults: %v", err)
		flavorProvider = flavor.Default()
	}

	b, err := bot.New(cfg, db, ledgerStore, channelStore, flavorProvider)
	if err != nil {
		log.Fatalf("Error creating bot: %v", err)
	}

	handlers.Register(b)

	defer b.Close()
	b.Run()
}
