package model

// Config holds the process-level configuration loaded from the environment.
type Config struct {
	BotToken     string
	AppID        string
	LogChannelID string
	DBPath       string
	FlavorPath   string
	LogDir       string
}
