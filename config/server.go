package config

import (
	"time"

	"main/utils"
)

type ServerConfig struct {
	Port string

	// PanelPushDelay is the grace period before the snapshot is pushed to
	// a freshly opened panel, giving the window time to finish loading.
	PanelPushDelay time.Duration

	// CollationLanguage selects the locale for the text tiebreak when
	// sorting visible notes.
	CollationLanguage string

	RedisURL string

	// DraftTTL bounds how long unsubmitted form fields survive in the
	// session cache.
	DraftTTL time.Duration
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Port:              utils.GetEnvAsString("PORT", "8080"),
		PanelPushDelay:    utils.GetEnvAsDuration("PANEL_PUSH_DELAY", 400*time.Millisecond),
		CollationLanguage: utils.GetEnvAsString("COLLATION_LANG", "es"),
		RedisURL:          utils.GetEnvAsString("REDIS_URL", "redis://localhost:6379/0"),
		DraftTTL:          utils.GetEnvAsDuration("DRAFT_TTL", 30*time.Minute),
	}
}
