package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all environment-driven settings for the API server and the
// notifier. Values are read once at startup; a .env file, if present, is
// loaded by godotenv/autoload in the entrypoints before this runs.
type Config struct {
	Port int `envconfig:"PORT" default:"8080"`

	MongoURI      string `envconfig:"MONGODB_URI" default:"mongodb://localhost:27017"`
	MongoDatabase string `envconfig:"MONGODB_DATABASE" default:"silentblock"`

	SupabaseURL        string `envconfig:"SUPABASE_URL"`
	SupabaseServiceKey string `envconfig:"SUPABASE_SERVICE_ROLE_KEY"`

	// TriggerDSN points at the relational trigger store. Empty disables the
	// trigger fanout; block creation keeps working without it.
	TriggerDSN string `envconfig:"TRIGGER_DB_DSN"`

	NotifierBin   string        `envconfig:"NOTIFIER_BIN" default:"./bin/notifier"`
	NotifyLead    time.Duration `envconfig:"NOTIFY_LEAD" default:"5m"`
	SweepInterval time.Duration `envconfig:"SWEEP_INTERVAL" default:"1m"`

	LineChannelSecret string `envconfig:"LINE_CHANNEL_SECRET"`
	LineChannelToken  string `envconfig:"LINE_CHANNEL_ACCESS_TOKEN"`
	LineNotifyTo      string `envconfig:"LINE_NOTIFY_TO"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
