package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables the tool reads.
const (
	envToken            = "SLACK_TOKEN"
	envChannelID        = "SLACK_CHANNEL_ID"
	envBroadcastChannel = "SLACK_BROADCAST_CHANNEL_ID"
	envTargetID         = "SLACK_TARGET_ID"
)

// Config carries everything the tool needs from the environment.
type Config struct {
	// Token authenticates against the Slack Web API.
	Token string
	// ChannelID is the channel tallied for messages and direct
	// mentions.
	ChannelID string
	// BroadcastChannelID is the channel tallied for here/everyone
	// pings. Defaults to ChannelID when unset.
	BroadcastChannelID string
	// TargetID is the user or user group the mention tallies look for.
	TargetID string
}

// LoadConfig reads the environment into a Config, optionally loading a
// dotenv file first. Variables already set in the environment win over
// file values. An explicitly named file must exist; the default .env is
// loaded only when present.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		Token:              os.Getenv(envToken),
		ChannelID:          os.Getenv(envChannelID),
		BroadcastChannelID: os.Getenv(envBroadcastChannel),
		TargetID:           os.Getenv(envTargetID),
	}
	if cfg.BroadcastChannelID == "" {
		cfg.BroadcastChannelID = cfg.ChannelID
	}

	required := map[string]string{
		envToken:     cfg.Token,
		envChannelID: cfg.ChannelID,
		envTargetID:  cfg.TargetID,
	}
	var missing []string
	for name, value := range required {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}
