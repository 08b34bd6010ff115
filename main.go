package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
)

const defaultWeeksToAnalyze = 12

// slackLogAdapter adapts zerolog to slack-go's log interface
type slackLogAdapter struct {
	logger zerolog.Logger
}

func (a *slackLogAdapter) Output(calldepth int, s string) error {
	a.logger.Debug().Msg(s)
	return nil
}

func main() {
	// Set up command line flags
	logLevelStr := flag.String("log-level", "info", "Log level: trace, debug, info, warn, error, fatal, panic")
	weeks := flag.Int("weeks", defaultWeeksToAnalyze, "Number of weeks of history to tally")
	envFile := flag.String("env-file", "", "Path to an env file (default: .env when present)")
	flag.Parse()

	// Set up zerolog on stderr, the reports own stdout
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	// Parse log level
	logLevel, err := zerolog.ParseLevel(*logLevelStr)
	if err != nil {
		// Default to info if invalid level
		logLevel = zerolog.InfoLevel
		fmt.Fprintf(os.Stderr, "Invalid log level '%s', defaulting to 'info'\n", *logLevelStr)
	}
	zerolog.SetGlobalLevel(logLevel)
	log.Logger = zerolog.New(consoleWriter).With().Timestamp().Logger()

	log.Info().
		Str("level", logLevel.String()).
		Msg("Logger initialized")

	if *weeks <= 0 {
		log.Fatal().Int("weeks", *weeks).Msg("Weeks to tally must be positive")
	}

	cfg, err := LoadConfig(*envFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}

	log.Info().
		Str("channelID", cfg.ChannelID).
		Str("broadcastChannelID", cfg.BroadcastChannelID).
		Str("targetID", cfg.TargetID).
		Int("weeks", *weeks).
		Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *weeks); err != nil {
		log.Fatal().Err(err).Msg("Error running weekly tallies")
	}
}

// run connects to Slack and prints one report per aggregation, in
// order, to stdout.
func run(ctx context.Context, cfg *Config, weeks int) error {
	// Create a logger adapter for slack-go
	slackLogger := &slackLogAdapter{
		logger: log.With().Str("component", "slack-api").Logger(),
	}

	client := slack.New(
		cfg.Token,
		slack.OptionLog(slackLogger),
	)

	// Test the token before paging through weeks of history
	log.Debug().Msg("Testing authentication with Slack")
	authTest, err := client.AuthTestContext(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Authentication test failed")
		return fmt.Errorf("auth test failed: %w", err)
	}

	log.Info().
		Str("user", authTest.User).
		Str("userID", authTest.UserID).
		Str("team", authTest.Team).
		Msg("Connected to Slack")

	// One shared anchor so all three reports cover identical windows
	now := time.Now()

	aggregations := []Aggregation{
		{Metric: MetricMessageCount, ChannelID: cfg.ChannelID, Matcher: MatchAll{}},
		{Metric: MetricMentionCount, ChannelID: cfg.ChannelID, Matcher: NewUserMention(cfg.TargetID)},
		{Metric: MetricHereEveryoneCount, ChannelID: cfg.BroadcastChannelID, Matcher: NewBroadcastMention(cfg.TargetID)},
	}

	for _, agg := range aggregations {
		log.Info().
			Str("metric", agg.Metric).
			Str("channelID", agg.ChannelID).
			Int("weeks", weeks).
			Msg("Tallying weekly history")

		results, err := TallyWeeks(ctx, client, agg, now, weeks)
		if err != nil {
			return err
		}
		WriteReport(os.Stdout, agg, results)
	}
	return nil
}
