package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
)

// Metric labels as they appear in the report header.
const (
	MetricMessageCount      = "MessageCount"
	MetricMentionCount      = "MentionCount"
	MetricHereEveryoneCount = "HereEveryoneMentionCount"
)

// Aggregation names one weekly tally: which metric, over which channel,
// counting the messages its Matcher accepts.
type Aggregation struct {
	Metric    string
	ChannelID string
	Matcher   Matcher
}

// WeeklyResult is the tally for one window. Partial marks weeks whose
// history fetch stopped early; Count is then a lower bound and Err
// records what stopped the fetch.
type WeeklyResult struct {
	Window  WeekWindow
	Count   int
	Partial bool
	Err     error
}

// TallyWeeks runs one aggregation over the given number of weeks,
// newest first. A week whose fetch fails mid-pagination keeps the
// messages already retrieved and is marked partial; only a cancelled
// context aborts the run.
func TallyWeeks(ctx context.Context, client ConversationHistorian, agg Aggregation, now time.Time, weeks int) ([]WeeklyResult, error) {
	results := make([]WeeklyResult, 0, weeks)
	for i := 0; i < weeks; i++ {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("%s aggregation interrupted at week %d: %w", agg.Metric, i, err)
		}
		window := WindowAt(now, i)
		history := CollectWindowHistory(ctx, client, agg.ChannelID, window)
		count := 0
		for _, msg := range history.Messages {
			if agg.Matcher.Matches(msg.Text) {
				count++
			}
		}
		results = append(results, WeeklyResult{
			Window:  window,
			Count:   count,
			Partial: history.Partial(),
			Err:     history.Err,
		})
		if history.Err != nil {
			log.Error().
				Err(history.Err).
				Str("metric", agg.Metric).
				Str("channelID", agg.ChannelID).
				Stringer("window", window).
				Int("pages", history.Pages).
				Int("kept", len(history.Messages)).
				Str("kind", historyErrKind(history.Err)).
				Msg("History pagination stopped early, keeping partial week")
			continue
		}
		log.Debug().
			Str("metric", agg.Metric).
			Stringer("window", window).
			Int("pages", history.Pages).
			Int("messages", len(history.Messages)).
			Int("count", count).
			Msg("Window tallied")
	}
	return results, nil
}

// historyErrKind separates Slack API refusals (ok:false payloads such
// as rate_limited) from transport failures.
func historyErrKind(err error) string {
	if errors.As(err, &slack.SlackErrorResponse{}) {
		return "api"
	}
	return "transport"
}
