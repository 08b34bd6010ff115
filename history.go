package main

import (
	"context"

	"github.com/slack-go/slack"
)

// historyPageLimit is the most messages conversations.history hands
// back per page.
const historyPageLimit = 1000

// ConversationHistorian is the slice of the Slack client the fetcher
// needs. *slack.Client satisfies it.
type ConversationHistorian interface {
	GetConversationHistoryContext(ctx context.Context, params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error)
}

// WindowHistory holds everything fetched for one window. When Err is
// set the fetch stopped early and Messages carries only the pages
// retrieved before the failure.
type WindowHistory struct {
	Messages []slack.Message
	Pages    int
	Err      error
}

// Partial reports whether the fetch stopped before the window was
// drained.
func (h WindowHistory) Partial() bool {
	return h.Err != nil
}

// CollectWindowHistory pages through conversations.history for one
// channel and window, following cursors until the API reports no more.
// A failed page does not discard earlier pages: the partial history is
// returned with Err set and the caller decides what to do with it.
func CollectWindowHistory(ctx context.Context, client ConversationHistorian, channelID string, window WeekWindow) WindowHistory {
	var history WindowHistory
	cursor := ""
	for {
		resp, err := client.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
			ChannelID: channelID,
			Oldest:    window.Oldest(),
			Latest:    window.Latest(),
			Limit:     historyPageLimit,
			Cursor:    cursor,
		})
		if err != nil {
			history.Err = err
			return history
		}
		history.Pages++
		history.Messages = append(history.Messages, resp.Messages...)
		if !resp.HasMore {
			return history
		}
		cursor = resp.ResponseMetaData.NextCursor
		if cursor == "" {
			// has_more without a cursor cannot be followed; treat the
			// window as drained rather than refetch page one forever.
			return history
		}
	}
}
