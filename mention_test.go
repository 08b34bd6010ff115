package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReferences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Reference
	}{
		{
			name: "user mention",
			text: "hey <@U123> can you look",
			want: []Reference{{Kind: RefUser, ID: "U123"}},
		},
		{
			name: "user mention with label",
			text: "hey <@U123|jane> can you look",
			want: []Reference{{Kind: RefUser, ID: "U123"}},
		},
		{
			name: "group mention",
			text: "ping <!subteam^S789>",
			want: []Reference{{Kind: RefGroup, ID: "S789"}},
		},
		{
			name: "group mention with label",
			text: "ping <!subteam^S789|@oncall>",
			want: []Reference{{Kind: RefGroup, ID: "S789"}},
		},
		{
			name: "broadcasts",
			text: "<!here> <!everyone> <!channel|@channel>",
			want: []Reference{
				{Kind: RefBroadcast, ID: "here"},
				{Kind: RefBroadcast, ID: "everyone"},
				{Kind: RefBroadcast, ID: "channel"},
			},
		},
		{
			name: "plain words are not mentions",
			text: "no mentions here, everyone knows U123 is on channel duty",
			want: nil,
		},
		{
			name: "links and channel refs are skipped",
			text: "see <https://example.com|docs> in <#C0101|general>",
			want: nil,
		},
		{
			name: "unterminated bracket",
			text: "broken <@U123",
			want: nil,
		},
		{
			name: "mixed",
			text: "<@U123|jane> asked <!subteam^S789> to post in <#C0101>, cc <!here>",
			want: []Reference{
				{Kind: RefUser, ID: "U123"},
				{Kind: RefGroup, ID: "S789"},
				{Kind: RefBroadcast, ID: "here"},
			},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseReferences(tt.text))
		})
	}
}

func TestMatchAll(t *testing.T) {
	matcher := MatchAll{}

	assert.True(t, matcher.Matches("anything at all"))
	assert.True(t, matcher.Matches(""))
}

func TestUserMentionMatches(t *testing.T) {
	tests := []struct {
		name   string
		target string
		text   string
		want   bool
	}{
		{"direct hit", "U123", "hey <@U123> please review", true},
		{"labelled hit", "U123", "hey <@U123|jane> please review", true},
		{"different user", "U123", "hey <@U456> please review", false},
		{"id prefix does not match", "U12", "hey <@U123> please review", false},
		{"plain id in prose", "U123", "U123 was mentioned yesterday", false},
		{"group target via subteam", "S789", "ping <!subteam^S789>", true},
		{"group target via direct ref", "S789", "ping <@S789>", true},
		{"user target ignores subteam", "U123", "ping <!subteam^U123>", false},
		{"broadcast is not a user mention", "U123", "<!here> standup time", false},
		{"empty text", "U123", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewUserMention(tt.target).Matches(tt.text))
		})
	}
}

func TestBroadcastMentionMatches(t *testing.T) {
	tests := []struct {
		name   string
		target string
		text   string
		want   bool
	}{
		{"here", "U123", "<!here> standup in 5", true},
		{"everyone", "U123", "<!everyone> office closed tomorrow", true},
		{"channel", "U123", "<!channel|@channel> deploy starting", true},
		{"plain words", "U123", "no mentions here, tell everyone on the channel", false},
		{"group target via subteam", "S789", "ping <!subteam^S789>", true},
		{"group target different group", "S789", "ping <!subteam^S111>", false},
		{"user target ignores subteam", "U123", "ping <!subteam^S789>", false},
		{"direct user mention is not broadcast", "U123", "hey <@U123>", false},
		{"empty text", "U123", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewBroadcastMention(tt.target).Matches(tt.text))
		})
	}
}

func TestIsGroupID(t *testing.T) {
	assert.True(t, IsGroupID("S789"))
	assert.False(t, IsGroupID("U123"))
	assert.False(t, IsGroupID("W456"))
	assert.False(t, IsGroupID(""))
}
