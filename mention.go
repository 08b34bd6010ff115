package main

import "strings"

// Broadcast keywords Slack encodes as <!here>, <!everyone> and
// <!channel> inside message text.
const (
	broadcastHere     = "here"
	broadcastEveryone = "everyone"
	broadcastChannel  = "channel"
)

const subteamPrefix = "subteam^"

// RefKind classifies a parsed message reference.
type RefKind int

const (
	// RefUser is a direct user reference, <@U12345>.
	RefUser RefKind = iota
	// RefGroup is a user-group reference, <!subteam^S12345>.
	RefGroup
	// RefBroadcast is one of the channel-wide keywords.
	RefBroadcast
)

// Reference is a single mention token found in message text. For
// RefBroadcast the ID holds the keyword ("here", "everyone",
// "channel").
type Reference struct {
	Kind RefKind
	ID   string
}

// ParseReferences scans Slack message text for mention tokens. Slack
// escapes mentions as <@ID>, <!subteam^ID> and <!keyword>, each with an
// optional |label suffix, so plain words like "here" or an ID appearing
// in prose never count. Links, channel references and unterminated
// brackets are skipped.
func ParseReferences(text string) []Reference {
	var refs []Reference
	for {
		open := strings.IndexByte(text, '<')
		if open < 0 {
			return refs
		}
		text = text[open+1:]
		closing := strings.IndexByte(text, '>')
		if closing < 0 {
			return refs
		}
		token := text[:closing]
		text = text[closing+1:]
		if label := strings.IndexByte(token, '|'); label >= 0 {
			token = token[:label]
		}
		switch {
		case strings.HasPrefix(token, "@"):
			if id := token[1:]; id != "" {
				refs = append(refs, Reference{Kind: RefUser, ID: id})
			}
		case strings.HasPrefix(token, "!"+subteamPrefix):
			if id := token[1+len(subteamPrefix):]; id != "" {
				refs = append(refs, Reference{Kind: RefGroup, ID: id})
			}
		case token == "!"+broadcastHere, token == "!"+broadcastEveryone, token == "!"+broadcastChannel:
			refs = append(refs, Reference{Kind: RefBroadcast, ID: token[1:]})
		}
	}
}

// IsGroupID reports whether a Slack ID names a user group. Group IDs
// start with "S", user IDs with "U" or "W".
func IsGroupID(id string) bool {
	return strings.HasPrefix(id, "S")
}

// Matcher decides whether a message's text counts toward a tally.
type Matcher interface {
	Matches(text string) bool
}

// MatchAll counts every message.
type MatchAll struct{}

func (MatchAll) Matches(string) bool { return true }

// UserMention counts messages that reference the target, as a direct
// user mention or, when the target is a user group, as that group's
// mention.
type UserMention struct {
	target string
}

func NewUserMention(target string) UserMention {
	return UserMention{target: target}
}

func (m UserMention) Matches(text string) bool {
	if text == "" {
		return false
	}
	group := IsGroupID(m.target)
	for _, ref := range ParseReferences(text) {
		switch ref.Kind {
		case RefUser:
			if ref.ID == m.target {
				return true
			}
		case RefGroup:
			if group && ref.ID == m.target {
				return true
			}
		}
	}
	return false
}

// BroadcastMention counts messages that ping the whole channel, plus
// group references matching the target when the target is a group ID.
type BroadcastMention struct {
	target string
}

func NewBroadcastMention(target string) BroadcastMention {
	return BroadcastMention{target: target}
}

func (m BroadcastMention) Matches(text string) bool {
	if text == "" {
		return false
	}
	group := IsGroupID(m.target)
	for _, ref := range ParseReferences(text) {
		switch ref.Kind {
		case RefBroadcast:
			return true
		case RefGroup:
			if group && ref.ID == m.target {
				return true
			}
		}
	}
	return false
}
