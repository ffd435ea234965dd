package domain

import (
	"encoding/json"
	"strings"
)

// EventType tags the supported inbound event variants.
type EventType string

const (
	// EventMessage is an ordinary channel message, the only scoring trigger.
	EventMessage EventType = "message"
	// EventAppMention is a direct mention of the bot carrying an app command.
	EventAppMention EventType = "app_mention"
)

// Event is a validated inbound event. It only ever holds one of the supported
// types; envelopes that don't match a known tag shape are rejected at parse
// time rather than checked field-by-field downstream.
type Event struct {
	Type    EventType
	Text    string
	User    string
	Channel string
}

// rawEvent mirrors the platform envelope before validation.
type rawEvent struct {
	Type    string `json:"type"`
	Subtype string `json:"subtype"`
	Text    string `json:"text"`
	User    string `json:"user"`
	Channel string `json:"channel"`
}

// ParseEvent deserializes and validates a platform event envelope. The second
// return value is false for envelopes that are not scoring-relevant: unknown
// or missing type, subtyped messages (edits, joins, bot echoes), or text that
// is blank after trimming. Most chat traffic falls in this bucket, so absence
// is a normal outcome rather than an error.
func ParseEvent(data []byte) (Event, bool) {
	var raw rawEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return Event{}, false
	}

	switch EventType(raw.Type) {
	case EventMessage:
		if raw.Subtype != "" {
			return Event{}, false
		}
	case EventAppMention:
		// no subtype field on app mentions
	default:
		return Event{}, false
	}

	if strings.TrimSpace(raw.Text) == "" {
		return Event{}, false
	}

	return Event{
		Type:    EventType(raw.Type),
		Text:    raw.Text,
		User:    raw.User,
		Channel: raw.Channel,
	}, true
}
