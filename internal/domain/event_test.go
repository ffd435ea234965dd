package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvent_Message(t *testing.T) {
	ev, ok := ParseEvent([]byte(`{"type":"message","text":"coffee++","user":"U123","channel":"C1"}`))
	require.True(t, ok)
	assert.Equal(t, EventMessage, ev.Type)
	assert.Equal(t, "coffee++", ev.Text)
	assert.Equal(t, "U123", ev.User)
	assert.Equal(t, "C1", ev.Channel)
}

func TestParseEvent_AppMention(t *testing.T) {
	ev, ok := ParseEvent([]byte(`{"type":"app_mention","text":"<@U0> leaderboard","channel":"C1"}`))
	require.True(t, ok)
	assert.Equal(t, EventAppMention, ev.Type)
}

func TestParseEvent_MissingType(t *testing.T) {
	_, ok := ParseEvent([]byte(`{"text":"Hello"}`))
	assert.False(t, ok)
}

func TestParseEvent_UnknownType(t *testing.T) {
	_, ok := ParseEvent([]byte(`{"type":"random","text":"Hello"}`))
	assert.False(t, ok)
}

func TestParseEvent_SubtypedMessage(t *testing.T) {
	// Subtyped messages (edits, joins, bot echoes) are never scoring attempts,
	// regardless of text content.
	_, ok := ParseEvent([]byte(`{"type":"message","subtype":"bot_message","text":"coffee++"}`))
	assert.False(t, ok)
}

func TestParseEvent_MissingText(t *testing.T) {
	_, ok := ParseEvent([]byte(`{"type":"message"}`))
	assert.False(t, ok)
}

func TestParseEvent_BlankText(t *testing.T) {
	_, ok := ParseEvent([]byte(`{"type":"message","text":" "}`))
	assert.False(t, ok)
}

func TestParseEvent_MalformedJSON(t *testing.T) {
	_, ok := ParseEvent([]byte(`{"type":`))
	assert.False(t, ok)
}
