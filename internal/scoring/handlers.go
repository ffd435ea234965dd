package scoring

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/chatkarma/chatkarma/internal/domain"
	"github.com/chatkarma/chatkarma/internal/metrics"
)

// Messenger posts a reply to a channel. Implemented by the slack package.
type Messenger interface {
	SendMessage(ctx context.Context, channel string, text string) error
}

// MessageSource picks a human-readable reply for an event category. The
// handler supplies category and context, never the wording.
type MessageSource interface {
	PickMessage(category string, item string, score int) string
}

// CommandFunc handles one app-mention command.
type CommandFunc func(ctx context.Context, ev domain.Event) error

// Handler classifies inbound events and drives the scoring pipeline. It holds
// no mutable state across events beyond the score store.
type Handler struct {
	store     domain.ScoreStore
	messenger Messenger
	messages  MessageSource
	commands  map[string]CommandFunc
}

// NewHandler creates an event handler. The commands map is copied so the
// dispatch table stays fixed after construction.
func NewHandler(store domain.ScoreStore, messenger Messenger, messages MessageSource, commands map[string]CommandFunc) *Handler {
	cmds := make(map[string]CommandFunc, len(commands))
	for name, fn := range commands {
		cmds[name] = fn
	}

	return &Handler{
		store:     store,
		messenger: messenger,
		messages:  messages,
		commands:  cmds,
	}
}

// HandleEvent dispatches a validated event. It returns false when the event
// carries no scoring intent (the common case) and an error only when storage
// or outbound delivery fails. For a single event the apply-then-reply sequence
// is strictly ordered: the reply always reflects the post-mutation score.
func (h *Handler) HandleEvent(ctx context.Context, ev domain.Event) (bool, error) {
	switch ev.Type {
	case domain.EventMessage:
		return h.handleMessage(ctx, ev)
	case domain.EventAppMention:
		return h.handleAppMention(ctx, ev)
	}
	return false, nil
}

func (h *Handler) handleMessage(ctx context.Context, ev domain.Event) (bool, error) {
	res := Extract(ev.Text, ev.User)

	switch res.Outcome {
	case SelfPlus:
		return true, h.handleSelfPlus(ctx, res.UserID, ev.Channel)
	case Matched:
		return true, h.handlePlusMinus(ctx, res.Item, res.Operation, ev.Channel)
	}

	return false, nil
}

// handleSelfPlus answers a self-increment attempt with a corrective message.
// It never touches the score store.
func (h *Handler) handleSelfPlus(ctx context.Context, userID string, channel string) error {
	slog.Info("user attempted to increment their own score", "user", userID, "channel", channel)
	metrics.SelfPlusAttempts.Inc()

	text := h.messages.PickMessage(domain.Self.Name(), "<@"+userID+">", 0)
	if err := h.messenger.SendMessage(ctx, channel, text); err != nil {
		return fmt.Errorf("failed to send self-plus reply: %w", err)
	}
	return nil
}

func (h *Handler) handlePlusMinus(ctx context.Context, item string, op domain.Operation, channel string) error {
	total, err := h.store.ApplyDelta(ctx, item, op)
	if err != nil {
		return fmt.Errorf("failed to apply score delta: %w", err)
	}
	metrics.ScoresApplied.WithLabelValues(op.Name()).Inc()

	text := h.messages.PickMessage(op.Name(), item, total)
	if err := h.messenger.SendMessage(ctx, channel, text); err != nil {
		return fmt.Errorf("failed to send score reply: %w", err)
	}
	return nil
}

var mentionTokens = regexp.MustCompile(`<@[A-Z0-9]+>`)

// handleAppMention scans the mention text for a registered command keyword and
// invokes its handler. Unknown commands are a no-op.
func (h *Handler) handleAppMention(ctx context.Context, ev domain.Event) (bool, error) {
	text := mentionTokens.ReplaceAllString(ev.Text, " ")

	for _, word := range strings.Fields(text) {
		cmd, ok := h.commands[strings.ToLower(word)]
		if !ok {
			continue
		}
		slog.Info("dispatching app command", "command", strings.ToLower(word), "channel", ev.Channel)
		return true, cmd(ctx, ev)
	}

	return false, nil
}
