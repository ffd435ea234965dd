// Package slack implements outbound message delivery via the Slack Web API.
package slack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	slackapi "github.com/slack-go/slack"

	"github.com/chatkarma/chatkarma/internal/domain"
	"github.com/chatkarma/chatkarma/internal/retry"
)

var defaultPolicy = retry.Policy{
	MaxAttempts:      3,
	InitialBackoff:   500 * time.Millisecond,
	RateLimitBackoff: 5 * time.Second,
	OnRetry: func(attempt int, err error, backoff time.Duration) {
		slog.Warn("retrying message post", "attempt", attempt, "backoff", backoff, "error", err)
	},
}

// Client posts replies with chat.postMessage. It implements scoring.Messenger.
type Client struct {
	api    *slackapi.Client
	policy retry.Policy
}

// NewClient creates an outbound client with the given bot token. Extra options
// are forwarded to the underlying API client (tests use OptionAPIURL).
func NewClient(botToken string, opts ...slackapi.Option) *Client {
	return &Client{
		api:    slackapi.New(botToken, opts...),
		policy: defaultPolicy,
	}
}

// classifySendError sorts a post failure into retry buckets: rate limits wait
// out the longer window, API-level rejections (bad channel, bad auth) are
// permanent, anything else is assumed transient transport trouble.
func classifySendError(err error) retry.Action {
	var rateLimited *slackapi.RateLimitedError
	if errors.As(err, &rateLimited) {
		return retry.After
	}
	var apiErr slackapi.SlackErrorResponse
	if errors.As(err, &apiErr) {
		return retry.Stop
	}
	return retry.Retry
}

// SendMessage posts text to the given channel, retrying transient failures.
// Exhausted or permanent failures wrap domain.ErrChatUnavailable.
func (c *Client) SendMessage(ctx context.Context, channel string, text string) error {
	err := retry.Do(ctx, c.policy, classifySendError, func() error {
		_, _, err := c.api.PostMessageContext(ctx, channel, slackapi.MsgOptionText(text, false))
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to post message to %s: %w: %w", channel, domain.ErrChatUnavailable, err)
	}
	return nil
}
