package server

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chatkarma/chatkarma/internal/domain"
	"github.com/chatkarma/chatkarma/internal/metrics"
)

// retryHeader counts redelivery attempts. It is client-supplied, so it only
// serves as a hint for events that carry no identifier; the event-id dedup set
// is the real control.
const retryHeader = "X-Slack-Retry-Num"

// inboundEnvelope is the outer webhook payload: either a handshake challenge
// or an event wrapper with the shared verification token.
type inboundEnvelope struct {
	Token     string          `json:"token"`
	Challenge string          `json:"challenge"`
	Type      string          `json:"type"`
	EventID   string          `json:"event_id"`
	Event     json.RawMessage `json:"event"`
}

func (s *Server) handleWebhook(c echo.Context) error {
	var env inboundEnvelope
	if err := c.Bind(&env); err != nil {
		return c.String(http.StatusBadRequest, "malformed request body")
	}

	// platform handshake: echo the challenge value verbatim
	if env.Challenge != "" {
		return c.String(http.StatusOK, env.Challenge)
	}

	if !s.cfg.HasVerificationToken() {
		metrics.AuthFailures.Inc()
		slog.Error("verification token unset or still the placeholder, rejecting event")
		return c.String(http.StatusInternalServerError, "verification token not configured")
	}
	if subtle.ConstantTimeCompare([]byte(env.Token), []byte(s.cfg.SlackVerificationToken)) != 1 {
		metrics.AuthFailures.Inc()
		slog.Warn("event with incorrect verification token rejected")
		return c.String(http.StatusForbidden, "invalid verification token")
	}

	// The dedup marker is set before any work begins so a duplicate arriving
	// while the first delivery is still in flight is acknowledged immediately.
	if !s.dedup.FirstDelivery(env.EventID) {
		metrics.DedupHits.Inc()
		slog.Info("duplicate event delivery acknowledged", "event_id", env.EventID)
		return c.NoContent(http.StatusOK)
	}
	if env.EventID == "" && c.Request().Header.Get(retryHeader) != "" {
		metrics.DedupHits.Inc()
		slog.Info("unkeyed retry delivery acknowledged")
		return c.NoContent(http.StatusOK)
	}

	ev, ok := domain.ParseEvent(env.Event)
	if !ok {
		metrics.EventsReceived.WithLabelValues("ignored").Inc()
		return c.NoContent(http.StatusOK)
	}

	handled, err := s.handler.HandleEvent(c.Request().Context(), ev)
	if err != nil {
		metrics.EventsReceived.WithLabelValues("error").Inc()
		slog.Error("event handling failed", "event_id", env.EventID, "type", ev.Type, "error", err)
		return c.String(http.StatusInternalServerError, "event handling failed")
	}

	if handled {
		metrics.EventsReceived.WithLabelValues("handled").Inc()
	} else {
		metrics.EventsReceived.WithLabelValues("ignored").Inc()
	}
	return c.NoContent(http.StatusOK)
}
