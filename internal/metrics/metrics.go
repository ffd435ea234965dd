// Package metrics exposes prometheus instrumentation for the scoring pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventsReceived tracks inbound webhook events by outcome
	EventsReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatkarma_events_received_total",
			Help: "Inbound events by outcome (handled/ignored/error)",
		},
		[]string{"outcome"},
	)

	// DedupHits tracks redelivered events dropped by the delivery gate
	DedupHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chatkarma_dedup_hits_total",
			Help: "Redelivered events acknowledged without reprocessing",
		},
	)

	// ScoresApplied tracks persisted score mutations by operation name
	ScoresApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatkarma_scores_applied_total",
			Help: "Score mutations applied by operation",
		},
		[]string{"operation"},
	)

	// SelfPlusAttempts tracks blocked self-increment attempts
	SelfPlusAttempts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chatkarma_self_plus_attempts_total",
			Help: "Self-increment attempts blocked before mutation",
		},
	)

	// AuthFailures tracks webhook requests rejected by the verification check
	AuthFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chatkarma_auth_failures_total",
			Help: "Webhook requests rejected by token verification",
		},
	)
)
