// Package server implements the HTTP server using Echo framework.
//
// It is the delivery gate in front of the scoring pipeline: shared-secret
// verification, challenge handshake, and deduplication of redelivered webhook
// events. Routes: webhook (POST /), probe (GET /), health, metrics.
package server
