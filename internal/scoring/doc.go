// Package scoring implements the event interpretation and scoring pipeline.
//
// The Handler classifies validated inbound events, extracts (item, operation)
// pairs from message text, applies mutations through the score store, and
// drives replies. Extraction and vocabulary lookups are synchronous; only the
// store and outbound sends do I/O.
package scoring
