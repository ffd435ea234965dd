package domain

import "context"

// ScoreRecord is one leaderboard entry. Item identity is case-insensitive:
// "Coffee" and "coffee" are the same record, stored with the casing of the
// first mutation.
type ScoreRecord struct {
	Item  string `json:"item"`
	Score int    `json:"score"`
}

// ScoreStore applies score mutations and serves the leaderboard.
type ScoreStore interface {
	// ApplyDelta atomically adds the operation's delta to the item's score,
	// creating the record at the delta value if the item is unseen, and
	// returns the resulting total. Safe under concurrent invocations for the
	// same or different items.
	ApplyDelta(ctx context.Context, item string, op Operation) (int, error)

	// TopScores returns at most limit records sorted by score descending,
	// ties broken by insertion order so unchanged data yields identical
	// ordering across calls.
	TopScores(ctx context.Context, limit int) ([]ScoreRecord, error)
}
