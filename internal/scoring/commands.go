package scoring

import (
	"context"
	"fmt"
	"strings"

	"github.com/chatkarma/chatkarma/internal/domain"
)

const leaderboardSize = 10

// NewLeaderboardCommand builds the "leaderboard" app command: it fetches the
// top scores and replies with a ranked list. Items with equal scores share a
// rank, ordered by insertion.
func NewLeaderboardCommand(store domain.ScoreStore, messenger Messenger, messages MessageSource) CommandFunc {
	return func(ctx context.Context, ev domain.Event) error {
		records, err := store.TopScores(ctx, leaderboardSize)
		if err != nil {
			return fmt.Errorf("failed to fetch top scores: %w", err)
		}

		text := messages.PickMessage("leaderboard", "", len(records))
		if len(records) > 0 {
			text += "\n" + formatLeaderboard(records)
		}

		if err := messenger.SendMessage(ctx, ev.Channel, text); err != nil {
			return fmt.Errorf("failed to send leaderboard reply: %w", err)
		}
		return nil
	}
}

func formatLeaderboard(records []domain.ScoreRecord) string {
	var b strings.Builder

	rank := 0
	prevScore := 0
	for i, r := range records {
		if i == 0 || r.Score != prevScore {
			rank = i + 1
		}
		prevScore = r.Score

		fmt.Fprintf(&b, "%d. %s [%d %s]\n", rank, r.Item, r.Score, pluralizePoints(r.Score))
	}

	return strings.TrimRight(b.String(), "\n")
}

func pluralizePoints(score int) string {
	if score == 1 || score == -1 {
		return "point"
	}
	return "points"
}
