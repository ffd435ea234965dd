package scoring

import (
	"regexp"

	"github.com/chatkarma/chatkarma/internal/domain"
)

// ExtractOutcome distinguishes the three extraction results.
type ExtractOutcome int

const (
	// NoMatch means the text carries no scoring intent. This is the common
	// case for ordinary chat.
	NoMatch ExtractOutcome = iota
	// Matched means a valid (item, operation) pair was extracted.
	Matched
	// SelfPlus means the invoking user tried to increment themselves.
	SelfPlus
)

// ExtractResult is the outcome of extracting a scoring attempt from raw text.
// Item and Operation are set for Matched; UserID is set for SelfPlus.
type ExtractResult struct {
	Outcome   ExtractOutcome
	Item      string
	Operation domain.Operation
	UserID    string
}

// scorePattern matches a leading target - a user-mention token or a bare word -
// immediately followed by a doubled operation token, with nothing after it.
// Malformed mentions, operations without a target, and trailing garbage all
// fail the match.
var scorePattern = regexp.MustCompile(`^\s*(?:<@([A-Z0-9]+)>|(@?[\w'][\w'-]*))(\+\+|--|—)\s*$`)

// Extract parses rawText into a scoring attempt. A user-mention target equal
// to the invoking user combined with a plus operation is reclassified as a
// self-increment attempt; self-decrement is deliberately left alone.
func Extract(rawText string, invokingUserID string) ExtractResult {
	m := scorePattern.FindStringSubmatch(rawText)
	if m == nil {
		return ExtractResult{Outcome: NoMatch}
	}

	mentionID, bareItem, token := m[1], m[2], m[3]

	op, ok := domain.ResolveOperation(token)
	if !ok {
		return ExtractResult{Outcome: NoMatch}
	}

	if mentionID != "" {
		if mentionID == invokingUserID && op == domain.Plus {
			return ExtractResult{Outcome: SelfPlus, UserID: mentionID}
		}
		return ExtractResult{Outcome: Matched, Item: "<@" + mentionID + ">", Operation: op}
	}

	return ExtractResult{Outcome: Matched, Item: bareItem, Operation: op}
}
