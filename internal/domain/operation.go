package domain

// Operation is one of the closed set of score mutations. The zero value is not
// a valid operation; use ResolveOperation or the package-level variables.
type Operation struct {
	name  string
	delta int
}

var (
	// Plus increments a score by one.
	Plus = Operation{name: "plus", delta: 1}
	// Minus decrements a score by one.
	Minus = Operation{name: "minus", delta: -1}
	// Self marks a detected self-increment attempt. It carries no delta and is
	// never persisted; its name selects the corrective message category.
	Self = Operation{name: "selfPlus"}
)

// spellings maps every accepted surface token to its operation. Each direction
// accepts a single-character form, a doubled form, and (for minus) the em dash
// that Slack clients substitute for a double hyphen.
var spellings = map[string]Operation{
	"+":  Plus,
	"++": Plus,
	"-":  Minus,
	"--": Minus,
	"—":  Minus,
}

// ResolveOperation maps a surface token to its Operation. The second return
// value is false when the token is not an accepted spelling; callers treat
// that as "not a scoring message", not as an error.
func ResolveOperation(token string) (Operation, bool) {
	op, ok := spellings[token]
	return op, ok
}

// Name returns the lowercase operation name used for message-category lookup.
func (o Operation) Name() string {
	return o.name
}

// Delta returns the signed score change this operation applies.
func (o Operation) Delta() int {
	return o.delta
}
