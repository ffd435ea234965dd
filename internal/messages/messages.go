// Package messages selects the human-readable wording for bot replies.
//
// Callers supply an event category and its context (item, score); this package
// owns the phrasing. Each category has a pool of interchangeable phrases so
// replies don't feel canned.
package messages

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

var praise = []string{
	"Congrats!",
	"Nice!",
	"Well deserved.",
	"Cha-ching!",
	"Winning.",
}

var condolence = []string{
	"Oof.",
	"Condolences.",
	"That's gotta hurt.",
	"Tough crowd.",
}

var selfPlusScolding = []string{
	"Hey %s, no cheating!",
	"Nice try, %s.",
	"%s, you can't just give yourself points.",
	"Sorry %s, that's not how this works.",
}

var leaderboardIntros = []string{
	"Here are the current leaders:",
	"The leaderboard, as it stands:",
	"Top of the pops:",
}

// Picker selects a random phrase per category. Safe for concurrent use.
type Picker struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewPicker() *Picker {
	return newPickerWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newPickerWithRand(rnd *rand.Rand) *Picker {
	return &Picker{rnd: rnd}
}

// PickMessage returns a reply for the given category. For "plus" and "minus"
// the context is (item, resulting score); for "selfPlus" the item is the
// offending user's mention token; "leaderboard" ignores the context.
func (p *Picker) PickMessage(category string, item string, score int) string {
	switch category {
	case "plus", "minus":
		return fmt.Sprintf("%s %s is now at %d %s.", p.pick(poolFor(category)), item, score, pluralize(score))
	case "selfPlus":
		return fmt.Sprintf(p.pick(selfPlusScolding), item)
	case "leaderboard":
		return p.pick(leaderboardIntros)
	}
	return ""
}

func poolFor(category string) []string {
	if category == "plus" {
		return praise
	}
	return condolence
}

func (p *Picker) pick(pool []string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return pool[p.rnd.Intn(len(pool))]
}

func pluralize(score int) string {
	if score == 1 || score == -1 {
		return "point"
	}
	return "points"
}
