package messages

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPicker() *Picker {
	return newPickerWithRand(rand.New(rand.NewSource(1)))
}

func TestPickMessage_Plus(t *testing.T) {
	text := testPicker().PickMessage("plus", "coffee", 5)
	assert.Contains(t, text, "coffee")
	assert.Contains(t, text, "5 points")
}

func TestPickMessage_Minus(t *testing.T) {
	text := testPicker().PickMessage("minus", "mondays", -3)
	assert.Contains(t, text, "mondays")
	assert.Contains(t, text, "-3 points")
}

func TestPickMessage_SingularPoint(t *testing.T) {
	text := testPicker().PickMessage("plus", "coffee", 1)
	assert.Contains(t, text, "1 point.")

	text = testPicker().PickMessage("minus", "coffee", -1)
	assert.Contains(t, text, "-1 point.")
}

func TestPickMessage_SelfPlus(t *testing.T) {
	text := testPicker().PickMessage("selfPlus", "<@U12345678>", 0)
	assert.Contains(t, text, "<@U12345678>")
}

func TestPickMessage_Leaderboard(t *testing.T) {
	text := testPicker().PickMessage("leaderboard", "", 3)
	assert.NotEmpty(t, text)
}

func TestPickMessage_UnknownCategory(t *testing.T) {
	assert.Empty(t, testPicker().PickMessage("random", "x", 1))
}

func TestPickMessage_DrawsFromPool(t *testing.T) {
	p := testPicker()
	seen := map[string]bool{}
	for range 100 {
		text := p.PickMessage("plus", "coffee", 2)
		phrase := strings.Split(text, " coffee")[0]
		seen[phrase] = true
	}
	assert.Greater(t, len(seen), 1, "expected more than one distinct phrase over 100 picks")
}
