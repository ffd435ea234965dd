package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveOperation_Plus(t *testing.T) {
	for _, token := range []string{"+", "++"} {
		op, ok := ResolveOperation(token)
		assert.True(t, ok, "token %q", token)
		assert.Equal(t, Plus, op)
		assert.Equal(t, "plus", op.Name())
		assert.Equal(t, 1, op.Delta())
	}
}

func TestResolveOperation_Minus(t *testing.T) {
	for _, token := range []string{"-", "--", "—"} {
		op, ok := ResolveOperation(token)
		assert.True(t, ok, "token %q", token)
		assert.Equal(t, Minus, op)
		assert.Equal(t, "minus", op.Name())
		assert.Equal(t, -1, op.Delta())
	}
}

func TestResolveOperation_Unknown(t *testing.T) {
	for _, token := range []string{"", "+-", "+++", "some invalid operation", "plus"} {
		_, ok := ResolveOperation(token)
		assert.False(t, ok, "token %q", token)
	}
}

func TestResolveOperation_InjectivePerSpelling(t *testing.T) {
	// Every accepted spelling maps to exactly one operation.
	seen := map[string]Operation{}
	for _, token := range []string{"+", "++", "-", "--", "—"} {
		op, ok := ResolveOperation(token)
		assert.True(t, ok)
		if prev, dup := seen[token]; dup {
			assert.Equal(t, prev, op)
		}
		seen[token] = op
	}
}

func TestOperationSelf_Name(t *testing.T) {
	assert.Equal(t, "selfPlus", Self.Name())
	assert.Equal(t, 0, Self.Delta())
}
