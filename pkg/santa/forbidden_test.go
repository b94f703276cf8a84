package santa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/secretsanta/pkg/santa"
)

func TestForbidden(t *testing.T) {
	t.Parallel()

	t.Run("symmetric", func(t *testing.T) {
		t.Parallel()
		f := santa.NewForbidden(santa.Pair{A: "Alice", B: "Bob"})
		assert.True(t, f.Forbids("Alice", "Bob"))
		assert.True(t, f.Forbids("Bob", "Alice"))
		assert.False(t, f.Forbids("Alice", "Carol"))
	})

	t.Run("later pairs do not replace earlier ones", func(t *testing.T) {
		t.Parallel()
		f := santa.NewForbidden(
			santa.Pair{A: "Alice", B: "Bob"},
			santa.Pair{A: "Alice", B: "Carol"},
		)
		assert.True(t, f.Forbids("Alice", "Bob"))
		assert.True(t, f.Forbids("Alice", "Carol"))
		assert.Equal(t, []string{"Bob", "Carol"}, f.Partners("Alice"))
		assert.Equal(t, []string{"Alice"}, f.Partners("Bob"))
		assert.Equal(t, 2, f.Len())
	})

	t.Run("duplicates and reversed duplicates count once", func(t *testing.T) {
		t.Parallel()
		f := santa.NewForbidden(
			santa.Pair{A: "Bob", B: "Alice"},
			santa.Pair{A: "Alice", B: "Bob"},
		)
		f.Add("Bob", "Alice")
		assert.Equal(t, 1, f.Len())
		assert.Equal(t, []santa.Pair{{A: "Alice", B: "Bob"}}, f.Pairs())
	})

	t.Run("self pair ignored", func(t *testing.T) {
		t.Parallel()
		f := santa.NewForbidden(santa.Pair{A: "Alice", B: "Alice"})
		assert.Zero(t, f.Len())
		assert.Nil(t, f.Partners("Alice"))
	})

	t.Run("pairs sorted", func(t *testing.T) {
		t.Parallel()
		f := santa.NewForbidden(
			santa.Pair{A: "Dave", B: "Carol"},
			santa.Pair{A: "Bob", B: "Alice"},
			santa.Pair{A: "Alice", B: "Eve"},
		)
		assert.Equal(t, []santa.Pair{
			{A: "Alice", B: "Bob"},
			{A: "Alice", B: "Eve"},
			{A: "Carol", B: "Dave"},
		}, f.Pairs())
	})

	t.Run("nil and zero value forbid nothing", func(t *testing.T) {
		t.Parallel()
		var nilRel *santa.Forbidden
		assert.False(t, nilRel.Forbids("Alice", "Bob"))
		assert.Nil(t, nilRel.Partners("Alice"))
		assert.Nil(t, nilRel.Pairs())
		assert.Zero(t, nilRel.Len())

		var zero santa.Forbidden
		assert.False(t, zero.Forbids("Alice", "Bob"))
		zero.Add("Alice", "Bob")
		assert.True(t, zero.Forbids("Bob", "Alice"))
	})
}
