package santa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/secretsanta/pkg/santa"
)

func pairing(giver, recipient string) santa.Pairing {
	return santa.Pairing{GiverName: giver, RecipientName: recipient}
}

func TestAssignment_Verify(t *testing.T) {
	t.Parallel()

	participants := people("Alice", "Bob", "Carol")
	forbidden := santa.NewForbidden(santa.Pair{A: "Alice", B: "Carol"})

	tests := []struct {
		name    string
		a       santa.Assignment
		wantErr bool
	}{
		{
			name: "forbidden pair realized",
			a: santa.Assignment{
				"Alice": pairing("Alice", "Bob"),
				"Bob":   pairing("Bob", "Carol"),
				"Carol": pairing("Carol", "Alice"),
			},
			wantErr: true,
		},
		{
			name: "missing giver",
			a: santa.Assignment{
				"Alice": pairing("Alice", "Bob"),
				"Bob":   pairing("Bob", "Alice"),
			},
			wantErr: true,
		},
		{
			name: "self gift",
			a: santa.Assignment{
				"Alice": pairing("Alice", "Alice"),
				"Bob":   pairing("Bob", "Carol"),
				"Carol": pairing("Carol", "Bob"),
			},
			wantErr: true,
		},
		{
			name: "recipient used twice",
			a: santa.Assignment{
				"Alice": pairing("Alice", "Bob"),
				"Bob":   pairing("Bob", "Alice"),
				"Carol": pairing("Carol", "Bob"),
			},
			wantErr: true,
		},
		{
			name: "unknown recipient",
			a: santa.Assignment{
				"Alice": pairing("Alice", "Bob"),
				"Bob":   pairing("Bob", "Zed"),
				"Carol": pairing("Carol", "Alice"),
			},
			wantErr: true,
		},
		{
			name: "key mismatch",
			a: santa.Assignment{
				"Alice": pairing("Bob", "Carol"),
				"Bob":   pairing("Bob", "Alice"),
				"Carol": pairing("Carol", "Bob"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.a.Verify(participants, forbidden)
			if tt.wantErr {
				assert.ErrorIs(t, err, santa.ErrInvalidAssignment)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("valid without exclusions", func(t *testing.T) {
		t.Parallel()
		a := santa.Assignment{
			"Alice": pairing("Alice", "Bob"),
			"Bob":   pairing("Bob", "Carol"),
			"Carol": pairing("Carol", "Alice"),
		}
		assert.NoError(t, a.Verify(participants, nil))
	})
}

func TestAssignment_Pairings(t *testing.T) {
	t.Parallel()

	a := santa.Assignment{
		"Carol": pairing("Carol", "Alice"),
		"Alice": pairing("Alice", "Bob"),
		"Bob":   pairing("Bob", "Carol"),
	}
	ps := a.Pairings()
	require.Len(t, ps, 3)
	assert.Equal(t, "Alice", ps[0].GiverName)
	assert.Equal(t, "Bob", ps[1].GiverName)
	assert.Equal(t, "Carol", ps[2].GiverName)

	r, ok := a.RecipientOf("Bob")
	assert.True(t, ok)
	assert.Equal(t, "Carol", r)

	_, ok = a.RecipientOf("Zed")
	assert.False(t, ok)
}

func TestParticipant_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Alice <alice@example.com>", santa.Participant{Name: "Alice", Contact: "alice@example.com"}.String())
	assert.Equal(t, "Bob", santa.Participant{Name: "Bob"}.String())
}
