package roster_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/secretsanta/pkg/roster"
	"github.com/dmitrymomot/secretsanta/pkg/santa"
	"github.com/dmitrymomot/secretsanta/pkg/validator"
)

func TestParseParticipant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    santa.Participant
		wantErr bool
	}{
		{input: "Alice:alice@example.com", want: santa.Participant{Name: "Alice", Contact: "alice@example.com"}},
		{input: "  Alice : alice@example.com ", want: santa.Participant{Name: "Alice", Contact: "alice@example.com"}},
		{input: "Alice <alice@example.com>", want: santa.Participant{Name: "Alice", Contact: "alice@example.com"}},
		{input: `"Smith, Bob" <bob@example.com>`, want: santa.Participant{Name: "Smith, Bob", Contact: "bob@example.com"}},
		{input: "", wantErr: true},
		{input: "Alice", wantErr: true},
		{input: ":alice@example.com", wantErr: true},
		{input: "Alice:", wantErr: true},
		{input: "<alice@example.com>", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := roster.ParseParticipant(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, roster.ErrInvalidParticipant)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePair(t *testing.T) {
	t.Parallel()

	p, err := roster.ParsePair(" Alice , Bob ")
	require.NoError(t, err)
	assert.Equal(t, santa.Pair{A: "Alice", B: "Bob"}, p)

	for _, bad := range []string{"", "Alice", "Alice,", ",Bob", "A,B,C"} {
		_, err := roster.ParsePair(bad)
		assert.ErrorIs(t, err, roster.ErrInvalidPair, bad)
	}
}

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	// "é" as e + combining acute accent becomes the single precomposed rune.
	assert.Equal(t, "Jos\u00e9", roster.NormalizeName(" Jose\u0301 "))
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	r, err := roster.LoadFile("testdata/family.yaml")
	require.NoError(t, err)
	require.NoError(t, r.Validate())

	require.Len(t, r.Participants, 4)
	assert.Equal(t, santa.Participant{Name: "Alice", Contact: "alice@example.com"}, r.Participants[0])
	assert.Len(t, r.Exclusions, 2)

	f := r.Forbidden()
	assert.True(t, f.Forbids("Alice", "Bob"))
	assert.True(t, f.Forbids("Bob", "Alice"))
	assert.True(t, f.Forbids("Carol", "Dave"), "exclusions resolve to the participant's spelling")
	assert.False(t, f.Forbids("Alice", "Carol"))
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := roster.LoadFile("testdata/nope.yaml")
	assert.ErrorIs(t, err, roster.ErrReadingFile)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"empty document", "", roster.ErrInvalidRoster},
		{"unknown field", "participants: []\nbudget: 20\n", roster.ErrInvalidRoster},
		{"malformed yaml", "participants: [\n", roster.ErrInvalidRoster},
		{"pair with three names", "exclusions:\n  - [a, b, c]\n", roster.ErrInvalidPair},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := roster.Decode(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRoster_Validate(t *testing.T) {
	t.Parallel()

	base := func() *roster.Roster {
		r := &roster.Roster{}
		r.AddParticipant(santa.Participant{Name: "Alice", Contact: "alice@example.com"})
		r.AddParticipant(santa.Participant{Name: "Bob", Contact: "bob@localhost"})
		return r
	}

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		r := base()
		r.AddExclusion(santa.Pair{A: "alice", B: "bob"})
		assert.NoError(t, r.Validate())
	})

	tests := []struct {
		name   string
		modify func(r *roster.Roster)
		field  string
	}{
		{"single participant", func(r *roster.Roster) { r.Participants = r.Participants[:1] }, "participants"},
		{"case-insensitive duplicate", func(r *roster.Roster) {
			r.AddParticipant(santa.Participant{Name: "ALICE", Contact: "a2@example.com"})
		}, "participants"},
		{"bad address", func(r *roster.Roster) { r.Participants[1].Contact = "bob" }, "participants[1].email"},
		{"empty name", func(r *roster.Roster) { r.Participants[0].Name = "" }, "participants[0].name"},
		{"self exclusion", func(r *roster.Roster) { r.AddExclusion(santa.Pair{A: "Alice", B: "alice"}) }, "exclusions[0]"},
		{"unknown name", func(r *roster.Roster) { r.AddExclusion(santa.Pair{A: "Alice", B: "Zed"}) }, "exclusions[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := base()
			tt.modify(r)

			err := r.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, roster.ErrInvalidRoster)
			assert.True(t, validator.ExtractValidationErrors(err).Has(tt.field), err.Error())
		})
	}
}

func TestRoster_Merge(t *testing.T) {
	t.Parallel()

	r, err := roster.LoadFile("testdata/family.yaml")
	require.NoError(t, err)

	extra := &roster.Roster{}
	extra.AddParticipant(santa.Participant{Name: "Eve", Contact: "eve@example.com"})
	extra.AddExclusion(santa.Pair{A: "Eve", B: "Alice"})

	r.Merge(extra)
	r.Merge(nil)
	require.NoError(t, r.Validate())
	assert.Len(t, r.Participants, 5)
	assert.Equal(t, []string{"Bob", "Eve"}, r.Forbidden().Partners("Alice"))
}
