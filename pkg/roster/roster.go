package roster

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/secretsanta/pkg/santa"
	"github.com/dmitrymomot/secretsanta/pkg/validator"
)

// Roster is the input of one run: who takes part and who must not be matched.
type Roster struct {
	Participants []santa.Participant
	Exclusions   []santa.Pair
}

type fileParticipant struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

type fileRoster struct {
	Participants []fileParticipant `yaml:"participants"`
	Exclusions   [][]string        `yaml:"exclusions"`
}

// LoadFile reads a YAML roster:
//
//	participants:
//	  - name: Alice
//	    email: alice@example.com
//	exclusions:
//	  - [Alice, Bob]
func LoadFile(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrReadingFile, err)
	}
	defer f.Close()

	r, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Decode parses a YAML roster. Unknown keys are rejected.
func Decode(src io.Reader) (*Roster, error) {
	dec := yaml.NewDecoder(src)
	dec.KnownFields(true)

	var doc fileRoster
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidRoster)
		}
		return nil, errors.Join(ErrInvalidRoster, err)
	}

	r := &Roster{}
	for _, p := range doc.Participants {
		r.AddParticipant(santa.Participant{Name: p.Name, Contact: p.Email})
	}
	for i, pair := range doc.Exclusions {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: exclusions[%d] must list exactly two names, got %d", ErrInvalidPair, i, len(pair))
		}
		r.AddExclusion(santa.Pair{A: pair[0], B: pair[1]})
	}
	return r, nil
}

// AddParticipant appends p with a normalized name.
func (r *Roster) AddParticipant(p santa.Participant) {
	p.Name = NormalizeName(p.Name)
	r.Participants = append(r.Participants, p)
}

// AddExclusion appends a pair with normalized names.
func (r *Roster) AddExclusion(p santa.Pair) {
	r.Exclusions = append(r.Exclusions, santa.Pair{A: NormalizeName(p.A), B: NormalizeName(p.B)})
}

// Merge appends everything from other.
func (r *Roster) Merge(other *Roster) {
	if other == nil {
		return
	}
	r.Participants = append(r.Participants, other.Participants...)
	r.Exclusions = append(r.Exclusions, other.Exclusions...)
}

// Validate reports every problem at once: fewer than two participants, missing
// names, bad addresses, duplicate names (case-insensitive), self exclusions and
// exclusions naming unknown participants.
func (r *Roster) Validate() error {
	rules := []validator.Rule{
		validator.MinLenSlice("participants", r.Participants, 2),
		validator.Unique("participants", r.Participants, func(p santa.Participant) string {
			return nameKey(p.Name)
		}),
	}
	for i, p := range r.Participants {
		rules = append(rules,
			validator.RequiredString(fmt.Sprintf("participants[%d].name", i), p.Name),
			validator.ValidAddress(fmt.Sprintf("participants[%d].email", i), p.Contact),
		)
	}

	known := make(map[string]struct{}, len(r.Participants))
	for _, p := range r.Participants {
		known[nameKey(p.Name)] = struct{}{}
	}
	for i, pair := range r.Exclusions {
		field := fmt.Sprintf("exclusions[%d]", i)
		rules = append(rules,
			validator.NotEqual(field, nameKey(pair.A), nameKey(pair.B)),
			validator.InSet(field, nameKey(pair.A), known),
			validator.InSet(field, nameKey(pair.B), known),
		)
	}

	if err := validator.Apply(rules...); err != nil {
		return errors.Join(ErrInvalidRoster, err)
	}
	return nil
}

// Forbidden builds the exclusion relation using the participants' own spelling of
// each name, so "alice,BOB" excludes "Alice" and "Bob".
func (r *Roster) Forbidden() *santa.Forbidden {
	canonical := make(map[string]string, len(r.Participants))
	for _, p := range r.Participants {
		canonical[nameKey(p.Name)] = p.Name
	}
	resolve := func(name string) string {
		if c, ok := canonical[nameKey(name)]; ok {
			return c
		}
		return name
	}

	f := santa.NewForbidden()
	for _, pair := range r.Exclusions {
		f.Add(resolve(pair.A), resolve(pair.B))
	}
	return f
}
