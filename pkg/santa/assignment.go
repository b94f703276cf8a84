package santa

import (
	"cmp"
	"fmt"
	"slices"
)

// Pairing is one giver -> recipient entry of an Assignment.
type Pairing struct {
	GiverName     string `json:"giver_name"`
	GiverContact  string `json:"giver_contact"`
	RecipientName string `json:"recipient_name"`
}

// Assignment maps each giver name to its pairing.
type Assignment map[string]Pairing

// Pairings returns the entries sorted by giver name.
func (a Assignment) Pairings() []Pairing {
	out := make([]Pairing, 0, len(a))
	for _, p := range a {
		out = append(out, p)
	}
	slices.SortFunc(out, func(x, y Pairing) int {
		return cmp.Compare(x.GiverName, y.GiverName)
	})
	return out
}

// RecipientOf returns the recipient assigned to giver.
func (a Assignment) RecipientOf(giver string) (string, bool) {
	p, ok := a[giver]
	return p.RecipientName, ok
}

// Verify checks that a is a bijection over participants with no self-gifting
// and no forbidden pair realized in either direction.
func (a Assignment) Verify(participants []Participant, forbidden *Forbidden) error {
	if len(a) != len(participants) {
		return fmt.Errorf("%w: %d entries for %d participants", ErrInvalidAssignment, len(a), len(participants))
	}

	names := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		names[p.Name] = struct{}{}
	}

	received := make(map[string]string, len(a))
	for giver, p := range a {
		if giver != p.GiverName {
			return fmt.Errorf("%w: key %q holds pairing for %q", ErrInvalidAssignment, giver, p.GiverName)
		}
		if _, ok := names[giver]; !ok {
			return fmt.Errorf("%w: unknown giver %q", ErrInvalidAssignment, giver)
		}
		if _, ok := names[p.RecipientName]; !ok {
			return fmt.Errorf("%w: unknown recipient %q", ErrInvalidAssignment, p.RecipientName)
		}
		if giver == p.RecipientName {
			return fmt.Errorf("%w: %q gives to themselves", ErrInvalidAssignment, giver)
		}
		if forbidden.Forbids(giver, p.RecipientName) || forbidden.Forbids(p.RecipientName, giver) {
			return fmt.Errorf("%w: forbidden pair %q -> %q", ErrInvalidAssignment, giver, p.RecipientName)
		}
		if other, dup := received[p.RecipientName]; dup {
			return fmt.Errorf("%w: %q receives from both %q and %q", ErrInvalidAssignment, p.RecipientName, other, giver)
		}
		received[p.RecipientName] = giver
	}
	return nil
}
