package santa

import (
	"cmp"
	"slices"
)

// Pair is an unordered pair of participant names that must never be matched.
type Pair struct {
	A string `json:"a" yaml:"a"`
	B string `json:"b" yaml:"b"`
}

// Forbidden is a symmetric exclusion relation over participant names.
// A name may be excluded from any number of partners. The zero value and a nil
// pointer are both valid and forbid nothing.
type Forbidden struct {
	partners map[string]map[string]struct{}
}

// NewForbidden builds a relation from the given pairs.
func NewForbidden(pairs ...Pair) *Forbidden {
	f := &Forbidden{}
	for _, p := range pairs {
		f.Add(p.A, p.B)
	}
	return f
}

// Add forbids a giving to b and b giving to a.
// Self pairs are ignored: nobody gives to themselves anyway.
func (f *Forbidden) Add(a, b string) {
	if a == b {
		return
	}
	if f.partners == nil {
		f.partners = make(map[string]map[string]struct{})
	}
	f.link(a, b)
	f.link(b, a)
}

func (f *Forbidden) link(from, to string) {
	set, ok := f.partners[from]
	if !ok {
		set = make(map[string]struct{})
		f.partners[from] = set
	}
	set[to] = struct{}{}
}

// Forbids reports whether giver must not be assigned to recipient.
func (f *Forbidden) Forbids(giver, recipient string) bool {
	if f == nil || f.partners == nil {
		return false
	}
	_, ok := f.partners[giver][recipient]
	return ok
}

// Partners returns the sorted names excluded for name.
func (f *Forbidden) Partners(name string) []string {
	if f == nil {
		return nil
	}
	set := f.partners[name]
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Pairs returns every forbidden pair once, with A < B, sorted.
func (f *Forbidden) Pairs() []Pair {
	if f == nil {
		return nil
	}
	var out []Pair
	for a, set := range f.partners {
		for b := range set {
			if a < b {
				out = append(out, Pair{A: a, B: b})
			}
		}
	}
	slices.SortFunc(out, func(x, y Pair) int {
		if c := cmp.Compare(x.A, y.A); c != 0 {
			return c
		}
		return cmp.Compare(x.B, y.B)
	})
	return out
}

// Len returns the number of distinct forbidden pairs.
func (f *Forbidden) Len() int {
	if f == nil {
		return 0
	}
	n := 0
	for _, set := range f.partners {
		n += len(set)
	}
	return n / 2
}
