package roster

import (
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/secretsanta/pkg/santa"
)

// NormalizeName trims s and converts it to Unicode NFC, so visually identical
// names compare equal.
func NormalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// nameKey is the case-insensitive identity used for duplicate detection.
func nameKey(name string) string {
	return cases.Fold().String(NormalizeName(name))
}

// ParseParticipant accepts "Name <address>" or "Name:address".
func ParseParticipant(s string) (santa.Participant, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return santa.Participant{}, fmt.Errorf("%w: empty value", ErrInvalidParticipant)
	}

	if strings.HasSuffix(s, ">") {
		addr, err := mail.ParseAddress(s)
		if err != nil {
			return santa.Participant{}, fmt.Errorf("%w: %q: %v", ErrInvalidParticipant, s, err)
		}
		if strings.TrimSpace(addr.Name) == "" {
			return santa.Participant{}, fmt.Errorf("%w: %q: missing name", ErrInvalidParticipant, s)
		}
		return santa.Participant{Name: NormalizeName(addr.Name), Contact: addr.Address}, nil
	}

	name, contact, ok := strings.Cut(s, ":")
	if !ok {
		return santa.Participant{}, fmt.Errorf("%w: %q: expected \"Name:address\" or \"Name <address>\"", ErrInvalidParticipant, s)
	}
	name, contact = NormalizeName(name), strings.TrimSpace(contact)
	if name == "" || contact == "" {
		return santa.Participant{}, fmt.Errorf("%w: %q: name and address are required", ErrInvalidParticipant, s)
	}
	return santa.Participant{Name: name, Contact: contact}, nil
}

// ParsePair accepts "A,B".
func ParsePair(s string) (santa.Pair, error) {
	a, b, ok := strings.Cut(s, ",")
	if !ok || strings.Contains(b, ",") {
		return santa.Pair{}, fmt.Errorf("%w: %q: expected \"A,B\"", ErrInvalidPair, s)
	}
	a, b = NormalizeName(a), NormalizeName(b)
	if a == "" || b == "" {
		return santa.Pair{}, fmt.Errorf("%w: %q: both names are required", ErrInvalidPair, s)
	}
	return santa.Pair{A: a, B: b}, nil
}
