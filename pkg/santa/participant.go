package santa

import (
	"fmt"
	"strings"
)

// Participant is a person taking part in the exchange.
// Name identifies the participant within a run; Contact is where their notification goes.
type Participant struct {
	Name    string `json:"name" yaml:"name"`
	Contact string `json:"contact" yaml:"contact"`
}

func (p Participant) String() string {
	if p.Contact == "" {
		return p.Name
	}
	return fmt.Sprintf("%s <%s>", p.Name, p.Contact)
}

// validateParticipants checks that the list is non-empty and names are present and unique.
func validateParticipants(participants []Participant) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}

	seen := make(map[string]struct{}, len(participants))
	for i, p := range participants {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: participant #%d", ErrEmptyName, i)
		}
		if _, ok := seen[p.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateParticipant, p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}
