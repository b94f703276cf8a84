package santa

import (
	"errors"
	"fmt"
)

var (
	ErrNoParticipants       = errors.New("santa: no participants")
	ErrEmptyName            = errors.New("santa: participant name is empty")
	ErrDuplicateParticipant = errors.New("santa: duplicate participant name")
	ErrInfeasible           = errors.New("santa: no valid assignment exists for the given participants and exclusions")
	ErrExhaustedRetries     = errors.New("santa: attempt limit reached without a valid assignment")
	ErrInvalidAssignment    = errors.New("santa: assignment violates an invariant")
)

// DeadEndError describes a single attempt that could not find a giver for a recipient.
// It is reported to hooks and logs only, never returned from Assign.
type DeadEndError struct {
	Attempt   int
	Recipient string
	Remaining int
}

func (e *DeadEndError) Error() string {
	return fmt.Sprintf("attempt %d: no eligible giver for %q (%d givers left)", e.Attempt, e.Recipient, e.Remaining)
}

// ExhaustedError is returned when the configured attempt cap is reached.
type ExhaustedError struct {
	Attempts int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s: %d attempts", ErrExhaustedRetries.Error(), e.Attempts)
}

func (e *ExhaustedError) Unwrap() error {
	return ErrExhaustedRetries
}

func IsDeadEndError(err error) bool {
	var e *DeadEndError
	return errors.As(err, &e)
}
