package roster

import "errors"

var (
	ErrInvalidParticipant = errors.New("roster: invalid participant")
	ErrInvalidPair        = errors.New("roster: invalid exclusion pair")
	ErrInvalidRoster      = errors.New("roster: invalid roster")
	ErrReadingFile        = errors.New("roster: failed to read roster file")
)
