package santa

import "fmt"

// State is the phase of an Assign call.
type State string

const (
	StateAttempting State = "attempting"
	StateSucceeded  State = "succeeded"
	StateExhausted  State = "exhausted_retries"
)

type event string

const (
	eventDeadEnd      event = "dead_end"
	eventComplete     event = "complete"
	eventLimitReached event = "limit_reached"
)

// transitions is keyed by [from][event]; terminal states have no entries.
var transitions = map[State]map[event]State{
	StateAttempting: {
		eventDeadEnd:      StateAttempting,
		eventComplete:     StateSucceeded,
		eventLimitReached: StateExhausted,
	},
}

// Attempt is reported to the attempt hook after every attempt.
type Attempt struct {
	Number int
	State  State
	Err    error
}

type attemptMachine struct {
	current  State
	attempts int
}

func newAttemptMachine() *attemptMachine {
	return &attemptMachine{current: StateAttempting}
}

func (m *attemptMachine) fire(ev event) error {
	to, ok := transitions[m.current][ev]
	if !ok {
		return fmt.Errorf("santa: no transition from %q on %q", m.current, ev)
	}
	m.current = to
	return nil
}
