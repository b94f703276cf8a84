package santa

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/dmitrymomot/secretsanta/pkg/logger"
)

// Engine produces random assignments. An Engine owns its random source and is not
// safe for concurrent use; create one per goroutine.
type Engine struct {
	rnd              *rand.Rand
	maxAttempts      int
	feasibilityCheck bool
	logger           *slog.Logger
	onAttempt        func(Attempt)
}

// New creates an engine. Defaults: runtime-seeded randomness, no attempt cap,
// feasibility precheck enabled, logging discarded.
func New(opts ...Option) *Engine {
	e := &Engine{
		feasibilityCheck: true,
		logger:           slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rnd == nil {
		e.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	e.logger = e.logger.With(logger.Component("santa"))
	return e
}

// Assign uses a fresh default engine.
func Assign(participants []Participant, forbidden *Forbidden) (Assignment, error) {
	return New().Assign(context.Background(), participants, forbidden)
}

// Assign returns a mapping in which every participant gives exactly one gift and
// receives exactly one, nobody gives to themselves and no forbidden pair is realized.
//
// Each attempt shuffles the recipient order, then for every recipient picks the first
// eligible giver from a freshly shuffled pool of unused givers. A dead end discards the
// attempt and starts over with new randomness. The loop ends on success, when the
// attempt cap is hit, or when ctx is done.
func (e *Engine) Assign(ctx context.Context, participants []Participant, forbidden *Forbidden) (Assignment, error) {
	if err := validateParticipants(participants); err != nil {
		return nil, err
	}
	if e.feasibilityCheck && !Feasible(participants, forbidden) {
		return nil, ErrInfeasible
	}

	m := newAttemptMachine()
	var result Assignment

	for {
		switch m.current {
		case StateSucceeded:
			e.logger.DebugContext(ctx, "assignment complete", logger.Attempt(m.attempts))
			return result, nil
		case StateExhausted:
			return nil, &ExhaustedError{Attempts: m.attempts}
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if e.maxAttempts > 0 && m.attempts >= e.maxAttempts {
			if err := m.fire(eventLimitReached); err != nil {
				return nil, err
			}
			e.logger.WarnContext(ctx, "attempt limit reached", logger.Attempt(m.attempts))
			continue
		}

		m.attempts++
		a, err := e.attempt(m.attempts, participants, forbidden)
		if err != nil {
			e.logger.InfoContext(ctx, "assignment attempt failed, retrying",
				logger.Attempt(m.attempts),
				logger.Error(err),
			)
			e.report(Attempt{Number: m.attempts, State: StateAttempting, Err: err})
			if err := m.fire(eventDeadEnd); err != nil {
				return nil, err
			}
			continue
		}

		result = a
		if err := m.fire(eventComplete); err != nil {
			return nil, err
		}
		e.report(Attempt{Number: m.attempts, State: StateSucceeded})
	}
}

func (e *Engine) attempt(n int, participants []Participant, forbidden *Forbidden) (Assignment, error) {
	order := slices.Clone(participants)
	e.shuffle(order)

	pool := slices.Clone(participants)
	result := make(Assignment, len(participants))

	for _, recipient := range order {
		e.shuffle(pool)
		idx := slices.IndexFunc(pool, func(giver Participant) bool {
			return giver.Name != recipient.Name && !forbidden.Forbids(giver.Name, recipient.Name)
		})
		if idx < 0 {
			return nil, &DeadEndError{Attempt: n, Recipient: recipient.Name, Remaining: len(pool)}
		}

		giver := pool[idx]
		pool = slices.Delete(pool, idx, idx+1)
		result[giver.Name] = Pairing{
			GiverName:     giver.Name,
			GiverContact:  giver.Contact,
			RecipientName: recipient.Name,
		}
	}
	return result, nil
}

func (e *Engine) shuffle(ps []Participant) {
	e.rnd.Shuffle(len(ps), func(i, j int) {
		ps[i], ps[j] = ps[j], ps[i]
	})
}

func (e *Engine) report(a Attempt) {
	if e.onAttempt != nil {
		e.onAttempt(a)
	}
}
