// Package santa assigns Secret Santa givers to recipients.
//
// Given participants and a symmetric set of forbidden pairs, an Engine returns an
// Assignment in which everyone gives exactly one gift and receives exactly one, nobody
// gives to themselves, and no forbidden pair is matched in either direction.
//
// # Algorithm
//
// Every attempt shuffles the participants to fix the order in which recipients are
// served. For each recipient the pool of still-unused givers is shuffled and the first
// eligible giver is taken. A greedy pass can paint itself into a corner even when a
// valid assignment exists, so a dead end throws the attempt away and a new one starts
// with fresh randomness. Attempts are tracked by a small state machine:
//
//	attempting --dead_end-->      attempting
//	attempting --complete-->      succeeded
//	attempting --limit_reached--> exhausted_retries
//
// # Usage
//
//	participants := []santa.Participant{
//	    {Name: "Alice", Contact: "alice@example.com"},
//	    {Name: "Bob", Contact: "bob@example.com"},
//	    {Name: "Carol", Contact: "carol@example.com"},
//	}
//	forbidden := santa.NewForbidden(santa.Pair{A: "Alice", B: "Bob"})
//
//	engine := santa.New(santa.WithMaxAttempts(1000), santa.WithLogger(log))
//	assignment, err := engine.Assign(ctx, participants, forbidden)
//	if err != nil {
//	    // santa.ErrInfeasible, santa.ErrExhaustedRetries, validation errors, ctx errors
//	}
//	for _, p := range assignment.Pairings() {
//	    fmt.Printf("%s -> %s\n", p.GiverName, p.RecipientName)
//	}
//
// # Termination
//
// By default the engine first checks that a complete matching exists at all and
// returns ErrInfeasible otherwise, which also covers a single participant. On feasible
// input every attempt has a positive chance of success, so Assign terminates with
// probability one. WithFeasibilityCheck(false) together with WithMaxAttempts(0)
// restores the plain retry-forever loop; use a context deadline in that case.
//
// # Randomness
//
// Each Engine owns a *rand.Rand. WithSeed makes results reproducible, which the tests
// rely on. An Engine must not be shared between goroutines.
package santa
