package notify

import "log/slog"

// Policy decides what happens to pending sends after one fails.
type Policy int

const (
	// AbortOnFailure cancels pending sends and returns the first failure.
	AbortOnFailure Policy = iota
	// ContinueOnFailure attempts every send and returns all failures joined.
	ContinueOnFailure
)

func (p Policy) String() string {
	switch p {
	case AbortOnFailure:
		return "abort"
	case ContinueOnFailure:
		return "continue"
	default:
		return "unknown"
	}
}

const (
	DefaultSubject = "Secret Santa"
	DefaultTag     = "secret-santa"
)

// Option configures a Notifier.
type Option func(*Notifier)

// WithParallelism bounds the number of concurrent sends. Values below 1 mean sequential.
func WithParallelism(n int) Option {
	return func(nt *Notifier) {
		nt.parallelism = max(n, 1)
	}
}

func WithPolicy(p Policy) Option {
	return func(nt *Notifier) {
		nt.policy = p
	}
}

func WithSubject(subject string) Option {
	return func(nt *Notifier) {
		if subject != "" {
			nt.subject = subject
		}
	}
}

func WithTag(tag string) Option {
	return func(nt *Notifier) {
		nt.tag = tag
	}
}

// WithRevealRecipients includes recipient names in delivery logs.
// Off by default so that logs do not spoil the exchange.
func WithRevealRecipients(reveal bool) Option {
	return func(nt *Notifier) {
		nt.reveal = reveal
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(nt *Notifier) {
		if l != nil {
			nt.logger = l
		}
	}
}
