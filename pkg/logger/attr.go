package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}

// Attempt records the attempt number of the assignment loop.
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

func Giver(name string) slog.Attr {
	return slog.String("giver", name)
}

func Recipient(name string) slog.Attr {
	return slog.String("recipient", name)
}

// Address records a delivery address under "address".
func Address(addr string) slog.Attr {
	return slog.String("address", addr)
}

func Provider(name string) slog.Attr {
	return slog.String("provider", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
