package main

import (
	"flag"
	"strconv"
	"strings"
)

// Options are the command line settings. Unset numeric flags fall back to appConfig.
type Options struct {
	Participants    []string
	Exclusions      []string
	RosterFile      string
	DryRun          bool
	Seed            *uint64
	MaxAttempts     *int
	Parallelism     *int
	ContinueOnError bool
	EnvFile         string
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, "; ")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// ParseOptions parses args into Options.
func ParseOptions(fs *flag.FlagSet, args []string) (Options, error) {
	var (
		opts         Options
		participants stringList
		exclusions   stringList
	)

	fs.Var(&participants, "p", `participant as "Name:email" or "Name <email>" (repeatable)`)
	fs.Var(&exclusions, "x", `pair that must not be matched, as "A,B" (repeatable)`)
	fs.StringVar(&opts.RosterFile, "f", "", "YAML roster file with participants and exclusions")
	fs.BoolVar(&opts.DryRun, "dry-run", false, "print the assignment instead of sending email")
	fs.BoolVar(&opts.ContinueOnError, "continue-on-error", false, "keep notifying after a failed delivery")
	fs.StringVar(&opts.EnvFile, "env-file", "", "load environment variables from this file first")
	fs.Func("seed", "seed the random source for a reproducible draw", func(v string) error {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return err
		}
		opts.Seed = &n
		return nil
	})
	fs.Func("max-attempts", "give up after this many attempts, 0 for no limit (default $SANTA_MAX_ATTEMPTS)", intFlag(&opts.MaxAttempts))
	fs.Func("parallel", "number of concurrent deliveries (default $SANTA_PARALLELISM)", intFlag(&opts.Parallelism))

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}

	opts.Participants = participants
	opts.Exclusions = exclusions
	return opts, nil
}

func intFlag(dst **int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst = &n
		return nil
	}
}
