package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/secretsanta/pkg/config"
	"github.com/dmitrymomot/secretsanta/pkg/email"
	"github.com/dmitrymomot/secretsanta/pkg/logger"
	"github.com/dmitrymomot/secretsanta/pkg/notify"
	"github.com/dmitrymomot/secretsanta/pkg/roster"
	"github.com/dmitrymomot/secretsanta/pkg/santa"
)

var ErrNoInput = errors.New("no participants given: use -p or -f")

type appConfig struct {
	Env              string `env:"SANTA_ENV" envDefault:"development"`
	LogLevel         string `env:"SANTA_LOG_LEVEL"`
	LogFormat        string `env:"SANTA_LOG_FORMAT"`
	MaxAttempts      int    `env:"SANTA_MAX_ATTEMPTS" envDefault:"10000"`
	Parallelism      int    `env:"SANTA_PARALLELISM" envDefault:"1"`
	Subject          string `env:"SANTA_SUBJECT" envDefault:"Secret Santa"`
	Tag              string `env:"SANTA_TAG" envDefault:"secret-santa"`
	RevealRecipients bool   `env:"SANTA_REVEAL_RECIPIENTS" envDefault:"false"`

	Email email.Config
}

// Run draws an assignment and, unless opts.DryRun is set, notifies every giver.
// Logs go to logOut; the dry-run listing and the delivery summary go to out.
func Run(ctx context.Context, opts Options, out, logOut io.Writer) error {
	if opts.EnvFile != "" {
		if err := config.LoadEnv(opts.EnvFile); err != nil {
			return err
		}
	}

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if opts.MaxAttempts != nil {
		cfg.MaxAttempts = *opts.MaxAttempts
	}
	if opts.Parallelism != nil {
		cfg.Parallelism = *opts.Parallelism
	}

	log, err := newLogger(cfg, logOut)
	if err != nil {
		return err
	}

	runID := logger.NewRunID()
	ctx = logger.WithRunID(ctx, runID)

	r, err := buildRoster(opts)
	if err != nil {
		return err
	}

	attempts := 0
	engineOpts := []santa.Option{
		santa.WithMaxAttempts(cfg.MaxAttempts),
		santa.WithLogger(log),
		santa.WithAttemptHook(func(a santa.Attempt) { attempts = a.Number }),
	}
	if opts.Seed != nil {
		engineOpts = append(engineOpts, santa.WithSeed(*opts.Seed))
	}

	forbidden := r.Forbidden()
	assignment, err := santa.New(engineOpts...).Assign(ctx, r.Participants, forbidden)
	if err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	if err := assignment.Verify(r.Participants, forbidden); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	log.InfoContext(ctx, "assignment drawn",
		slog.Int("participants", len(r.Participants)),
		slog.Int("exclusions", forbidden.Len()),
		logger.Attempt(attempts),
	)

	if opts.DryRun {
		for _, p := range assignment.Pairings() {
			if _, err := fmt.Fprintf(out, "%s -> %s\n", p.GiverName, p.RecipientName); err != nil {
				return err
			}
		}
		return nil
	}

	sender, err := email.NewSender(ctx, cfg.Email)
	if err != nil {
		return fmt.Errorf("email: %w", err)
	}

	policy := notify.AbortOnFailure
	if opts.ContinueOnError {
		policy = notify.ContinueOnFailure
	}

	notifier := notify.New(sender,
		notify.WithParallelism(cfg.Parallelism),
		notify.WithPolicy(policy),
		notify.WithSubject(cfg.Subject),
		notify.WithTag(cfg.Tag),
		notify.WithRevealRecipients(cfg.RevealRecipients),
		notify.WithLogger(log.With(logger.Provider(cfg.Email.Provider))),
	)

	report, err := notifier.Notify(ctx, assignment)
	if report != nil {
		fmt.Fprintf(out, "notified %d of %d participants\n", len(report.Delivered), len(assignment))
		for _, f := range report.Failed {
			fmt.Fprintf(out, "  failed: %s <%s>: %v\n", f.Giver, f.Address, f.Err)
		}
		if len(report.Skipped) > 0 {
			fmt.Fprintf(out, "  not attempted: %d\n", len(report.Skipped))
		}
	}
	if err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	return nil
}

func newLogger(cfg appConfig, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "secretsanta"),
		logger.WithOutput(w),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	switch f := logger.Format(cfg.LogFormat); f {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	default:
		return nil, fmt.Errorf("SANTA_LOG_FORMAT: unknown format %q", cfg.LogFormat)
	}
	return logger.New(opts...), nil
}

func buildRoster(opts Options) (*roster.Roster, error) {
	r := &roster.Roster{}
	if opts.RosterFile != "" {
		fromFile, err := roster.LoadFile(opts.RosterFile)
		if err != nil {
			return nil, err
		}
		r.Merge(fromFile)
	}
	for _, s := range opts.Participants {
		p, err := roster.ParseParticipant(s)
		if err != nil {
			return nil, err
		}
		r.AddParticipant(p)
	}
	for _, s := range opts.Exclusions {
		pair, err := roster.ParsePair(s)
		if err != nil {
			return nil, err
		}
		r.AddExclusion(pair)
	}

	if len(r.Participants) == 0 {
		return nil, ErrNoInput
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}
