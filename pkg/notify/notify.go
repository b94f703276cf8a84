package notify

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/secretsanta/pkg/email"
	"github.com/dmitrymomot/secretsanta/pkg/email/templates"
	"github.com/dmitrymomot/secretsanta/pkg/logger"
	"github.com/dmitrymomot/secretsanta/pkg/santa"
)

// Report summarizes a Notify call.
type Report struct {
	Delivered []string         // giver names, sorted
	Failed    []*DeliveryError // sorted by giver
	Skipped   []string         // givers never attempted after an abort or cancellation, sorted
}

// Notifier delivers each giver their recipient's name.
type Notifier struct {
	sender      email.EmailSender
	parallelism int
	policy      Policy
	subject     string
	tag         string
	reveal      bool
	logger      *slog.Logger
}

// New creates a Notifier that sends through sender. Defaults: sequential delivery,
// AbortOnFailure, DefaultSubject and DefaultTag, logging discarded.
func New(sender email.EmailSender, opts ...Option) *Notifier {
	n := &Notifier{
		sender:      sender,
		parallelism: 1,
		policy:      AbortOnFailure,
		subject:     DefaultSubject,
		tag:         DefaultTag,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.logger = n.logger.With(logger.Component("notify"))
	return n
}

// Compose builds the message for one pairing. Only the giver's own recipient is named.
func (n *Notifier) Compose(ctx context.Context, p santa.Pairing) (email.SendEmailParams, error) {
	if p.GiverContact == "" {
		return email.SendEmailParams{}, ErrNoContact
	}

	data := templates.GiftData{GiverName: p.GiverName, RecipientName: p.RecipientName}
	html, err := templates.Render(ctx, templates.GiftAssignment(data))
	if err != nil {
		return email.SendEmailParams{}, err
	}

	return email.SendEmailParams{
		SendTo:   sendTo(p),
		Subject:  n.subject,
		BodyText: templates.GiftAssignmentText(data),
		BodyHTML: html,
		Tag:      n.tag,
	}, nil
}

// Notify sends one message per pairing in a. Under AbortOnFailure the first failure
// cancels pending sends and is returned as a *DeliveryError. Under ContinueOnFailure
// every pairing is attempted and all failures are returned joined. The report is
// always returned, also on error.
func (n *Notifier) Notify(ctx context.Context, a santa.Assignment) (*Report, error) {
	if n.sender == nil {
		return nil, ErrNoSender
	}

	start := time.Now()
	report := &Report{}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(n.parallelism)

	for _, p := range a.Pairings() {
		g.Go(func() error {
			if gctx.Err() != nil {
				mu.Lock()
				report.Skipped = append(report.Skipped, p.GiverName)
				mu.Unlock()
				return nil
			}

			err := n.deliver(gctx, p)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed = append(report.Failed, err)
				if n.policy == AbortOnFailure {
					return err
				}
				return nil
			}
			report.Delivered = append(report.Delivered, p.GiverName)
			return nil
		})
	}

	err := g.Wait()
	report.sort()

	n.logger.InfoContext(ctx, "notification run finished",
		slog.Int("delivered", len(report.Delivered)),
		slog.Int("failed", len(report.Failed)),
		slog.Int("skipped", len(report.Skipped)),
		slog.String("policy", n.policy.String()),
		logger.Duration(time.Since(start)),
	)

	if err != nil {
		return report, err
	}
	if len(report.Failed) > 0 {
		errs := make([]error, len(report.Failed))
		for i, f := range report.Failed {
			errs[i] = f
		}
		return report, errors.Join(errs...)
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

func (n *Notifier) deliver(ctx context.Context, p santa.Pairing) *DeliveryError {
	attrs := []slog.Attr{logger.Giver(p.GiverName), logger.Address(p.GiverContact)}
	if n.reveal {
		attrs = append(attrs, logger.Recipient(p.RecipientName))
	}

	params, err := n.Compose(ctx, p)
	if err == nil {
		err = n.sender.SendEmail(ctx, params)
	}
	if err != nil {
		n.logger.LogAttrs(ctx, slog.LevelError, "gift assignment not delivered", append(attrs, logger.Error(err))...)
		return &DeliveryError{Giver: p.GiverName, Address: p.GiverContact, Err: err}
	}

	n.logger.LogAttrs(ctx, slog.LevelInfo, "gift assignment delivered", attrs...)
	return nil
}

func (r *Report) sort() {
	slices.Sort(r.Delivered)
	slices.Sort(r.Skipped)
	slices.SortFunc(r.Failed, func(x, y *DeliveryError) int {
		return cmp.Compare(x.Giver, y.Giver)
	})
}

func sendTo(p santa.Pairing) string {
	addr, err := mail.ParseAddress(p.GiverContact)
	if err != nil {
		return p.GiverContact
	}
	if addr.Name == "" {
		addr.Name = p.GiverName
	}
	return addr.String()
}
