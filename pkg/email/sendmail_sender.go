package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"net/textproto"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/secretsanta/pkg/validator"
)

// CommandRunner runs an external command with stdin and returns its combined output.
type CommandRunner func(ctx context.Context, name string, args []string, stdin io.Reader) ([]byte, error)

// SendmailOption configures a SendmailSender.
type SendmailOption func(*SendmailSender)

// WithCommandRunner replaces process execution, mainly for tests.
func WithCommandRunner(run CommandRunner) SendmailOption {
	return func(s *SendmailSender) {
		if run != nil {
			s.run = run
		}
	}
}

// WithClock overrides the time used for the Date header.
func WithClock(now func() time.Time) SendmailOption {
	return func(s *SendmailSender) {
		if now != nil {
			s.now = now
		}
	}
}

// SendmailSender hands messages to the local mail transfer agent
// through a sendmail-compatible binary.
type SendmailSender struct {
	path    string
	from    string
	replyTo string
	run     CommandRunner
	now     func() time.Time
}

// NewSendmailSender creates a sender invoking cfg.SendmailPath with "-t -i".
func NewSendmailSender(cfg Config, opts ...SendmailOption) (*SendmailSender, error) {
	if cfg.SendmailPath == "" {
		return nil, fmt.Errorf("%w: SendmailPath is required", ErrInvalidConfig)
	}
	if err := validator.Apply(validator.ValidAddress("SenderEmail", cfg.SenderEmail)); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if cfg.ReplyToEmail != "" {
		if err := validator.Apply(validator.ValidAddress("ReplyToEmail", cfg.ReplyToEmail)); err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
	}

	s := &SendmailSender{
		path:    cfg.SendmailPath,
		from:    cfg.SenderEmail,
		replyTo: cfg.ReplyToEmail,
		run:     execCommand,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *SendmailSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	msg, err := s.compose(params)
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	out, err := s.run(ctx, s.path, []string{"-t", "-i"}, bytes.NewReader(msg))
	if err != nil {
		if detail := strings.TrimSpace(string(out)); detail != "" {
			return errors.Join(ErrFailedToSendEmail, fmt.Errorf("sendmail: %w: %s", err, detail))
		}
		return errors.Join(ErrFailedToSendEmail, fmt.Errorf("sendmail: %w", err))
	}
	return nil
}

// compose renders an RFC 5322 message. With both bodies present the message is
// multipart/alternative, text first.
func (s *SendmailSender) compose(params SendEmailParams) ([]byte, error) {
	from, err := mail.ParseAddress(s.from)
	if err != nil {
		return nil, fmt.Errorf("parse sender: %w", err)
	}
	to, err := mail.ParseAddress(params.SendTo)
	if err != nil {
		return nil, fmt.Errorf("parse recipient: %w", err)
	}

	var buf bytes.Buffer
	header := func(k, v string) {
		fmt.Fprintf(&buf, "%s: %s\r\n", k, v)
	}

	header("From", from.String())
	header("To", to.String())
	if r := replyTo(params, s.replyTo); r != "" {
		addr, err := mail.ParseAddress(r)
		if err != nil {
			return nil, fmt.Errorf("parse reply-to: %w", err)
		}
		header("Reply-To", addr.String())
	}
	header("Subject", mime.QEncoding.Encode("utf-8", params.Subject))
	header("Date", s.now().Format(time.RFC1123Z))
	header("Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), domainOf(from.Address)))
	header("MIME-Version", "1.0")
	if params.Tag != "" {
		header("X-Tag", params.Tag)
	}

	switch {
	case params.BodyText != "" && params.BodyHTML != "":
		mw := multipart.NewWriter(&buf)
		header("Content-Type", mime.FormatMediaType("multipart/alternative", map[string]string{"boundary": mw.Boundary()}))
		buf.WriteString("\r\n")
		if err := writePart(mw, "text/plain", params.BodyText); err != nil {
			return nil, err
		}
		if err := writePart(mw, "text/html", params.BodyHTML); err != nil {
			return nil, err
		}
		if err := mw.Close(); err != nil {
			return nil, err
		}
	case params.BodyHTML != "":
		header("Content-Type", `text/html; charset="utf-8"`)
		header("Content-Transfer-Encoding", "8bit")
		buf.WriteString("\r\n" + params.BodyHTML + "\r\n")
	default:
		header("Content-Type", `text/plain; charset="utf-8"`)
		header("Content-Transfer-Encoding", "8bit")
		buf.WriteString("\r\n" + params.BodyText + "\r\n")
	}
	return buf.Bytes(), nil
}

func writePart(mw *multipart.Writer, contentType, body string) error {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType+`; charset="utf-8"`)
	h.Set("Content-Transfer-Encoding", "8bit")
	w, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, body+"\r\n")
	return err
}

func domainOf(addr string) string {
	if _, domain, ok := strings.Cut(addr, "@"); ok && domain != "" {
		return domain
	}
	return "localhost"
}

func execCommand(ctx context.Context, name string, args []string, stdin io.Reader) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	return cmd.CombinedOutput()
}
