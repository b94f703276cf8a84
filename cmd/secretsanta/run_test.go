package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/secretsanta/pkg/config"
	"github.com/dmitrymomot/secretsanta/pkg/roster"
	"github.com/dmitrymomot/secretsanta/pkg/santa"
)

func parse(t *testing.T, args ...string) Options {
	t.Helper()
	fs := flag.NewFlagSet("secretsanta", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts, err := ParseOptions(fs, args)
	require.NoError(t, err)
	return opts
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	var out, logs bytes.Buffer
	err := Run(context.Background(), parse(t, args...), &out, &logs)
	return out.String(), logs.String(), err
}

func TestParseOptions(t *testing.T) {
	t.Run("repeatable and optional flags", func(t *testing.T) {
		opts := parse(t,
			"-p", "Alice:alice@example.com",
			"-p", "Bob <bob@example.com>",
			"-x", "Alice,Bob",
			"-x", "Carol,Dave",
			"-seed", "42",
			"-max-attempts", "0",
			"-dry-run",
		)
		assert.Equal(t, []string{"Alice:alice@example.com", "Bob <bob@example.com>"}, opts.Participants)
		assert.Equal(t, []string{"Alice,Bob", "Carol,Dave"}, opts.Exclusions)
		require.NotNil(t, opts.Seed)
		assert.EqualValues(t, 42, *opts.Seed)
		require.NotNil(t, opts.MaxAttempts)
		assert.Zero(t, *opts.MaxAttempts)
		assert.Nil(t, opts.Parallelism)
		assert.True(t, opts.DryRun)
		assert.False(t, opts.ContinueOnError)
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, args := range [][]string{
			{"-seed", "-1"},
			{"-parallel", "many"},
			{"-unknown"},
		} {
			fs := flag.NewFlagSet("secretsanta", flag.ContinueOnError)
			fs.SetOutput(io.Discard)
			_, err := ParseOptions(fs, args)
			assert.Error(t, err, args)
		}
	})

	t.Run("help", func(t *testing.T) {
		fs := flag.NewFlagSet("secretsanta", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		_, err := ParseOptions(fs, []string{"-h"})
		assert.ErrorIs(t, err, flag.ErrHelp)
	})
}

func TestRun_DryRun(t *testing.T) {
	args := []string{
		"-dry-run", "-seed", "7",
		"-p", "Alice:alice@example.com",
		"-p", "Bob:bob@example.com",
		"-p", "Carol:carol@example.com",
		"-p", "Dave:dave@example.com",
		"-x", "alice,bob",
	}

	out, logs, err := run(t, args...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		giver, recipient, ok := strings.Cut(line, " -> ")
		require.True(t, ok, line)
		assert.NotEqual(t, giver, recipient)
		assert.NotEqual(t, "Alice -> Bob", line)
		assert.NotEqual(t, "Bob -> Alice", line)
	}
	assert.True(t, strings.HasPrefix(lines[0], "Alice -> "))

	assert.Contains(t, logs, "assignment drawn")
	assert.Contains(t, logs, "run_id=")
	assert.Contains(t, logs, "service=secretsanta")

	again, _, err := run(t, args...)
	require.NoError(t, err)
	assert.Equal(t, out, again, "same seed, same draw")
}

func TestRun_RosterFile(t *testing.T) {
	out, _, err := run(t, "-dry-run", "-f", "testdata/team.yaml", "-p", "Eve <eve@example.com>")
	require.NoError(t, err)

	r, err := roster.LoadFile("testdata/team.yaml")
	require.NoError(t, err)
	r.AddParticipant(santa.Participant{Name: "Eve", Contact: "eve@example.com"})

	a := santa.Assignment{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		giver, recipient, ok := strings.Cut(line, " -> ")
		require.True(t, ok)
		for _, p := range r.Participants {
			if p.Name == giver {
				a[giver] = santa.Pairing{GiverName: giver, GiverContact: p.Contact, RecipientName: recipient}
			}
		}
	}
	assert.NoError(t, a.Verify(r.Participants, r.Forbidden()))
}

func TestRun_DeliversWithDevProvider(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EMAIL_PROVIDER", "dev")
	t.Setenv("EMAIL_DEV_DIR", dir)
	t.Setenv("SANTA_PARALLELISM", "2")

	out, logs, err := run(t,
		"-p", "Alice:alice@example.com",
		"-p", "Bob:bob@example.com",
		"-p", "Carol:carol@example.com",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "notified 3 of 3 participants")
	assert.Contains(t, logs, "provider=dev")
	assert.NotContains(t, logs, "recipient=")

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestRun_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "santa.env")
	content := "EMAIL_PROVIDER=dev\nEMAIL_DEV_DIR=" + filepath.Join(dir, "mail") + "\nSANTA_SUBJECT=\"Team exchange\"\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))
	t.Cleanup(func() {
		for _, k := range []string{"EMAIL_PROVIDER", "EMAIL_DEV_DIR", "SANTA_SUBJECT"} {
			os.Unsetenv(k)
		}
	})

	out, _, err := run(t,
		"-env-file", envFile,
		"-p", "Alice:alice@example.com",
		"-p", "Bob:bob@example.com",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "notified 2 of 2 participants")

	meta, err := filepath.Glob(filepath.Join(dir, "mail", "*.json"))
	require.NoError(t, err)
	require.Len(t, meta, 2)
	b, err := os.ReadFile(meta[0])
	require.NoError(t, err)
	assert.Contains(t, string(b), `"subject": "Team exchange"`)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "no participants",
			args:    []string{"-dry-run"},
			wantErr: ErrNoInput,
		},
		{
			name:    "malformed participant",
			args:    []string{"-dry-run", "-p", "Alice"},
			wantErr: roster.ErrInvalidParticipant,
		},
		{
			name:    "single participant",
			args:    []string{"-dry-run", "-p", "Alice:alice@example.com"},
			wantErr: roster.ErrInvalidRoster,
		},
		{
			name: "unknown name in exclusion",
			args: []string{"-dry-run",
				"-p", "Alice:alice@example.com", "-p", "Bob:bob@example.com",
				"-x", "Alice,Zed",
			},
			wantErr: roster.ErrInvalidRoster,
		},
		{
			name: "no valid assignment",
			args: []string{"-dry-run",
				"-p", "Alice:alice@example.com",
				"-p", "Bob:bob@example.com",
				"-p", "Carol:carol@example.com",
				"-x", "Alice,Bob", "-x", "Alice,Carol",
			},
			wantErr: santa.ErrInfeasible,
		},
		{
			name:    "missing roster file",
			args:    []string{"-dry-run", "-f", "testdata/missing.yaml"},
			wantErr: roster.ErrReadingFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRun_UnknownLogFormat(t *testing.T) {
	t.Setenv("SANTA_LOG_FORMAT", "xml")

	_, _, err := run(t, "-dry-run", "-p", "Alice:alice@example.com", "-p", "Bob:bob@example.com")
	assert.ErrorContains(t, err, "unknown format")
}

func TestRun_UnknownProvider(t *testing.T) {
	t.Setenv("EMAIL_PROVIDER", "pigeon")

	_, _, err := run(t, "-p", "Alice:alice@example.com", "-p", "Bob:bob@example.com")
	assert.ErrorContains(t, err, "pigeon")
}
