// Package logger builds log/slog loggers for the secretsanta tools.
//
// New returns a *slog.Logger configured by Option values (format, level, output,
// static attributes, per-environment defaults). Every logger it builds injects the
// run ID stored with WithRunID, so all records of one run can be correlated:
//
//	ctx := logger.WithRunID(context.Background(), logger.NewRunID())
//	log := logger.New(logger.WithEnvironment("development", "secretsanta"))
//	log.InfoContext(ctx, "assignment delivered", logger.Giver("Alice"))
//
// The attribute helpers keep key names consistent across packages. Error returns an
// empty attribute for a nil error, so it can be passed unconditionally.
package logger
