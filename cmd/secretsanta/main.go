// Command secretsanta draws a Secret Santa assignment and emails every giver the
// name of their recipient.
//
//	secretsanta -p "Alice:alice@example.com" -p "Bob <bob@example.com>" \
//		-p "Carol:carol@example.com" -x "Alice,Bob"
//	secretsanta -f family.yaml -dry-run
//
// Delivery is configured through the environment (EMAIL_PROVIDER, SENDER_EMAIL, ...),
// optionally read from a .env file given with -env-file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	fs := flag.NewFlagSet("secretsanta", flag.ContinueOnError)
	opts, err := ParseOptions(fs, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Run(ctx, opts, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "secretsanta: %v\n", err)
		stop()
		os.Exit(1)
	}
}
