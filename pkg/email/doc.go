// Package email sends plain transactional emails through a provider-agnostic
// EmailSender interface.
//
// Implementations:
//   - SendmailSender pipes an RFC 5322 message into a local sendmail binary (default)
//   - NewPostmarkClient delivers through the Postmark API
//   - NewSESClient delivers through AWS SES v2
//   - DevSender writes messages to disk instead of sending them
//
// NewSender picks one from Config.Provider:
//
//	var cfg email.Config
//	if err := config.Load(&cfg); err != nil { ... }
//	sender, err := email.NewSender(ctx, cfg)
//	if err != nil { ... }
//
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   "Alice <alice@example.com>",
//	    Subject:  "Secret Santa",
//	    BodyText: "Hey there, it's Secret Santa.  Get a gift for Bob!",
//	})
//
// Every implementation validates SendEmailParams first. Errors wrap ErrInvalidConfig,
// ErrInvalidParams, ErrFailedToSendEmail or ErrUnknownProvider and can be checked
// with errors.Is.
//
// Postmark and SES require a routable SenderEmail; the sendmail default of
// "Secret Santa <santa@localhost>" only suits local delivery.
//
// The templates subpackage renders message bodies.
package email
