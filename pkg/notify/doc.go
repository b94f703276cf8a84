// Package notify delivers a Secret Santa assignment by email.
//
// Every giver receives exactly one message naming their own recipient and nobody
// else. Messages are rendered with the gift templates from package
// email/templates and handed to any email.EmailSender.
//
// Delivery is sequential by default. WithParallelism bounds concurrent sends.
// A failed send is never ignored: under AbortOnFailure (default) pending sends are
// canceled and the first *DeliveryError is returned, under ContinueOnFailure every
// giver is attempted and the failures are returned joined. Either way the Report
// lists who was notified.
//
//	n := notify.New(sender,
//		notify.WithParallelism(4),
//		notify.WithPolicy(notify.ContinueOnFailure),
//		notify.WithLogger(log),
//	)
//	report, err := n.Notify(ctx, assignment)
//
// Recipient names stay out of the logs unless WithRevealRecipients(true) is set.
package notify
