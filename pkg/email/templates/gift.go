package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// GiftData is what a giver learns about their assignment.
type GiftData struct {
	GiverName     string
	RecipientName string
}

// GiftAssignmentText is the plain text body sent to a giver.
func GiftAssignmentText(data GiftData) string {
	return fmt.Sprintf("Hey there, it's Secret Santa.  Get a gift for %s!", data.RecipientName)
}

// GiftAssignment renders the HTML body sent to a giver. Names are escaped.
func GiftAssignment(data GiftData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		greeting := "Hey there"
		if data.GiverName != "" {
			greeting = "Hey there, " + data.GiverName
		}
		_, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html><body style="font-family:sans-serif">`+
				`<p>%s, it's Secret Santa.</p>`+
				`<p>Get a gift for <strong>%s</strong>!</p>`+
				`</body></html>`,
			templ.EscapeString(greeting),
			templ.EscapeString(data.RecipientName),
		)
		return err
	})
}
