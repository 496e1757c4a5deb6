package cli

import (
	"context"

	"github.com/dmitrijs2005/lawlink/internal/client/forms"
)

func (a *App) Contact(ctx context.Context) error {
	f := forms.NewContactForm(a.validator, a.api)

	err := fill(a, f, []field{
		{name: "name", prompt: "Your name"},
		{name: "email", prompt: "Your email"},
		{name: "subject", prompt: "Subject"},
		{name: "message", prompt: "Message", multiline: true},
	})
	if err != nil {
		return err
	}

	if submit(ctx, a, f) {
		a.println("Thank you! Your message has been sent.")
	}
	return nil
}
