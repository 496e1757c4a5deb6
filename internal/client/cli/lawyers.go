package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lawlink/internal/client/client"
	"github.com/dmitrijs2005/lawlink/internal/client/forms"
	"github.com/dmitrijs2005/lawlink/internal/client/models"
	"github.com/dmitrijs2005/lawlink/internal/client/samples"
	"github.com/dmitrijs2005/lawlink/internal/client/search"
)

// Lawyers lists lawyers, narrowed by name=, specialization= and location=
// arguments (case-insensitive substring match).
func (a *App) Lawyers(ctx context.Context, args []string) error {
	preds, err := search.ParsePredicates(args)
	if err != nil {
		return fmt.Errorf("%w (use name=, specialization= or location=)", err)
	}

	dataset := client.FetchWithFallback(ctx, a.logger, "lawyers", a.api.Lawyers, samples.Lawyers())
	a.lawyers.SetDataset(dataset)
	a.lawyers.SetPredicates(preds)

	results := a.lawyers.Results()
	a.section(fmt.Sprintf("Lawyers (%d of %d)", len(results), len(dataset)))
	a.renderTable([]string{"ID", "Name", "Specialization", "Location", "Rating", "Experience", "Price"}, lawyerRows(results))
	return nil
}

// Book requests an appointment with the lawyer given as the first argument.
func (a *App) Book(ctx context.Context, args []string) error {
	if a.requireRole(ctx, models.RoleClient) == nil {
		return nil
	}
	if len(args) == 0 {
		a.println("Usage: book <lawyerId>")
		return nil
	}

	f := forms.NewBookingForm(a.validator, a.api, models.ID(args[0]))
	a.printf("Available times: %v\n", forms.BookingTimes)
	err := fill(a, f, []field{
		{name: "date", prompt: "Date (YYYY-MM-DD)"},
		{name: "time", prompt: "Time"},
		{name: "reason", prompt: "Reason for consultation"},
		{name: "notes", prompt: "Additional notes (optional)", multiline: true},
	})
	if err != nil {
		return err
	}

	if submit(ctx, a, f) {
		a.println("Appointment booked successfully!")
	}
	return nil
}
