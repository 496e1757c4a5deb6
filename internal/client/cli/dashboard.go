package cli

import (
	"context"

	"github.com/dmitrijs2005/lawlink/internal/client/client"
	"github.com/dmitrijs2005/lawlink/internal/client/forms"
	"github.com/dmitrijs2005/lawlink/internal/client/models"
	"github.com/dmitrijs2005/lawlink/internal/client/samples"
)

// Dashboard shows the dashboard of the logged-in role.
func (a *App) Dashboard(ctx context.Context) {
	s := a.requireRole(ctx)
	if s == nil {
		return
	}

	if s.Role == models.RoleLawyer {
		d := a.dashboards.LoadLawyer(ctx, a.api)
		a.println(titleStyle.Render("Welcome back, " + d.Profile.Name))
		a.section("Upcoming appointments")
		a.renderTable([]string{"ID", "Client", "Date", "Time", "Reason", "Status"}, appointmentRows(d.Appointments))
		a.section("Client documents")
		a.renderTable([]string{"ID", "Name", "Uploaded", "Size", "Client"}, documentRows(d.Documents, true))
		a.section("Notifications")
		rows := make([][]string, 0, len(d.Notifications))
		for _, n := range d.Notifications {
			rows = append(rows, []string{n.Type, n.Message, n.Time})
		}
		a.renderTable([]string{"Type", "Message", "Time"}, rows)
		return
	}

	d := a.dashboards.LoadClient(ctx, a.api)
	a.section("Your appointments")
	a.renderTable([]string{"ID", "Lawyer", "Date", "Time", "Reason", "Status"}, appointmentRows(d.Appointments))
	a.section("Your documents")
	a.renderTable([]string{"ID", "Name", "Uploaded", "Size"}, documentRows(d.Documents, false))
	a.section("Case progress")
	rows := make([][]string, 0, len(d.Progress))
	for _, p := range d.Progress {
		rows = append(rows, []string{p.Date, p.Title, p.Description})
	}
	a.renderTable([]string{"Date", "Milestone", "Details"}, rows)
}

func (a *App) loadProfile(ctx context.Context) models.LawyerProfile {
	return client.FetchWithFallback(ctx, a.logger, "lawyer_profile", a.api.LawyerProfile, samples.LawyerProfile())
}

func (a *App) Profile(ctx context.Context) {
	if a.requireRole(ctx, models.RoleLawyer) == nil {
		return
	}
	p := a.loadProfile(ctx)
	a.section(p.Name)
	a.renderTable([]string{"Field", "Value"}, [][]string{
		{"Specialization", p.Specialization},
		{"Location", p.Location},
		{"Experience", p.Experience},
		{"Qualifications", p.Qualifications},
		{"Contact", p.Contact},
		{"Bio", p.Bio},
	})
}

// EditProfile prompts for each editable field; an empty answer keeps the
// current value.
func (a *App) EditProfile(ctx context.Context) error {
	if a.requireRole(ctx, models.RoleLawyer) == nil {
		return nil
	}
	current := a.loadProfile(ctx)
	f := forms.NewProfileForm(a.validator, a.api, current)

	err := fill(a, f, []field{
		{name: "name", prompt: "Name [" + current.Name + "]", keep: true},
		{name: "specialization", prompt: "Specialization [" + current.Specialization + "]", keep: true},
		{name: "location", prompt: "Location [" + current.Location + "]", keep: true},
		{name: "bio", prompt: "Bio (empty keeps the current one)", multiline: true, keep: true},
	})
	if err != nil {
		return err
	}

	if submit(ctx, a, f) {
		a.println("Profile updated successfully!")
	}
	return nil
}

// Portal is the lawyer's communication portal: conversations and client
// documents.
func (a *App) Portal(ctx context.Context) {
	if a.requireRole(ctx, models.RoleLawyer) == nil {
		return
	}
	p := a.dashboards.ClientPortal(ctx, a.api)
	a.section("Client conversations (open one with: chat <id>)")
	a.renderTable([]string{"ID", "Client", "Last message", "Unread"}, conversationRows(p.Conversations))
	a.section("Client documents")
	a.renderTable([]string{"ID", "Name", "Uploaded", "Size", "Client"}, documentRows(p.Documents, true))
}
