// Package dashboard loads the role dashboards. Every feed is fetched
// concurrently and falls back to its own sample data on failure, so a
// dashboard always renders.
package dashboard

import (
	"context"

	"github.com/dmitrijs2005/lawlink/internal/client/client"
	"github.com/dmitrijs2005/lawlink/internal/client/models"
	"github.com/dmitrijs2005/lawlink/internal/client/samples"
	"github.com/dmitrijs2005/lawlink/internal/logging"
	"golang.org/x/sync/errgroup"
)

type ClientFeeds interface {
	Appointments(ctx context.Context) ([]models.Appointment, error)
	Documents(ctx context.Context) ([]models.Document, error)
	CaseProgress(ctx context.Context) ([]models.CaseProgress, error)
}

type LawyerFeeds interface {
	LawyerAppointments(ctx context.Context) ([]models.Appointment, error)
	LawyerDocuments(ctx context.Context) ([]models.Document, error)
	LawyerNotifications(ctx context.Context) ([]models.Notification, error)
	LawyerProfile(ctx context.Context) (models.LawyerProfile, error)
	LawyerChats(ctx context.Context) ([]models.Conversation, error)
}

type Aggregator struct {
	logger logging.Logger
}

func New(logger logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Aggregator{logger: logger}
}

// feed runs one fallback fetch as a group member. Members never return an
// error, so one failing feed cannot cancel the others.
func feed[T any](ctx context.Context, g *errgroup.Group, logger logging.Logger, name string, fetch func(context.Context) (T, error), sample func() T, dst *T) {
	g.Go(func() error {
		*dst = client.FetchWithFallback(ctx, logger, name, fetch, sample())
		return nil
	})
}

// LoadClient fetches appointments, documents and case progress.
func (a *Aggregator) LoadClient(ctx context.Context, api ClientFeeds) models.ClientDashboard {
	var d models.ClientDashboard
	g := new(errgroup.Group)

	feed(ctx, g, a.logger, "appointments", api.Appointments, samples.ClientAppointments, &d.Appointments)
	feed(ctx, g, a.logger, "documents", api.Documents, samples.ClientDocuments, &d.Documents)
	feed(ctx, g, a.logger, "case_progress", api.CaseProgress, samples.CaseProgress, &d.Progress)

	_ = g.Wait()
	return d
}

// LoadLawyer fetches appointments, documents, notifications and profile.
func (a *Aggregator) LoadLawyer(ctx context.Context, api LawyerFeeds) models.LawyerDashboard {
	var d models.LawyerDashboard
	g := new(errgroup.Group)

	feed(ctx, g, a.logger, "lawyer_appointments", api.LawyerAppointments, samples.LawyerAppointments, &d.Appointments)
	feed(ctx, g, a.logger, "lawyer_documents", api.LawyerDocuments, samples.LawyerDocuments, &d.Documents)
	feed(ctx, g, a.logger, "notifications", api.LawyerNotifications, samples.Notifications, &d.Notifications)
	feed(ctx, g, a.logger, "lawyer_profile", api.LawyerProfile, samples.LawyerProfile, &d.Profile)

	_ = g.Wait()
	return d
}

// ClientPortal fetches the lawyer's conversations and client documents.
func (a *Aggregator) ClientPortal(ctx context.Context, api LawyerFeeds) models.ClientPortal {
	var p models.ClientPortal
	g := new(errgroup.Group)

	feed(ctx, g, a.logger, "lawyer_chats", api.LawyerChats, samples.LawyerConversations, &p.Conversations)
	feed(ctx, g, a.logger, "lawyer_documents", api.LawyerDocuments, samples.LawyerDocuments, &p.Documents)

	_ = g.Wait()
	return p
}
