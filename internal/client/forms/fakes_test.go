package forms

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/lawlink/internal/client/client"
	"github.com/dmitrijs2005/lawlink/internal/client/models"
)

var fixedNow = time.Date(2024, 5, 10, 15, 30, 0, 0, time.Local)

func testValidator() *Validator {
	return NewValidator(func() time.Time { return fixedNow })
}

type fakeAuth struct {
	mu    sync.Mutex
	cred  *models.Credentials
	reg   *models.Registration
	err   error
	calls int
}

func (f *fakeAuth) Login(_ context.Context, c models.Credentials) (models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.cred = &c
	return models.Session{Token: "t", Role: c.Role}, f.err
}

func (f *fakeAuth) Register(_ context.Context, r models.Registration) (models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.reg = &r
	return models.Session{Token: "t", Role: r.Role}, f.err
}

type fakeBooking struct {
	calls   int
	got     models.AppointmentRequest
	err     error
	started chan struct{}
	release chan struct{}
}

func (f *fakeBooking) CreateAppointment(ctx context.Context, req models.AppointmentRequest) error {
	f.calls++
	f.got = req
	if f.started != nil {
		close(f.started)
		<-f.release
	}
	return f.err
}

type fakeContact struct {
	got []models.ContactMessage
	err error
}

func (f *fakeContact) Contact(_ context.Context, m models.ContactMessage) error {
	f.got = append(f.got, m)
	return f.err
}

type fakeUploader struct {
	up   client.Upload
	body []byte
	err  error
}

func (f *fakeUploader) UploadDocument(_ context.Context, up client.Upload, progress client.ProgressFunc) error {
	f.up = up
	f.body, _ = io.ReadAll(up.Body)
	if f.err == nil && progress != nil {
		progress(100)
	}
	return f.err
}

type fakeProfile struct {
	got models.LawyerProfile
	err error
}

func (f *fakeProfile) UpdateLawyerProfile(_ context.Context, p models.LawyerProfile) error {
	f.got = p
	return f.err
}

type fakeFeedbackStore struct {
	added []models.Feedback
}

func (f *fakeFeedbackStore) Add(_ context.Context, fb models.Feedback) error {
	f.added = append(f.added, fb)
	return nil
}
