package forms

import (
	"context"

	"github.com/dmitrijs2005/lawlink/internal/client/models"
)

type AppointmentCreator interface {
	CreateAppointment(ctx context.Context, req models.AppointmentRequest) error
}

type BookingDraft struct {
	LawyerID string `form:"lawyerId" validate:"required"`
	Date     string `form:"date" validate:"required,isodate,notpast"`
	Time     string `form:"time" validate:"required"`
	Reason   string `form:"reason" validate:"notblank"`
	Notes    string `form:"notes"`
}

func (d *BookingDraft) Set(field, value string) error {
	switch field {
	case "lawyerId":
		d.LawyerID = value
	case "date":
		d.Date = value
	case "time":
		d.Time = value
	case "reason":
		d.Reason = value
	case "notes":
		d.Notes = value
	default:
		return unknownField(field)
	}
	return nil
}

var bookingMessages = Messages{
	"lawyerId":      "Please select a lawyer",
	"date.required": "Please select a date",
	"date.isodate":  "Please enter the date as YYYY-MM-DD",
	"date.notpast":  "Please select a future date",
	"time":          "Please select a time",
	"reason":        "Please provide a reason for the appointment",
}

// BookingTimes are the selectable appointment slots.
var BookingTimes = []string{"09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00"}

// NewBookingForm books with the lawyer preselected when lawyerID is set.
func NewBookingForm(v *Validator, api AppointmentCreator, lawyerID models.ID) *Form[BookingDraft] {
	return newForm(formConfig[BookingDraft]{
		initial:  BookingDraft{LawyerID: lawyerID.String()},
		set:      (*BookingDraft).Set,
		validate: func(d BookingDraft) ErrorMap { return v.Validate(d, bookingMessages) },
		submit: func(ctx context.Context, d BookingDraft) error {
			return api.CreateAppointment(ctx, models.AppointmentRequest{
				LawyerID: models.ID(d.LawyerID),
				Date:     d.Date,
				Time:     d.Time,
				Reason:   d.Reason,
				Notes:    d.Notes,
			})
		},
		fallback: "Failed to book appointment. Please try again.",
	})
}
