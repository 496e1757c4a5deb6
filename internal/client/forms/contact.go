package forms

import (
	"context"

	"github.com/dmitrijs2005/lawlink/internal/client/models"
)

type ContactSender interface {
	Contact(ctx context.Context, msg models.ContactMessage) error
}

type ContactDraft struct {
	Name    string `form:"name" validate:"notblank"`
	Email   string `form:"email" validate:"required,looseemail"`
	Subject string `form:"subject" validate:"notblank"`
	Message string `form:"message" validate:"notblank"`
}

func (d *ContactDraft) Set(field, value string) error {
	switch field {
	case "name":
		d.Name = value
	case "email":
		d.Email = value
	case "subject":
		d.Subject = value
	case "message":
		d.Message = value
	default:
		return unknownField(field)
	}
	return nil
}

var contactMessages = Messages{
	"name":             "Name is required",
	"email.required":   "Email is required",
	"email.looseemail": "Email is invalid",
	"subject":          "Subject is required",
	"message":          "Message is required",
}

func NewContactForm(v *Validator, api ContactSender) *Form[ContactDraft] {
	return newForm(formConfig[ContactDraft]{
		set:      (*ContactDraft).Set,
		validate: func(d ContactDraft) ErrorMap { return v.Validate(d, contactMessages) },
		submit: func(ctx context.Context, d ContactDraft) error {
			return api.Contact(ctx, models.ContactMessage(d))
		},
		fallback: "Failed to send message. Please try again.",
		reset:    true,
	})
}
