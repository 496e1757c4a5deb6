package forms

import (
	"context"

	"github.com/dmitrijs2005/lawlink/internal/client/models"
)

type ProfileUpdater interface {
	UpdateLawyerProfile(ctx context.Context, p models.LawyerProfile) error
}

type ProfileDraft struct {
	Name           string `form:"name" validate:"notblank"`
	Specialization string `form:"specialization" validate:"notblank"`
	Location       string `form:"location" validate:"notblank"`
	Bio            string `form:"bio" validate:"max=2000"`
}

func (d *ProfileDraft) Set(field, value string) error {
	switch field {
	case "name":
		d.Name = value
	case "specialization":
		d.Specialization = value
	case "location":
		d.Location = value
	case "bio":
		d.Bio = value
	default:
		return unknownField(field)
	}
	return nil
}

var profileMessages = Messages{
	"name":           "Name is required",
	"specialization": "Specialization is required",
	"location":       "Location is required",
	"bio":            "Bio must be at most 2000 characters",
}

// NewProfileForm edits current, the profile as last loaded.
func NewProfileForm(v *Validator, api ProfileUpdater, current models.LawyerProfile) *Form[ProfileDraft] {
	return newForm(formConfig[ProfileDraft]{
		initial: ProfileDraft{
			Name:           current.Name,
			Specialization: current.Specialization,
			Location:       current.Location,
			Bio:            current.Bio,
		},
		set:      (*ProfileDraft).Set,
		validate: func(d ProfileDraft) ErrorMap { return v.Validate(d, profileMessages) },
		submit: func(ctx context.Context, d ProfileDraft) error {
			p := current
			p.Name, p.Specialization, p.Location, p.Bio = d.Name, d.Specialization, d.Location, d.Bio
			return api.UpdateLawyerProfile(ctx, p)
		},
		fallback: "Failed to update profile. Please try again.",
	})
}
