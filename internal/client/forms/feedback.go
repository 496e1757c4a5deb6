package forms

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/lawlink/internal/client/models"
	"github.com/google/uuid"
)

// FeedbackStore persists submitted feedback.
type FeedbackStore interface {
	Add(ctx context.Context, f models.Feedback) error
}

type FeedbackDraft struct {
	Rating   int    `form:"rating" validate:"min=1,max=5"`
	Category string `form:"category" validate:"feedbackcategory"`
	Comment  string `form:"comment"`
}

func (d *FeedbackDraft) Set(field, value string) error {
	switch field {
	case "rating":
		n, err := parseInt(field, strings.TrimSpace(value))
		if err != nil {
			return err
		}
		d.Rating = n
	case "category":
		d.Category = value
	case "comment":
		d.Comment = value
	default:
		return unknownField(field)
	}
	return nil
}

var feedbackMessages = Messages{
	"rating":   "Please select a rating",
	"category": "Please choose a category",
}

func NewFeedbackForm(v *Validator, store FeedbackStore, now func() time.Time) *Form[FeedbackDraft] {
	if now == nil {
		now = time.Now
	}
	return newForm(formConfig[FeedbackDraft]{
		initial:  FeedbackDraft{Category: models.FeedbackCategories[0]},
		set:      (*FeedbackDraft).Set,
		validate: func(d FeedbackDraft) ErrorMap { return v.Validate(d, feedbackMessages) },
		submit: func(ctx context.Context, d FeedbackDraft) error {
			return store.Add(ctx, models.Feedback{
				ID:        uuid.NewString(),
				Rating:    d.Rating,
				Category:  d.Category,
				Comment:   strings.TrimSpace(d.Comment),
				CreatedAt: now(),
			})
		},
		fallback: "Failed to save feedback. Please try again.",
		reset:    true,
	})
}
