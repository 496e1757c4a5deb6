package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/lawlink/internal/client/forms"
	"github.com/dmitrijs2005/lawlink/internal/client/models"
	"github.com/dustin/go-humanize"
)

// Feedback records a rating locally and lists earlier submissions.
func (a *App) Feedback(ctx context.Context) error {
	f := forms.NewFeedbackForm(a.validator, a.repos.Feedback, a.now)

	err := fill(a, f, []field{
		{name: "rating", prompt: "Rating (1-5)"},
		{name: "category", prompt: fmt.Sprintf("Category (%s) [%s]", strings.Join(models.FeedbackCategories, ", "), models.FeedbackCategories[0]), keep: true},
		{name: "comment", prompt: "Comments (optional)", multiline: true},
	})
	if err != nil {
		return err
	}

	if !submit(ctx, a, f) {
		return nil
	}
	a.println("Thank you for your feedback!")

	list, err := a.repos.Feedback.List(ctx)
	if err != nil {
		return fmt.Errorf("loading feedback: %w", err)
	}
	a.section("Your feedback")
	rows := make([][]string, 0, len(list))
	for _, fb := range list {
		rows = append(rows, []string{strings.Repeat("★", fb.Rating), fb.Category, fb.Comment, humanize.RelTime(fb.CreatedAt, a.now(), "ago", "from now")})
	}
	a.renderTable([]string{"Rating", "Category", "Comment", "When"}, rows)
	return nil
}
