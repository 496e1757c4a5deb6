// Package feedback stores submitted platform feedback locally.
package feedback

import (
	"context"

	"github.com/dmitrijs2005/lawlink/internal/client/models"
)

type Repository interface {
	Add(ctx context.Context, f models.Feedback) error
	// List returns entries newest first.
	List(ctx context.Context) ([]models.Feedback, error)
}
