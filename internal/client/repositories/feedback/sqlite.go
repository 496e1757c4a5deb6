package feedback

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lawlink/internal/client/models"
	"github.com/dmitrijs2005/lawlink/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, f models.Feedback) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO feedback (id, rating, category, comment, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, f.ID, f.Rating, f.Category, f.Comment, f.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to add feedback[%s]: %w", f.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Feedback, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, rating, category, comment, created_at
		FROM feedback ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	var out []models.Feedback
	for rows.Next() {
		var (
			f  models.Feedback
			ts int64
		)
		if err := rows.Scan(&f.ID, &f.Rating, &f.Category, &f.Comment, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		f.CreatedAt = time.Unix(0, ts)
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate feedback rows: %w", err)
	}
	return out, nil
}
