package index

import (
	"context"

	"github.com/dmitrijs2005/campusdesk/internal/submissions/models"
)

// Repository records accepted submissions.
type Repository interface {
	// Upsert replaces the current record for s.Filename and appends a history
	// row. An empty s.ID is filled with a fresh UUID.
	Upsert(ctx context.Context, s *models.Submission) error

	// Get returns the current record or common.ErrorNotFound.
	Get(ctx context.Context, filename string) (*models.Submission, error)

	// History returns every accepted version of filename, oldest first.
	History(ctx context.Context, filename string) ([]*models.Submission, error)

	// All returns the current record of every filename, ordered by name.
	All(ctx context.Context) ([]*models.Submission, error)
}
