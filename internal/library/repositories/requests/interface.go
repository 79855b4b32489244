package requests

import (
	"context"

	"github.com/dmitrijs2005/campusdesk/internal/library/models"
)

// Repository loads and stores the full pending collection in insertion order.
type Repository interface {
	Load(ctx context.Context) ([]models.Request, error)
	Save(ctx context.Context, pending []models.Request) error
}
