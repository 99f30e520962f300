package events

import (
	"context"

	"github.com/gyulist/gyulist/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, e *models.Event) (*models.Event, error)
	List(ctx context.Context, f models.EventFilter) ([]models.Event, error)
	Delete(ctx context.Context, ownerID, id int64) error
}
