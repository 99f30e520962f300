package registrations

import (
	"context"
	"time"

	"github.com/gyulist/gyulist/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, r *models.Registration) error
	GetByEmail(ctx context.Context, email string) (*models.Registration, error)
	GetByID(ctx context.Context, id string) (*models.Registration, error)
	List(ctx context.Context, f models.RegistrationFilter) ([]models.Registration, int, error)
	UpdateStatus(ctx context.Context, id string, status models.RegistrationStatus, at time.Time) error
}
