package shipments

import (
	"context"

	"github.com/gyulist/gyulist/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, s *models.Shipment) (*models.Shipment, error)
	List(ctx context.Context, f models.ShipmentFilter) ([]models.Shipment, int, error)
	Delete(ctx context.Context, ownerID, id int64) error

	ListPlans(ctx context.Context, ownerID int64) ([]models.ShipmentPlan, error)
	UpsertPlan(ctx context.Context, p *models.ShipmentPlan) (*models.ShipmentPlan, error)
	DeletePlan(ctx context.Context, ownerID, cattleID int64) error
}
