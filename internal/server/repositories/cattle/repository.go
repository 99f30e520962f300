// Package cattle persists animals and their status history. Every query is
// scoped to the owning user.
package cattle

import (
	"context"
	"time"

	"github.com/gyulist/gyulist/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.Cattle) (*models.Cattle, error)
	Get(ctx context.Context, ownerID, id int64) (*models.Cattle, error)
	List(ctx context.Context, f models.CattleFilter) ([]models.Cattle, int, error)
	Update(ctx context.Context, ownerID, id int64, p models.CattlePatch, at time.Time) error
	UpdateStatus(ctx context.Context, ownerID, id int64, status models.CattleStatus, at time.Time) error
	Delete(ctx context.Context, ownerID, id int64) error
	AddHistory(ctx context.Context, h *models.StatusHistory) error
	History(ctx context.Context, cattleID int64) ([]models.StatusHistory, error)
}
