package httpapi

import (
	"context"
	"time"

	"github.com/gyulist/gyulist/internal/server/models"
	"github.com/gyulist/gyulist/internal/server/services"
)

type userSvc interface {
	Register(ctx context.Context, email, password, userName string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Verify(token string) (int64, error)
	Get(ctx context.Context, callerID, id int64) (*models.User, error)
	UpdateTheme(ctx context.Context, callerID, id int64, theme string) (*models.User, error)
}

type cattleSvc interface {
	List(ctx context.Context, f models.CattleFilter) ([]models.Cattle, int, error)
	Create(ctx context.Context, c *models.Cattle) (*models.Cattle, error)
	Get(ctx context.Context, ownerID, id int64) (*models.Cattle, error)
	Update(ctx context.Context, ownerID, id int64, p models.CattlePatch) (*models.Cattle, error)
	Delete(ctx context.Context, ownerID, id int64) error
	UpdateStatus(ctx context.Context, ownerID, id int64, status, reason string) (*models.Cattle, error)
	History(ctx context.Context, ownerID, id int64) ([]models.StatusHistory, error)
}

type eventSvc interface {
	List(ctx context.Context, f models.EventFilter) ([]models.Event, error)
	Create(ctx context.Context, ownerID int64, e *models.Event) (*models.Event, error)
	Delete(ctx context.Context, ownerID, id int64) error
}

type kpiSvc interface {
	Breeding(ctx context.Context, ownerID int64, from, to time.Time) (*services.BreedingReport, error)
}

type shipmentSvc interface {
	List(ctx context.Context, f models.ShipmentFilter) ([]models.Shipment, int, error)
	Create(ctx context.Context, ownerID int64, sh *models.Shipment, markShipped bool) (*models.Shipment, error)
	Delete(ctx context.Context, ownerID, id int64) error
	Plans(ctx context.Context, ownerID int64) ([]models.ShipmentPlan, error)
	PutPlan(ctx context.Context, ownerID, cattleID int64, month string) (*models.ShipmentPlan, error)
	DeletePlan(ctx context.Context, ownerID, cattleID int64) error
}

type registrationSvc interface {
	PreRegister(ctx context.Context, in services.PreRegisterInput) (*services.PreRegisterResult, error)
	List(ctx context.Context, f models.RegistrationFilter) ([]models.Registration, int, error)
	UpdateStatus(ctx context.Context, id string, status *string) (*models.Registration, error)
	EmailLogs(ctx context.Context, email string, limit, offset int) ([]models.EmailLog, int, error)
}
