package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gyulist/gyulist/internal/dbx"
	"github.com/gyulist/gyulist/internal/server/models"
	"github.com/gyulist/gyulist/internal/server/repositories/repomanager"
	"github.com/gyulist/gyulist/internal/timex"
)

type ShipmentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewShipmentService(db *sql.DB, m repomanager.RepositoryManager) *ShipmentService {
	return &ShipmentService{db: db, repomanager: m, now: time.Now}
}

func (s *ShipmentService) List(ctx context.Context, f models.ShipmentFilter) ([]models.Shipment, int, error) {
	f.Limit, f.Offset = PageBounds(f.Limit, f.Offset)

	var v validator
	if f.From != "" {
		if _, err := timex.ParseDate(f.From); err != nil {
			v.fail("from", "must be YYYY-MM-DD")
		}
	}
	if f.To != "" {
		if _, err := timex.ParseDate(f.To); err != nil {
			v.fail("to", "must be YYYY-MM-DD")
		}
	}
	if err := v.err(); err != nil {
		return nil, 0, err
	}

	items, total, err := s.repomanager.Shipments(s.db).List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing shipments: %w", err)
	}
	return items, total, nil
}

// Create records a sale. AgeAtShipment is derived from the animal's birthday
// when omitted. With markShipped the animal becomes SHIPPED (with a history
// row) and its shipment plan is dropped, all in one transaction.
func (s *ShipmentService) Create(ctx context.Context, ownerID int64, sh *models.Shipment, markShipped bool) (*models.Shipment, error) {
	var v validator
	if sh.CattleID <= 0 {
		v.fail("cattleId", "required")
	}
	shipDate, err := timex.ParseDate(sh.ShipmentDate)
	if err != nil {
		v.fail("shipmentDate", "must be YYYY-MM-DD")
	}
	if sh.Price < 0 {
		v.fail("price", "must not be negative")
	}
	if sh.Weight != nil && *sh.Weight < 0 {
		v.fail("weight", "must not be negative")
	}
	if sh.AgeAtShipment != nil && *sh.AgeAtShipment < 0 {
		v.fail("ageAtShipment", "must not be negative")
	}
	if sh.Buyer != nil && tooLong(*sh.Buyer, 100) {
		v.fail("buyer", "must be at most 100 characters")
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	var out *models.Shipment
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		cattleRepo := s.repomanager.Cattle(tx)
		shipRepo := s.repomanager.Shipments(tx)

		c, err := cattleRepo.Get(ctx, ownerID, sh.CattleID)
		if err != nil {
			return err
		}

		if sh.AgeAtShipment == nil && c.Birthday != nil {
			if born, err := timex.ParseDate(*c.Birthday); err == nil {
				age := timex.MonthsBetween(born, shipDate)
				sh.AgeAtShipment = &age
			}
		}

		now := s.now()
		sh.CreatedAt, sh.UpdatedAt = now, now
		if out, err = shipRepo.Create(ctx, sh); err != nil {
			return err
		}
		out.CattleName = c.Name

		if !markShipped || c.Status == models.StatusShipped {
			return nil
		}
		if err := cattleRepo.UpdateStatus(ctx, ownerID, c.ID, models.StatusShipped, now); err != nil {
			return err
		}
		old := string(c.Status)
		if err := cattleRepo.AddHistory(ctx, &models.StatusHistory{
			CattleID:  c.ID,
			OldStatus: &old,
			NewStatus: models.StatusShipped,
			ChangedBy: ownerID,
			ChangedAt: now,
		}); err != nil {
			return err
		}
		if err := shipRepo.DeletePlan(ctx, ownerID, c.ID); err != nil && !isNotFound(err) {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, notFoundOr(err, "error creating shipment")
	}
	return out, nil
}

func (s *ShipmentService) Delete(ctx context.Context, ownerID, id int64) error {
	if err := s.repomanager.Shipments(s.db).Delete(ctx, ownerID, id); err != nil {
		return notFoundOr(err, "error deleting shipment")
	}
	return nil
}

func (s *ShipmentService) Plans(ctx context.Context, ownerID int64) ([]models.ShipmentPlan, error) {
	plans, err := s.repomanager.Shipments(s.db).ListPlans(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing plans: %w", err)
	}
	return plans, nil
}

// PutPlan sets the planned shipment month (YYYY-MM) of an owned animal.
func (s *ShipmentService) PutPlan(ctx context.Context, ownerID, cattleID int64, month string) (*models.ShipmentPlan, error) {
	if _, err := timex.ParseMonth(month); err != nil {
		return nil, &ValidationError{Fields: map[string]string{"plannedShipmentMonth": "must be YYYY-MM"}}
	}

	c, err := s.repomanager.Cattle(s.db).Get(ctx, ownerID, cattleID)
	if err != nil {
		return nil, notFoundOr(err, "error getting cattle")
	}

	now := s.now()
	p, err := s.repomanager.Shipments(s.db).UpsertPlan(ctx, &models.ShipmentPlan{
		CattleID:             cattleID,
		PlannedShipmentMonth: month,
		CreatedAt:            now,
		UpdatedAt:            now,
	})
	if err != nil {
		return nil, fmt.Errorf("error saving plan: %w", err)
	}
	p.CattleName = c.Name
	return p, nil
}

func (s *ShipmentService) DeletePlan(ctx context.Context, ownerID, cattleID int64) error {
	if err := s.repomanager.Shipments(s.db).DeletePlan(ctx, ownerID, cattleID); err != nil {
		return notFoundOr(err, "error deleting plan")
	}
	return nil
}
