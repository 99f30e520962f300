package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gyulist/gyulist/internal/dbx"
	"github.com/gyulist/gyulist/internal/server/models"
	"github.com/gyulist/gyulist/internal/server/repositories/repomanager"
	"github.com/gyulist/gyulist/internal/timex"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PageBounds clamps a requested page to sane values.
func PageBounds(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// CattleService manages an owner's herd. Every operation is scoped to the
// owner; other users' animals are reported as not found.
type CattleService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewCattleService(db *sql.DB, m repomanager.RepositoryManager) *CattleService {
	return &CattleService{db: db, repomanager: m, now: time.Now}
}

func (s *CattleService) List(ctx context.Context, f models.CattleFilter) ([]models.Cattle, int, error) {
	f.Limit, f.Offset = PageBounds(f.Limit, f.Offset)
	f.Search = strings.TrimSpace(f.Search)

	var v validator
	if f.Status != "" && !models.CattleStatus(f.Status).Valid() {
		v.fail("status", "unknown status")
	}
	if f.GrowthStage != "" && !models.GrowthStage(f.GrowthStage).Valid() {
		v.fail("growthStage", "unknown growth stage")
	}
	if f.Gender != "" && !models.Gender(f.Gender).Valid() {
		v.fail("gender", "unknown gender")
	}
	if err := v.err(); err != nil {
		return nil, 0, err
	}

	items, total, err := s.repomanager.Cattle(s.db).List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing cattle: %w", err)
	}
	return items, total, nil
}

func validateCattleFields(v *validator, p models.CattlePatch) {
	if p.IdentificationNumber != nil && *p.IdentificationNumber <= 0 {
		v.fail("identificationNumber", "must be a positive number")
	}
	if p.EarTagNumber != nil && *p.EarTagNumber < 0 {
		v.fail("earTagNumber", "must not be negative")
	}
	if p.Name != nil && tooLong(*p.Name, 100) {
		v.fail("name", "must be at most 100 characters")
	}
	if p.Gender != nil && !models.Gender(*p.Gender).Valid() {
		v.fail("gender", "must be MALE or FEMALE")
	}
	if p.GrowthStage != nil && !models.GrowthStage(*p.GrowthStage).Valid() {
		v.fail("growthStage", "unknown growth stage")
	}
	if p.Birthday != nil {
		if _, err := timex.ParseDate(*p.Birthday); err != nil {
			v.fail("birthday", "must be YYYY-MM-DD")
		}
	}
	if p.Weight != nil && *p.Weight < 0 {
		v.fail("weight", "must not be negative")
	}
}

// Create registers an animal. Status defaults to HEALTHY.
func (s *CattleService) Create(ctx context.Context, c *models.Cattle) (*models.Cattle, error) {
	var v validator
	if c.IdentificationNumber <= 0 {
		v.fail("identificationNumber", "required")
	}
	validateCattleFields(&v, models.CattlePatch{
		EarTagNumber: c.EarTagNumber,
		Name:         c.Name,
		Gender:       c.Gender,
		GrowthStage:  c.GrowthStage,
		Birthday:     c.Birthday,
		Weight:       c.Weight,
	})
	if c.Status == "" {
		c.Status = models.StatusHealthy
	} else if !c.Status.Valid() {
		v.fail("status", "unknown status")
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	now := s.now()
	c.CreatedAt, c.UpdatedAt = now, now

	out, err := s.repomanager.Cattle(s.db).Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("error creating cattle: %w", err)
	}
	return out, nil
}

func (s *CattleService) Get(ctx context.Context, ownerID, id int64) (*models.Cattle, error) {
	c, err := s.repomanager.Cattle(s.db).Get(ctx, ownerID, id)
	if err != nil {
		return nil, notFoundOr(err, "error getting cattle")
	}
	return c, nil
}

func (s *CattleService) Update(ctx context.Context, ownerID, id int64, p models.CattlePatch) (*models.Cattle, error) {
	var v validator
	validateCattleFields(&v, p)
	if err := v.err(); err != nil {
		return nil, err
	}

	repo := s.repomanager.Cattle(s.db)
	if err := repo.Update(ctx, ownerID, id, p, s.now()); err != nil {
		return nil, notFoundOr(err, "error updating cattle")
	}
	return s.Get(ctx, ownerID, id)
}

func (s *CattleService) Delete(ctx context.Context, ownerID, id int64) error {
	if err := s.repomanager.Cattle(s.db).Delete(ctx, ownerID, id); err != nil {
		return notFoundOr(err, "error deleting cattle")
	}
	return nil
}

// UpdateStatus changes the status and appends a history row in one
// transaction. The history row keeps the previous status.
func (s *CattleService) UpdateStatus(ctx context.Context, ownerID, id int64, status, reason string) (*models.Cattle, error) {
	newStatus := models.CattleStatus(status)
	if !newStatus.Valid() {
		return nil, &ValidationError{Fields: map[string]string{"status": "unknown status"}}
	}
	reason = strings.TrimSpace(reason)
	if tooLong(reason, 500) {
		return nil, &ValidationError{Fields: map[string]string{"reason": "must be at most 500 characters"}}
	}

	var out *models.Cattle
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Cattle(tx)

		current, err := repo.Get(ctx, ownerID, id)
		if err != nil {
			return err
		}

		now := s.now()
		if err := repo.UpdateStatus(ctx, ownerID, id, newStatus, now); err != nil {
			return err
		}

		old := string(current.Status)
		h := &models.StatusHistory{
			CattleID:  id,
			OldStatus: &old,
			NewStatus: newStatus,
			ChangedBy: ownerID,
			ChangedAt: now,
		}
		if reason != "" {
			h.Reason = &reason
		}
		if err := repo.AddHistory(ctx, h); err != nil {
			return err
		}

		out, err = repo.Get(ctx, ownerID, id)
		return err
	})
	if err != nil {
		return nil, notFoundOr(err, "error updating status")
	}
	return out, nil
}

// History lists status changes of an owned animal, newest first.
func (s *CattleService) History(ctx context.Context, ownerID, id int64) ([]models.StatusHistory, error) {
	repo := s.repomanager.Cattle(s.db)
	if _, err := repo.Get(ctx, ownerID, id); err != nil {
		return nil, notFoundOr(err, "error getting cattle")
	}
	h, err := repo.History(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting history: %w", err)
	}
	return h, nil
}
