package shipments

import (
	"context"
	"fmt"
	"strings"

	"github.com/gyulist/gyulist/internal/common"
	"github.com/gyulist/gyulist/internal/dbx"
	"github.com/gyulist/gyulist/internal/server/models"
	"github.com/gyulist/gyulist/internal/timex"
)

type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

const ownedCattle = `cattle_id IN (SELECT cattle_id FROM cattle WHERE owner_user_id = ?)`

func (r *SQLRepository) Create(ctx context.Context, s *models.Shipment) (*models.Shipment, error) {
	query :=
		`INSERT INTO shipments (cattle_id, shipment_date, price, weight, age_at_shipment, buyer, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 RETURNING shipment_id`

	err := r.db.QueryRowContext(ctx, query,
		s.CattleID, s.ShipmentDate, s.Price, s.Weight, s.AgeAtShipment, s.Buyer, s.Notes,
		timex.FormatTimestamp(s.CreatedAt), timex.FormatTimestamp(s.UpdatedAt)).Scan(&s.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

// List returns shipments newest first with the total count for paging.
func (r *SQLRepository) List(ctx context.Context, f models.ShipmentFilter) ([]models.Shipment, int, error) {
	conds := []string{"c.owner_user_id = ?"}
	args := []any{f.OwnerUserID}
	if f.From != "" {
		conds = append(conds, "s.shipment_date >= ?")
		args = append(args, f.From)
	}
	if f.To != "" {
		conds = append(conds, "s.shipment_date <= ?")
		args = append(args, f.To)
	}
	from := ` FROM shipments s JOIN cattle c ON c.cattle_id = s.cattle_id WHERE ` + strings.Join(conds, " AND ")

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*)`+from, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	query := `SELECT s.shipment_id, s.cattle_id, c.name, s.shipment_date, s.price, s.weight,
		s.age_at_shipment, s.buyer, s.notes, s.created_at, s.updated_at` + from +
		` ORDER BY s.shipment_date DESC, s.shipment_id DESC LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Shipment, 0)
	for rows.Next() {
		var (
			s                    models.Shipment
			createdAt, updatedAt dbx.Timestamp
		)
		err := rows.Scan(&s.ID, &s.CattleID, &s.CattleName, &s.ShipmentDate, &s.Price, &s.Weight,
			&s.AgeAtShipment, &s.Buyer, &s.Notes, &createdAt, &updatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("db error: %w", err)
		}
		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	return result, total, nil
}

func (r *SQLRepository) Delete(ctx context.Context, ownerID, id int64) error {
	return r.exec(ctx, `DELETE FROM shipments WHERE shipment_id = ? AND `+ownedCattle, id, ownerID)
}

func (r *SQLRepository) ListPlans(ctx context.Context, ownerID int64) ([]models.ShipmentPlan, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.plan_id, p.cattle_id, c.name, p.planned_shipment_month, p.created_at, p.updated_at
		 FROM shipment_plans p
		 JOIN cattle c ON c.cattle_id = p.cattle_id
		 WHERE c.owner_user_id = ?
		 ORDER BY p.planned_shipment_month ASC, p.cattle_id ASC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.ShipmentPlan, 0)
	for rows.Next() {
		var (
			p                    models.ShipmentPlan
			createdAt, updatedAt dbx.Timestamp
		)
		if err := rows.Scan(&p.ID, &p.CattleID, &p.CattleName, &p.PlannedShipmentMonth, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		p.CreatedAt = createdAt.Time
		p.UpdatedAt = updatedAt.Time
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// UpsertPlan keeps one plan per animal; an existing plan gets the new month.
func (r *SQLRepository) UpsertPlan(ctx context.Context, p *models.ShipmentPlan) (*models.ShipmentPlan, error) {
	query :=
		`INSERT INTO shipment_plans (cattle_id, planned_shipment_month, created_at, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (cattle_id) DO UPDATE SET
			planned_shipment_month = excluded.planned_shipment_month,
			updated_at = excluded.updated_at
		 RETURNING plan_id, created_at`

	var createdAt dbx.Timestamp
	err := r.db.QueryRowContext(ctx, query,
		p.CattleID, p.PlannedShipmentMonth,
		timex.FormatTimestamp(p.CreatedAt), timex.FormatTimestamp(p.UpdatedAt)).Scan(&p.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	p.CreatedAt = createdAt.Time
	return p, nil
}

func (r *SQLRepository) DeletePlan(ctx context.Context, ownerID, cattleID int64) error {
	return r.exec(ctx, `DELETE FROM shipment_plans WHERE cattle_id = ? AND `+ownedCattle, cattleID, ownerID)
}

func (r *SQLRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
