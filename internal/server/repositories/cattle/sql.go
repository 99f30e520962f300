package cattle

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

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

const cattleColumns = `cattle_id, owner_user_id, identification_number, ear_tag_number, name, gender,
	growth_stage, birthday, breed, weight, status, notes, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCattle(s rowScanner) (*models.Cattle, error) {
	var (
		c                    models.Cattle
		status               string
		createdAt, updatedAt dbx.Timestamp
	)
	err := s.Scan(&c.ID, &c.OwnerUserID, &c.IdentificationNumber, &c.EarTagNumber, &c.Name, &c.Gender,
		&c.GrowthStage, &c.Birthday, &c.Breed, &c.Weight, &status, &c.Notes, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	c.Status = models.CattleStatus(status)
	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time
	return &c, nil
}

func (r *SQLRepository) Create(ctx context.Context, c *models.Cattle) (*models.Cattle, error) {
	query :=
		`INSERT INTO cattle (owner_user_id, identification_number, ear_tag_number, name, gender,
			growth_stage, birthday, breed, weight, status, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 RETURNING cattle_id`

	err := r.db.QueryRowContext(ctx, query,
		c.OwnerUserID, c.IdentificationNumber, c.EarTagNumber, c.Name, c.Gender,
		c.GrowthStage, c.Birthday, c.Breed, c.Weight, string(c.Status), c.Notes,
		timex.FormatTimestamp(c.CreatedAt), timex.FormatTimestamp(c.UpdatedAt)).Scan(&c.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *SQLRepository) Get(ctx context.Context, ownerID, id int64) (*models.Cattle, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+cattleColumns+` FROM cattle WHERE cattle_id = ? AND owner_user_id = ?`, id, ownerID)

	c, err := scanCattle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func listWhere(f models.CattleFilter) (string, []any) {
	conds := []string{"owner_user_id = ?"}
	args := []any{f.OwnerUserID}

	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		conds = append(conds, `(LOWER(COALESCE(name, '')) LIKE ? OR CAST(identification_number AS TEXT) LIKE ? OR CAST(ear_tag_number AS TEXT) LIKE ?)`)
		args = append(args, like, like, like)
	}
	if f.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, f.Status)
	}
	if f.GrowthStage != "" {
		conds = append(conds, "growth_stage = ?")
		args = append(args, f.GrowthStage)
	}
	if f.Gender != "" {
		conds = append(conds, "gender = ?")
		args = append(args, f.Gender)
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns one page of cattle plus the total matching count.
func (r *SQLRepository) List(ctx context.Context, f models.CattleFilter) ([]models.Cattle, int, error) {
	where, args := listWhere(f)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cattle`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	query := `SELECT ` + cattleColumns + ` FROM cattle` + where + ` ORDER BY cattle_id DESC LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Cattle, 0)
	for rows.Next() {
		c, err := scanCattle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	return result, total, nil
}

func (r *SQLRepository) Update(ctx context.Context, ownerID, id int64, p models.CattlePatch, at time.Time) error {
	sets := make([]string, 0, 10)
	args := make([]any, 0, 12)

	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if p.IdentificationNumber != nil {
		add("identification_number", *p.IdentificationNumber)
	}
	if p.EarTagNumber != nil {
		add("ear_tag_number", *p.EarTagNumber)
	}
	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Gender != nil {
		add("gender", *p.Gender)
	}
	if p.GrowthStage != nil {
		add("growth_stage", *p.GrowthStage)
	}
	if p.Birthday != nil {
		add("birthday", *p.Birthday)
	}
	if p.Breed != nil {
		add("breed", *p.Breed)
	}
	if p.Weight != nil {
		add("weight", *p.Weight)
	}
	if p.Notes != nil {
		add("notes", *p.Notes)
	}
	add("updated_at", timex.FormatTimestamp(at))

	query := `UPDATE cattle SET ` + strings.Join(sets, ", ") + ` WHERE cattle_id = ? AND owner_user_id = ?`
	return r.exec(ctx, query, append(args, id, ownerID)...)
}

func (r *SQLRepository) UpdateStatus(ctx context.Context, ownerID, id int64, status models.CattleStatus, at time.Time) error {
	return r.exec(ctx,
		`UPDATE cattle SET status = ?, updated_at = ? WHERE cattle_id = ? AND owner_user_id = ?`,
		string(status), timex.FormatTimestamp(at), id, ownerID)
}

func (r *SQLRepository) Delete(ctx context.Context, ownerID, id int64) error {
	return r.exec(ctx, `DELETE FROM cattle WHERE cattle_id = ? AND owner_user_id = ?`, id, ownerID)
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

func (r *SQLRepository) AddHistory(ctx context.Context, h *models.StatusHistory) error {
	query :=
		`INSERT INTO cattle_status_history (cattle_id, old_status, new_status, reason, changed_by, changed_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 RETURNING history_id`

	err := r.db.QueryRowContext(ctx, query,
		h.CattleID, h.OldStatus, string(h.NewStatus), h.Reason, h.ChangedBy,
		timex.FormatTimestamp(h.ChangedAt)).Scan(&h.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// History lists status changes newest first.
func (r *SQLRepository) History(ctx context.Context, cattleID int64) ([]models.StatusHistory, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT history_id, cattle_id, old_status, new_status, reason, changed_by, changed_at
		 FROM cattle_status_history
		 WHERE cattle_id = ?
		 ORDER BY changed_at DESC, history_id DESC`, cattleID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.StatusHistory, 0)
	for rows.Next() {
		var (
			h         models.StatusHistory
			newStatus string
			changedAt dbx.Timestamp
		)
		if err := rows.Scan(&h.ID, &h.CattleID, &h.OldStatus, &newStatus, &h.Reason, &h.ChangedBy, &changedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		h.NewStatus = models.CattleStatus(newStatus)
		h.ChangedAt = changedAt.Time
		result = append(result, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
