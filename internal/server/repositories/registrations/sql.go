package registrations

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

const columns = `id, email, referral_source, status, locale, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scan(s rowScanner) (*models.Registration, error) {
	var (
		reg                  models.Registration
		status               string
		createdAt, updatedAt dbx.Timestamp
	)
	if err := s.Scan(&reg.ID, &reg.Email, &reg.ReferralSource, &status, &reg.Locale, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	reg.Status = models.NormalizeRegistrationStatus(&status)
	reg.CreatedAt = createdAt.Time
	reg.UpdatedAt = updatedAt.Time
	return &reg, nil
}

func (r *SQLRepository) Create(ctx context.Context, reg *models.Registration) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO registrations (`+columns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		reg.ID, reg.Email, reg.ReferralSource, string(reg.Status), reg.Locale,
		timex.FormatTimestamp(reg.CreatedAt), timex.FormatTimestamp(reg.UpdatedAt))
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLRepository) GetByEmail(ctx context.Context, email string) (*models.Registration, error) {
	return r.getOne(ctx, `SELECT `+columns+` FROM registrations WHERE email = ?`, email)
}

func (r *SQLRepository) GetByID(ctx context.Context, id string) (*models.Registration, error) {
	return r.getOne(ctx, `SELECT `+columns+` FROM registrations WHERE id = ?`, id)
}

func (r *SQLRepository) getOne(ctx context.Context, query string, arg any) (*models.Registration, error) {
	reg, err := scan(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return reg, nil
}

// List searches by email or referral source, newest first.
func (r *SQLRepository) List(ctx context.Context, f models.RegistrationFilter) ([]models.Registration, int, error) {
	conds := []string{"1 = 1"}
	args := []any{}

	if q := strings.TrimSpace(f.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		conds = append(conds, "(LOWER(email) LIKE ? OR LOWER(COALESCE(referral_source, '')) LIKE ?)")
		args = append(args, like, like)
	}
	if f.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, f.Status)
	}
	if !f.From.IsZero() {
		conds = append(conds, "created_at >= ?")
		args = append(args, timex.FormatTimestamp(f.From))
	}
	if !f.To.IsZero() {
		conds = append(conds, "created_at < ?")
		args = append(args, timex.FormatTimestamp(f.To))
	}
	where := ` WHERE ` + strings.Join(conds, " AND ")

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+columns+` FROM registrations`+where+` ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Registration, 0)
	for rows.Next() {
		reg, err := scan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *reg)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	return result, total, nil
}

func (r *SQLRepository) UpdateStatus(ctx context.Context, id string, status models.RegistrationStatus, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE registrations SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), timex.FormatTimestamp(at), id)
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
