package emaillogs

import (
	"context"
	"fmt"

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

func (r *SQLRepository) Create(ctx context.Context, l *models.EmailLog) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO email_logs (id, email, type, http_status, resend_id, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.Email, l.Type, l.HTTPStatus, l.ProviderID, l.Error, timex.FormatTimestamp(l.CreatedAt))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// List returns logs newest first, optionally narrowed to one address.
func (r *SQLRepository) List(ctx context.Context, email string, limit, offset int) ([]models.EmailLog, int, error) {
	where := ""
	args := []any{}
	if email != "" {
		where = ` WHERE email = ?`
		args = append(args, email)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM email_logs`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, email, type, http_status, resend_id, error, created_at FROM email_logs`+where+
			` ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.EmailLog, 0)
	for rows.Next() {
		var (
			l         models.EmailLog
			createdAt dbx.Timestamp
		)
		if err := rows.Scan(&l.ID, &l.Email, &l.Type, &l.HTTPStatus, &l.ProviderID, &l.Error, &createdAt); err != nil {
			return nil, 0, fmt.Errorf("db error: %w", err)
		}
		l.CreatedAt = createdAt.Time
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	return result, total, nil
}
