package events

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

func (r *SQLRepository) Create(ctx context.Context, e *models.Event) (*models.Event, error) {
	query :=
		`INSERT INTO events (cattle_id, event_type, event_datetime, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 RETURNING event_id`

	err := r.db.QueryRowContext(ctx, query,
		e.CattleID, string(e.Type), timex.FormatTimestamp(e.Datetime), e.Notes,
		timex.FormatTimestamp(e.CreatedAt), timex.FormatTimestamp(e.UpdatedAt)).Scan(&e.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

// List returns the owner's events in chronological order. A zero Limit
// returns every match.
func (r *SQLRepository) List(ctx context.Context, f models.EventFilter) ([]models.Event, error) {
	conds := []string{"c.owner_user_id = ?"}
	args := []any{f.OwnerUserID}

	if f.CattleID != 0 {
		conds = append(conds, "e.cattle_id = ?")
		args = append(args, f.CattleID)
	}
	if len(f.Types) > 0 {
		ph := make([]string, len(f.Types))
		for i, t := range f.Types {
			ph[i] = "?"
			args = append(args, string(t))
		}
		conds = append(conds, "e.event_type IN ("+strings.Join(ph, ", ")+")")
	}
	if !f.From.IsZero() {
		conds = append(conds, "e.event_datetime >= ?")
		args = append(args, timex.FormatTimestamp(f.From))
	}
	if !f.To.IsZero() {
		conds = append(conds, "e.event_datetime < ?")
		args = append(args, timex.FormatTimestamp(f.To))
	}

	query :=
		`SELECT e.event_id, e.cattle_id, c.name, c.ear_tag_number, e.event_type, e.event_datetime,
			e.notes, e.created_at, e.updated_at
		 FROM events e
		 JOIN cattle c ON c.cattle_id = e.cattle_id
		 WHERE ` + strings.Join(conds, " AND ") + `
		 ORDER BY e.event_datetime ASC, e.event_id ASC`
	if f.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, f.Limit, f.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Event, 0)
	for rows.Next() {
		var (
			e                             models.Event
			typ                           string
			datetime, createdAt, updateAt dbx.Timestamp
		)
		err := rows.Scan(&e.ID, &e.CattleID, &e.CattleName, &e.EarTagNumber, &typ, &datetime,
			&e.Notes, &createdAt, &updateAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		e.Type = models.EventType(typ)
		e.Datetime = datetime.Time
		e.CreatedAt = createdAt.Time
		e.UpdatedAt = updateAt.Time
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *SQLRepository) Delete(ctx context.Context, ownerID, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM events
		 WHERE event_id = ? AND cattle_id IN (SELECT cattle_id FROM cattle WHERE owner_user_id = ?)`,
		id, ownerID)
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
