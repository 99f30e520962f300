package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gyulist/gyulist/internal/server/models"
	"github.com/gyulist/gyulist/internal/server/repositories/repomanager"
)

// EventService records dated events (estrus, insemination, calving...) on
// owned animals and serves them as a schedule.
type EventService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewEventService(db *sql.DB, m repomanager.RepositoryManager) *EventService {
	return &EventService{db: db, repomanager: m, now: time.Now}
}

// List returns one page of the owner's events in chronological order.
func (s *EventService) List(ctx context.Context, f models.EventFilter) ([]models.Event, error) {
	f.Limit, f.Offset = PageBounds(f.Limit, f.Offset)
	if !f.From.IsZero() && !f.To.IsZero() && !f.To.After(f.From) {
		return nil, &ValidationError{Fields: map[string]string{"to": "must be after from"}}
	}
	items, err := s.repomanager.Events(s.db).List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	return items, nil
}

func (s *EventService) Create(ctx context.Context, ownerID int64, e *models.Event) (*models.Event, error) {
	var v validator
	if e.CattleID <= 0 {
		v.fail("cattleId", "required")
	}
	if !e.Type.Valid() {
		v.fail("eventType", "unknown event type")
	}
	if e.Datetime.IsZero() {
		v.fail("eventDatetime", "required")
	}
	if e.Notes != nil {
		n := strings.TrimSpace(*e.Notes)
		if tooLong(n, 1000) {
			v.fail("notes", "must be at most 1000 characters")
		}
		e.Notes = &n
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	c, err := s.repomanager.Cattle(s.db).Get(ctx, ownerID, e.CattleID)
	if err != nil {
		return nil, notFoundOr(err, "error getting cattle")
	}

	now := s.now()
	e.Datetime = e.Datetime.UTC()
	e.CreatedAt, e.UpdatedAt = now, now

	out, err := s.repomanager.Events(s.db).Create(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}
	out.CattleName = c.Name
	out.EarTagNumber = c.EarTagNumber
	return out, nil
}

func (s *EventService) Delete(ctx context.Context, ownerID, id int64) error {
	if err := s.repomanager.Events(s.db).Delete(ctx, ownerID, id); err != nil {
		return notFoundOr(err, "error deleting event")
	}
	return nil
}
