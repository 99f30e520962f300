package httpapi

import (
	"net/http"

	"github.com/gyulist/gyulist/internal/api"
	"github.com/gyulist/gyulist/internal/server/httputil"
	"github.com/gyulist/gyulist/internal/server/models"
	"github.com/gyulist/gyulist/internal/server/services"
	"github.com/gyulist/gyulist/internal/timex"
)

func (s *Server) listEvents(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	f := models.EventFilter{
		OwnerUserID: userIDFrom(r.Context()),
		CattleID:    q.Int64("cattleId"),
		From:        q.Instant("from", false),
		To:          q.Instant("to", true),
	}
	f.Limit, f.Offset = services.PageBounds(q.Int("limit"), q.Int("offset"))
	if errs := q.Err(); errs != nil {
		httputil.Validation(w, errs)
		return
	}

	items, err := s.events.List(r.Context(), f)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.OK(w, mapSlice(items, toEvent))
}

func (s *Server) createEvent(w http.ResponseWriter, r *http.Request) {
	var req api.CreateEventRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	e := &models.Event{
		CattleID: req.CattleID,
		Type:     models.EventType(req.EventType),
		Notes:    req.Notes,
	}
	if req.EventDatetime != "" {
		at, err := timex.ParseTimestamp(req.EventDatetime)
		if err != nil {
			httputil.Validation(w, map[string]string{"eventDatetime": "must be YYYY-MM-DD or RFC 3339"})
			return
		}
		e.Datetime = at
	}

	out, err := s.events.Create(r.Context(), userIDFrom(r.Context()), e)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.Created(w, toEvent(out))
}

func (s *Server) deleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := s.events.Delete(r.Context(), userIDFrom(r.Context()), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.NoContent(w)
}

func (s *Server) breedingKPI(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	from, to := q.Date("from"), q.Date("to")
	if errs := q.Err(); errs != nil {
		httputil.Validation(w, errs)
		return
	}

	rep, err := s.kpi.Breeding(r.Context(), userIDFrom(r.Context()), from, to)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	httputil.OK(w, api.BreedingKPIResponse{
		From: rep.From.Format(timex.DateLayout),
		To:   rep.To.Format(timex.DateLayout),
		BreedingKPI: api.BreedingKPI{
			ConceptionRate:     rep.KPI.ConceptionRate,
			AvgDaysOpen:        rep.KPI.AvgDaysOpen,
			AvgCalvingInterval: rep.KPI.AvgCalvingInterval,
			AIPerConception:    rep.KPI.AIPerConception,
		},
		Counts: api.BreedingCounts{
			Inseminations: rep.KPI.Inseminations,
			Conceptions:   rep.KPI.Conceptions,
			Calvings:      rep.KPI.Calvings,
		},
	})
}
