package web

import (
	"net/http"

	"github.com/gyulist/gyulist/internal/api"
	"github.com/gyulist/gyulist/internal/timex"
)

const (
	scheduleDays  = 7
	listPageLimit = 100
)

type scheduleData struct {
	From   string
	To     string
	Events []api.Event
}

// dateParam returns the YYYY-MM-DD query value name, or def when it is
// missing or not a date.
func dateParam(r *http.Request, name, def string) string {
	v := r.URL.Query().Get(name)
	if _, err := timex.ParseDate(v); err != nil {
		return def
	}
	return v
}

// schedule lists events from today through the next week unless a range
// is given. Both bounds are inclusive days in the display time zone.
func (s *Server) schedule(w http.ResponseWriter, r *http.Request) {
	today := s.now().In(s.loc)
	from := dateParam(r, "from", today.Format(timex.DateLayout))
	to := dateParam(r, "to", today.AddDate(0, 0, scheduleDays).Format(timex.DateLayout))

	events, err := s.svc.ListEvents(r.Context(), api.EventListQuery{From: from, To: to, Limit: listPageLimit})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.show(w, r, http.StatusOK, "schedule", page{
		Title: "Schedule",
		Nav:   true,
		Data:  scheduleData{From: from, To: to, Events: events},
	})
}

type kpiData struct {
	From string
	To   string
	KPI  *api.BreedingKPIResponse
}

// kpi leaves an unset range to the server default.
func (s *Server) kpi(w http.ResponseWriter, r *http.Request) {
	from := dateParam(r, "from", "")
	to := dateParam(r, "to", "")

	out, err := s.svc.BreedingKPI(r.Context(), from, to)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.show(w, r, http.StatusOK, "kpi", page{
		Title: "Breeding KPI",
		Nav:   true,
		Data:  kpiData{From: out.From, To: out.To, KPI: out},
	})
}

type shipmentsData struct {
	Plans []api.ShipmentPlan
	Page  *api.Page[api.Shipment]
}

func (s *Server) shipments(w http.ResponseWriter, r *http.Request) {
	plans, err := s.svc.ListPlans(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	p, err := s.svc.ListShipments(r.Context(), api.ShipmentListQuery{
		From:  dateParam(r, "from", ""),
		To:    dateParam(r, "to", ""),
		Limit: listPageLimit,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.show(w, r, http.StatusOK, "shipments", page{
		Title: "Shipments",
		Nav:   true,
		Data:  shipmentsData{Plans: plans, Page: p},
	})
}
