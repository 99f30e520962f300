package services

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/gyulist/gyulist/internal/server/models"
	"github.com/gyulist/gyulist/internal/server/repositories/repomanager"
	"github.com/gyulist/gyulist/internal/timex"
)

// Gestation window in days for linking an insemination to a calving.
const (
	MinGestationDays = 260
	MaxGestationDays = 300
)

// BreedingKPI holds herd reproduction metrics. A nil metric could not be
// computed because its denominator was zero.
type BreedingKPI struct {
	ConceptionRate     *float64
	AvgDaysOpen        *float64
	AvgCalvingInterval *float64
	AIPerConception    *float64

	Inseminations int
	Conceptions   int
	Calvings      int
}

// BreedingReport is a KPI over the inclusive date range From..To.
type BreedingReport struct {
	From time.Time
	To   time.Time
	KPI  BreedingKPI
}

// ComputeBreedingKPI derives the metrics from INSEMINATION and CALVING
// events. Only events in [from, to) are counted; events outside the range
// are still used to link inseminations, calvings and previous calvings.
//
// The conceiving insemination of a calving is the latest insemination of
// the same animal 260 to 300 days before it.
func ComputeBreedingKPI(events []models.Event, from, to time.Time) BreedingKPI {
	byCow := map[int64][]models.Event{}
	for _, e := range events {
		if e.Type != models.EventInsemination && e.Type != models.EventCalving {
			continue
		}
		byCow[e.CattleID] = append(byCow[e.CattleID], e)
	}

	inRange := func(t time.Time) bool {
		return !t.Before(from) && t.Before(to)
	}

	var (
		kpi                    BreedingKPI
		daysOpenSum, daysOpenN int
		intervalSum, intervalN int
	)

	for _, evs := range byCow {
		sort.SliceStable(evs, func(i, j int) bool { return evs[i].Datetime.Before(evs[j].Datetime) })

		conceived := make([]bool, len(evs))
		for i, e := range evs {
			if e.Type != models.EventCalving {
				continue
			}
			for j := i - 1; j >= 0; j-- {
				if evs[j].Type != models.EventInsemination {
					continue
				}
				d := days(evs[j].Datetime, e.Datetime)
				if d > MaxGestationDays {
					break
				}
				if d >= MinGestationDays {
					conceived[j] = true
					break
				}
			}
		}

		prevCalving := -1
		for i, e := range evs {
			switch e.Type {
			case models.EventInsemination:
				if inRange(e.Datetime) {
					kpi.Inseminations++
					if conceived[i] {
						kpi.Conceptions++
					}
				}
			case models.EventCalving:
				if inRange(e.Datetime) {
					kpi.Calvings++
					if prevCalving >= 0 {
						intervalSum += days(evs[prevCalving].Datetime, e.Datetime)
						intervalN++
					}
					if d, ok := daysOpen(evs, conceived, i); ok {
						daysOpenSum += d
						daysOpenN++
					}
				}
				prevCalving = i
			}
		}
	}

	if kpi.Inseminations > 0 {
		kpi.ConceptionRate = round1(float64(kpi.Conceptions) / float64(kpi.Inseminations) * 100)
	}
	if kpi.Conceptions > 0 {
		kpi.AIPerConception = round1(float64(kpi.Inseminations) / float64(kpi.Conceptions))
	}
	if daysOpenN > 0 {
		kpi.AvgDaysOpen = round1(float64(daysOpenSum) / float64(daysOpenN))
	}
	if intervalN > 0 {
		kpi.AvgCalvingInterval = round1(float64(intervalSum) / float64(intervalN))
	}
	return kpi
}

// daysOpen measures from the calving at i to the next conceiving
// insemination before any later calving.
func daysOpen(evs []models.Event, conceived []bool, i int) (int, bool) {
	for j := i + 1; j < len(evs); j++ {
		if evs[j].Type == models.EventCalving {
			return 0, false
		}
		if conceived[j] {
			return days(evs[i].Datetime, evs[j].Datetime), true
		}
	}
	return 0, false
}

func days(a, b time.Time) int {
	return timex.DaysBetween(timex.StartOfDay(a), timex.StartOfDay(b))
}

func round1(v float64) *float64 {
	r := math.Round(v*10) / 10
	return &r
}

type KPIService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewKPIService(db *sql.DB, m repomanager.RepositoryManager) *KPIService {
	return &KPIService{db: db, repomanager: m, now: time.Now}
}

// Breeding computes the owner's KPI for the inclusive day range from..to.
// A zero to means today, a zero from means one year before to.
func (s *KPIService) Breeding(ctx context.Context, ownerID int64, from, to time.Time) (*BreedingReport, error) {
	if to.IsZero() {
		to = s.now()
	}
	to = timex.StartOfDay(to)
	if from.IsZero() {
		from = to.AddDate(-1, 0, 0)
	}
	from = timex.StartOfDay(from)
	if from.After(to) {
		return nil, &ValidationError{Fields: map[string]string{"from": "must not be after to"}}
	}

	evs, err := s.repomanager.Events(s.db).List(ctx, models.EventFilter{
		OwnerUserID: ownerID,
		Types:       []models.EventType{models.EventInsemination, models.EventCalving},
	})
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}

	return &BreedingReport{
		From: from,
		To:   to,
		KPI:  ComputeBreedingKPI(evs, from, to.AddDate(0, 0, 1)),
	}, nil
}
