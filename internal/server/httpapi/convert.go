package httpapi

import (
	"github.com/gyulist/gyulist/internal/api"
	"github.com/gyulist/gyulist/internal/server/models"
	"github.com/gyulist/gyulist/internal/timex"
)

func toUser(u *models.User) api.User {
	return api.User{
		ID:        u.ID,
		Email:     u.Email,
		UserName:  u.UserName,
		Theme:     string(u.Theme),
		CreatedAt: timex.FormatTimestamp(u.CreatedAt),
		UpdatedAt: timex.FormatTimestamp(u.UpdatedAt),
	}
}

func toCattle(c *models.Cattle) api.Cattle {
	return api.Cattle{
		CattleID:             c.ID,
		OwnerUserID:          c.OwnerUserID,
		IdentificationNumber: c.IdentificationNumber,
		EarTagNumber:         c.EarTagNumber,
		Name:                 c.Name,
		Gender:               c.Gender,
		GrowthStage:          c.GrowthStage,
		Birthday:             c.Birthday,
		Breed:                c.Breed,
		Weight:               c.Weight,
		Status:               string(c.Status),
		Notes:                c.Notes,
		CreatedAt:            timex.FormatTimestamp(c.CreatedAt),
		UpdatedAt:            timex.FormatTimestamp(c.UpdatedAt),
	}
}

func toHistory(h models.StatusHistory) api.StatusHistory {
	return api.StatusHistory{
		HistoryID: h.ID,
		CattleID:  h.CattleID,
		OldStatus: h.OldStatus,
		NewStatus: string(h.NewStatus),
		Reason:    h.Reason,
		ChangedBy: h.ChangedBy,
		ChangedAt: timex.FormatTimestamp(h.ChangedAt),
	}
}

func toEvent(e *models.Event) api.Event {
	return api.Event{
		EventID:       e.ID,
		CattleID:      e.CattleID,
		CattleName:    e.CattleName,
		EarTagNumber:  e.EarTagNumber,
		EventType:     string(e.Type),
		EventDatetime: timex.FormatTimestamp(e.Datetime),
		Notes:         e.Notes,
		CreatedAt:     timex.FormatTimestamp(e.CreatedAt),
		UpdatedAt:     timex.FormatTimestamp(e.UpdatedAt),
	}
}

func toShipment(s *models.Shipment) api.Shipment {
	return api.Shipment{
		ShipmentID:    s.ID,
		CattleID:      s.CattleID,
		CattleName:    s.CattleName,
		ShipmentDate:  s.ShipmentDate,
		Price:         s.Price,
		Weight:        s.Weight,
		AgeAtShipment: s.AgeAtShipment,
		Buyer:         s.Buyer,
		Notes:         s.Notes,
		CreatedAt:     timex.FormatTimestamp(s.CreatedAt),
		UpdatedAt:     timex.FormatTimestamp(s.UpdatedAt),
	}
}

func toPlan(p *models.ShipmentPlan) api.ShipmentPlan {
	return api.ShipmentPlan{
		PlanID:               p.ID,
		CattleID:             p.CattleID,
		CattleName:           p.CattleName,
		PlannedShipmentMonth: p.PlannedShipmentMonth,
		CreatedAt:            timex.FormatTimestamp(p.CreatedAt),
		UpdatedAt:            timex.FormatTimestamp(p.UpdatedAt),
	}
}

func toRegistration(r *models.Registration) api.Registration {
	return api.Registration{
		ID:             r.ID,
		Email:          r.Email,
		ReferralSource: r.ReferralSource,
		Status:         string(r.Status),
		Locale:         r.Locale,
		CreatedAt:      timex.FormatTimestamp(r.CreatedAt),
		UpdatedAt:      timex.FormatTimestamp(r.UpdatedAt),
	}
}

func toEmailLog(l *models.EmailLog) api.EmailLog {
	return api.EmailLog{
		ID:         l.ID,
		Email:      l.Email,
		Type:       l.Type,
		HTTPStatus: l.HTTPStatus,
		ResendID:   l.ProviderID,
		Error:      l.Error,
		CreatedAt:  timex.FormatTimestamp(l.CreatedAt),
	}
}

// mapSlice converts a slice of models with a pointer-taking converter.
func mapSlice[M any, A any](in []M, f func(*M) A) []A {
	out := make([]A, 0, len(in))
	for i := range in {
		out = append(out, f(&in[i]))
	}
	return out
}

func page[T any](items []T, total, limit, offset int) api.Page[T] {
	return api.Page[T]{Results: items, Total: total, Limit: limit, Offset: offset}
}
