package models

import "time"

type EventType string

const (
	EventEstrus         EventType = "ESTRUS"
	EventInsemination   EventType = "INSEMINATION"
	EventPregnancyCheck EventType = "PREGNANCY_CHECK"
	EventCalving        EventType = "CALVING"
	EventVaccination    EventType = "VACCINATION"
	EventShipment       EventType = "SHIPMENT"
	EventOther          EventType = "OTHER"
)

func (t EventType) Valid() bool {
	switch t {
	case EventEstrus, EventInsemination, EventPregnancyCheck, EventCalving,
		EventVaccination, EventShipment, EventOther:
		return true
	}
	return false
}

type Event struct {
	ID           int64
	CattleID     int64
	CattleName   *string
	EarTagNumber *int64
	Type         EventType
	Datetime     time.Time
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EventFilter narrows events to one owner. Zero From/To are open bounds,
// To is exclusive.
type EventFilter struct {
	OwnerUserID int64
	CattleID    int64
	Types       []EventType
	From        time.Time
	To          time.Time
	Limit       int
	Offset      int
}
