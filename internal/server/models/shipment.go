package models

import "time"

type Shipment struct {
	ID            int64
	CattleID      int64
	CattleName    *string
	ShipmentDate  string // YYYY-MM-DD
	Price         int64
	Weight        *float64
	AgeAtShipment *int
	Buyer         *string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ShipmentFilter struct {
	OwnerUserID int64
	From        string
	To          string
	Limit       int
	Offset      int
}

type ShipmentPlan struct {
	ID                   int64
	CattleID             int64
	CattleName           *string
	PlannedShipmentMonth string // YYYY-MM
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
