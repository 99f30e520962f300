package models

import "time"

type CattleStatus string

const (
	StatusHealthy              CattleStatus = "HEALTHY"
	StatusPregnant             CattleStatus = "PREGNANT"
	StatusResting              CattleStatus = "RESTING"
	StatusTreating             CattleStatus = "TREATING"
	StatusScheduledForShipment CattleStatus = "SCHEDULED_FOR_SHIPMENT"
	StatusShipped              CattleStatus = "SHIPPED"
	StatusDead                 CattleStatus = "DEAD"
)

var CattleStatuses = []CattleStatus{
	StatusHealthy, StatusPregnant, StatusResting, StatusTreating,
	StatusScheduledForShipment, StatusShipped, StatusDead,
}

func (s CattleStatus) Valid() bool {
	for _, v := range CattleStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

type GrowthStage string

const (
	StageCalf        GrowthStage = "CALF"
	StageGrowing     GrowthStage = "GROWING"
	StageFattening   GrowthStage = "FATTENING"
	StageFirstCalved GrowthStage = "FIRST_CALVED"
	StageMultiParous GrowthStage = "MULTI_PAROUS"
)

func (g GrowthStage) Valid() bool {
	switch g {
	case StageCalf, StageGrowing, StageFattening, StageFirstCalved, StageMultiParous:
		return true
	}
	return false
}

type Cattle struct {
	ID                   int64
	OwnerUserID          int64
	IdentificationNumber int64
	EarTagNumber         *int64
	Name                 *string
	Gender               *string
	GrowthStage          *string
	Birthday             *string // YYYY-MM-DD
	Breed                *string
	Weight               *float64
	Status               CattleStatus
	Notes                *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// CattlePatch lists the columns a partial update may touch; nil is "keep".
type CattlePatch struct {
	IdentificationNumber *int64
	EarTagNumber         *int64
	Name                 *string
	Gender               *string
	GrowthStage          *string
	Birthday             *string
	Breed                *string
	Weight               *float64
	Notes                *string
}

type CattleFilter struct {
	OwnerUserID int64
	Search      string
	Status      string
	GrowthStage string
	Gender      string
	Limit       int
	Offset      int
}

type StatusHistory struct {
	ID        int64
	CattleID  int64
	OldStatus *string
	NewStatus CattleStatus
	Reason    *string
	ChangedBy int64
	ChangedAt time.Time
}
