package api

// Error is the body of every non-2xx JSON response.
type Error struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// Page wraps list results with the paging window that produced them.
type Page[T any] struct {
	Results []T `json:"results"`
	Total   int `json:"total"`
	Limit   int `json:"limit"`
	Offset  int `json:"offset"`
}

// FieldErrors maps a request field to its validation message.
type FieldErrors map[string]string

type ValidationError struct {
	Error       string      `json:"error"`
	FieldErrors FieldErrors `json:"fieldErrors"`
}

// Auth

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserName string `json:"userName"`
}

type RegisterResponse struct {
	ID int64 `json:"id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type VerifyRequest struct {
	Token string `json:"token"`
}

type VerifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Users

type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	UserName  string `json:"userName"`
	Theme     string `json:"theme"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type UpdateThemeRequest struct {
	Theme string `json:"theme"`
}

type ThemeData struct {
	ID        int64  `json:"id"`
	Theme     string `json:"theme"`
	UpdatedAt string `json:"updatedAt"`
}

type ThemeResponse struct {
	Data ThemeData `json:"data"`
}

// Cattle

type Cattle struct {
	CattleID             int64    `json:"cattleId"`
	OwnerUserID          int64    `json:"ownerUserId"`
	IdentificationNumber int64    `json:"identificationNumber"`
	EarTagNumber         *int64   `json:"earTagNumber"`
	Name                 *string  `json:"name"`
	Gender               *string  `json:"gender"`
	GrowthStage          *string  `json:"growthStage"`
	Birthday             *string  `json:"birthday"`
	Breed                *string  `json:"breed"`
	Weight               *float64 `json:"weight"`
	Status               string   `json:"status"`
	Notes                *string  `json:"notes"`
	CreatedAt            string   `json:"createdAt"`
	UpdatedAt            string   `json:"updatedAt"`
}

type CreateCattleRequest struct {
	IdentificationNumber int64    `json:"identificationNumber"`
	EarTagNumber         *int64   `json:"earTagNumber,omitempty"`
	Name                 *string  `json:"name,omitempty"`
	Gender               *string  `json:"gender,omitempty"`
	GrowthStage          *string  `json:"growthStage,omitempty"`
	Birthday             *string  `json:"birthday,omitempty"`
	Breed                *string  `json:"breed,omitempty"`
	Weight               *float64 `json:"weight,omitempty"`
	Status               *string  `json:"status,omitempty"`
	Notes                *string  `json:"notes,omitempty"`
}

// UpdateCattleRequest is a partial update; nil fields are left untouched.
type UpdateCattleRequest struct {
	IdentificationNumber *int64   `json:"identificationNumber,omitempty"`
	EarTagNumber         *int64   `json:"earTagNumber,omitempty"`
	Name                 *string  `json:"name,omitempty"`
	Gender               *string  `json:"gender,omitempty"`
	GrowthStage          *string  `json:"growthStage,omitempty"`
	Birthday             *string  `json:"birthday,omitempty"`
	Breed                *string  `json:"breed,omitempty"`
	Weight               *float64 `json:"weight,omitempty"`
	Notes                *string  `json:"notes,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type CattleResponse struct {
	Data Cattle `json:"data"`
}

type StatusHistory struct {
	HistoryID int64   `json:"historyId"`
	CattleID  int64   `json:"cattleId"`
	OldStatus *string `json:"oldStatus"`
	NewStatus string  `json:"newStatus"`
	Reason    *string `json:"reason"`
	ChangedBy int64   `json:"changedBy"`
	ChangedAt string  `json:"changedAt"`
}

type CattleListQuery struct {
	Search      string
	Status      string
	GrowthStage string
	Gender      string
	Limit       int
	Offset      int
}

// Events

type Event struct {
	EventID       int64   `json:"eventId"`
	CattleID      int64   `json:"cattleId"`
	CattleName    *string `json:"cattleName"`
	EarTagNumber  *int64  `json:"earTagNumber"`
	EventType     string  `json:"eventType"`
	EventDatetime string  `json:"eventDatetime"`
	Notes         *string `json:"notes"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

type CreateEventRequest struct {
	CattleID      int64   `json:"cattleId"`
	EventType     string  `json:"eventType"`
	EventDatetime string  `json:"eventDatetime"`
	Notes         *string `json:"notes,omitempty"`
}

type EventListQuery struct {
	CattleID int64
	From     string
	To       string
	Limit    int
	Offset   int
}

// KPI

// BreedingKPI holds the herd breeding metrics. Nil means undefined for the
// period, e.g. no conceptions yet.
type BreedingKPI struct {
	ConceptionRate     *float64 `json:"conceptionRate"`
	AvgDaysOpen        *float64 `json:"avgDaysOpen"`
	AvgCalvingInterval *float64 `json:"avgCalvingInterval"`
	AIPerConception    *float64 `json:"aiPerConception"`
}

type BreedingCounts struct {
	Inseminations int `json:"inseminations"`
	Conceptions   int `json:"conceptions"`
	Calvings      int `json:"calvings"`
}

// BreedingKPIResponse carries the four metrics at the top level, beside the
// range and the event counts.
type BreedingKPIResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
	BreedingKPI
	Counts BreedingCounts `json:"counts"`
}

// Shipments

type Shipment struct {
	ShipmentID    int64    `json:"shipmentId"`
	CattleID      int64    `json:"cattleId"`
	CattleName    *string  `json:"cattleName"`
	ShipmentDate  string   `json:"shipmentDate"`
	Price         int64    `json:"price"`
	Weight        *float64 `json:"weight"`
	AgeAtShipment *int     `json:"ageAtShipment"`
	Buyer         *string  `json:"buyer"`
	Notes         *string  `json:"notes"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// CreateShipmentRequest records a sale. MarkShipped also sets the animal to
// SHIPPED and drops its shipment plan.
type CreateShipmentRequest struct {
	CattleID      int64    `json:"cattleId"`
	ShipmentDate  string   `json:"shipmentDate"`
	Price         int64    `json:"price"`
	Weight        *float64 `json:"weight,omitempty"`
	AgeAtShipment *int     `json:"ageAtShipment,omitempty"`
	Buyer         *string  `json:"buyer,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
	MarkShipped   bool     `json:"markShipped,omitempty"`
}

type ShipmentListQuery struct {
	From   string
	To     string
	Limit  int
	Offset int
}

type ShipmentPlan struct {
	PlanID               int64   `json:"planId"`
	CattleID             int64   `json:"cattleId"`
	CattleName           *string `json:"cattleName"`
	PlannedShipmentMonth string  `json:"plannedShipmentMonth"`
	CreatedAt            string  `json:"createdAt"`
	UpdatedAt            string  `json:"updatedAt"`
}

type PutShipmentPlanRequest struct {
	PlannedShipmentMonth string `json:"plannedShipmentMonth"`
}

// Pre-registration and admin

type PreRegisterRequest struct {
	Email          string  `json:"email"`
	ReferralSource *string `json:"referralSource,omitempty"`
	Locale         string  `json:"locale,omitempty"`
}

type PreRegisterResponse struct {
	OK                bool        `json:"ok"`
	AlreadyRegistered bool        `json:"alreadyRegistered"`
	Code              string      `json:"code,omitempty"`
	FieldErrors       FieldErrors `json:"fieldErrors,omitempty"`
}

type Registration struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	ReferralSource *string `json:"referralSource"`
	Status         string  `json:"status"`
	Locale         string  `json:"locale"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

type UpdateRegistrationStatusRequest struct {
	Status *string `json:"status"`
}

type EmailLog struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Type       string  `json:"type"`
	HTTPStatus *int    `json:"httpStatus"`
	ResendID   *string `json:"resendId"`
	Error      *string `json:"error"`
	CreatedAt  string  `json:"createdAt"`
}

// CattleStatuses lists the values accepted by UpdateStatusRequest, in the
// order forms present them.
var CattleStatuses = []string{
	"HEALTHY", "PREGNANT", "RESTING", "TREATING",
	"SCHEDULED_FOR_SHIPMENT", "SHIPPED", "DEAD",
}

// Themes lists the values accepted by UpdateThemeRequest.
var Themes = []string{"light", "dark", "system"}
