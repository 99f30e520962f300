package models

import "time"

type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationCompleted RegistrationStatus = "completed"
	RegistrationCancelled RegistrationStatus = "cancelled"
)

// NormalizeRegistrationStatus maps s onto a known status. Nil, empty and
// unknown values all become pending. Matching is exact.
func NormalizeRegistrationStatus(s *string) RegistrationStatus {
	if s == nil {
		return RegistrationPending
	}
	switch v := RegistrationStatus(*s); v {
	case RegistrationPending, RegistrationCompleted, RegistrationCancelled:
		return v
	}
	return RegistrationPending
}

type Registration struct {
	ID             string
	Email          string
	ReferralSource *string
	Status         RegistrationStatus
	Locale         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type RegistrationFilter struct {
	Query  string
	Status string
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

type EmailLog struct {
	ID         string
	Email      string
	Type       string
	HTTPStatus *int
	ProviderID *string
	Error      *string
	CreatedAt  time.Time
}
