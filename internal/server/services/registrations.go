package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gyulist/gyulist/internal/common"
	"github.com/gyulist/gyulist/internal/logging"
	"github.com/gyulist/gyulist/internal/server/mailer"
	"github.com/gyulist/gyulist/internal/server/models"
	"github.com/gyulist/gyulist/internal/server/repositories/repomanager"
)

const (
	maxReferralSourceLength = 100
	defaultLocale           = "ja"
)

var supportedLocales = map[string]bool{"ja": true, "en": true}

type PreRegisterInput struct {
	Email          string
	ReferralSource string
	Locale         string
}

type PreRegisterResult struct {
	AlreadyRegistered bool
	Registration      *models.Registration
}

// RegistrationService runs the public waitlist and its admin review.
type RegistrationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	sender      mailer.Sender
	templates   *mailer.Templates
	logger      logging.Logger
	now         func() time.Time
	newID       func() string
}

func NewRegistrationService(db *sql.DB, m repomanager.RepositoryManager, sender mailer.Sender,
	templates *mailer.Templates, logger logging.Logger) *RegistrationService {
	return &RegistrationService{
		db:          db,
		repomanager: m,
		sender:      sender,
		templates:   templates,
		logger:      logger.With("module", "registrations"),
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

func validatePreRegister(in *PreRegisterInput) error {
	in.Email = normalizeEmail(in.Email)
	in.ReferralSource = strings.TrimSpace(in.ReferralSource)
	in.Locale = strings.TrimSpace(in.Locale)
	if in.Locale == "" {
		in.Locale = defaultLocale
	}

	var v validator
	switch {
	case in.Email == "":
		v.fail("email", "required")
	case len(in.Email) > maxEmailLength:
		v.fail("email", fmt.Sprintf("must be at most %d characters", maxEmailLength))
	case !validEmail(in.Email):
		v.fail("email", "invalid email address")
	}
	if tooLong(in.ReferralSource, maxReferralSourceLength) {
		v.fail("referralSource", fmt.Sprintf("must be at most %d characters", maxReferralSourceLength))
	}
	if !supportedLocales[in.Locale] {
		v.fail("locale", "must be ja or en")
	}
	return v.err()
}

// PreRegister adds the address to the waitlist and sends the confirmation.
// An address already on the list is reported, not re-added, and gets no
// second email. A failed send is logged to email_logs but does not fail
// the registration.
func (s *RegistrationService) PreRegister(ctx context.Context, in PreRegisterInput) (*PreRegisterResult, error) {
	if err := validatePreRegister(&in); err != nil {
		return nil, err
	}

	repo := s.repomanager.Registrations(s.db)

	existing, err := repo.GetByEmail(ctx, in.Email)
	if err == nil {
		return &PreRegisterResult{AlreadyRegistered: true, Registration: existing}, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error searching registration: %w", err)
	}

	now := s.now()
	reg := &models.Registration{
		ID:     s.newID(),
		Email:  in.Email,
		Status: models.RegistrationPending,
		Locale: in.Locale,
	}
	if in.ReferralSource != "" {
		reg.ReferralSource = &in.ReferralSource
	}
	reg.CreatedAt, reg.UpdatedAt = now, now

	if err := repo.Create(ctx, reg); err != nil {
		// lost a race with a concurrent submit of the same address
		if errors.Is(err, common.ErrorAlreadyExists) {
			return &PreRegisterResult{AlreadyRegistered: true}, nil
		}
		return nil, fmt.Errorf("error creating registration: %w", err)
	}

	s.sendConfirmation(ctx, reg)

	return &PreRegisterResult{Registration: reg}, nil
}

func (s *RegistrationService) sendConfirmation(ctx context.Context, reg *models.Registration) {
	entry := &models.EmailLog{
		ID:        s.newID(),
		Email:     reg.Email,
		Type:      mailer.TypePreRegisterConfirm,
		CreatedAt: s.now(),
	}

	msg, err := s.templates.PreRegisterConfirmation(reg.Locale, reg.Email)
	if err == nil {
		var res mailer.Result
		res, err = s.sender.Send(ctx, msg)
		if res.HTTPStatus != 0 {
			status := res.HTTPStatus
			entry.HTTPStatus = &status
		}
		if res.MessageID != "" {
			id := res.MessageID
			entry.ProviderID = &id
		}
	}
	if err != nil {
		s.logger.Error(ctx, "confirmation email failed", "email", reg.Email, "error", err)
		e := err.Error()
		entry.Error = &e
	}

	if err := s.repomanager.EmailLogs(s.db).Create(ctx, entry); err != nil {
		s.logger.Error(ctx, "error writing email log", "email", reg.Email, "error", err)
	}
}

func (s *RegistrationService) List(ctx context.Context, f models.RegistrationFilter) ([]models.Registration, int, error) {
	f.Limit, f.Offset = PageBounds(f.Limit, f.Offset)
	f.Query = strings.TrimSpace(f.Query)
	if f.Status != "" {
		st := f.Status
		f.Status = string(models.NormalizeRegistrationStatus(&st))
	}
	items, total, err := s.repomanager.Registrations(s.db).List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing registrations: %w", err)
	}
	return items, total, nil
}

// UpdateStatus normalizes status before storing it, so unknown values
// reset the registration to pending.
func (s *RegistrationService) UpdateStatus(ctx context.Context, id string, status *string) (*models.Registration, error) {
	repo := s.repomanager.Registrations(s.db)
	if err := repo.UpdateStatus(ctx, id, models.NormalizeRegistrationStatus(status), s.now()); err != nil {
		return nil, notFoundOr(err, "error updating registration")
	}
	reg, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "error getting registration")
	}
	return reg, nil
}

func (s *RegistrationService) EmailLogs(ctx context.Context, email string, limit, offset int) ([]models.EmailLog, int, error) {
	limit, offset = PageBounds(limit, offset)
	logs, total, err := s.repomanager.EmailLogs(s.db).List(ctx, normalizeEmail(email), limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing email logs: %w", err)
	}
	return logs, total, nil
}
