// Package services contains the server-side business logic that sits between
// the HTTP handlers and the repositories. Services validate input, translate
// repository errors into the sentinels of package common and own transactions.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gyulist/gyulist/internal/common"
	"github.com/gyulist/gyulist/internal/cryptox"
	"github.com/gyulist/gyulist/internal/server/auth"
	"github.com/gyulist/gyulist/internal/server/config"
	"github.com/gyulist/gyulist/internal/server/models"
	"github.com/gyulist/gyulist/internal/server/repositories/repomanager"
)

const (
	minPasswordLength = 8
	maxUserNameLength = 100
)

// UserService handles accounts: registration, password login, token checks
// and the per-user theme preference.
type UserService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
	now           func() time.Time
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
		now:           time.Now,
	}
}

// Register creates a user. A taken email yields common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, email, password, userName string) (*models.User, error) {
	email = normalizeEmail(email)
	userName = strings.TrimSpace(userName)

	var v validator
	if !validEmail(email) {
		v.fail("email", "invalid email address")
	}
	if len(password) < minPasswordLength {
		v.fail("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}
	if userName == "" {
		v.fail("userName", "required")
	} else if tooLong(userName, maxUserNameLength) {
		v.fail("userName", fmt.Sprintf("must be at most %d characters", maxUserNameLength))
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	hash, salt := cryptox.HashPassword(password)
	now := s.now()

	u, err := s.repomanager.Users(s.db).Create(ctx, &models.User{
		Email:        email,
		UserName:     userName,
		PasswordHash: hash,
		PasswordSalt: salt,
		Theme:        models.ThemeLight,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login checks the password and returns a signed access token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.repomanager.Users(s.db).GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", fmt.Errorf("error searching user: %w", err)
	}

	ok, err := cryptox.VerifyPassword(password, u.PasswordHash, u.PasswordSalt)
	if err != nil || !ok {
		return "", common.ErrorUnauthorized
	}

	return auth.GenerateToken(u.ID, s.jwtSecret, s.tokenValidity)
}

// Verify returns the user id carried by a valid, unexpired token.
func (s *UserService) Verify(token string) (int64, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

// Get returns the caller's own record; any other id is forbidden.
func (s *UserService) Get(ctx context.Context, callerID, id int64) (*models.User, error) {
	if callerID != id {
		return nil, common.ErrorForbidden
	}
	u, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return u, nil
}

func (s *UserService) UpdateTheme(ctx context.Context, callerID, id int64, theme string) (*models.User, error) {
	if callerID != id {
		return nil, common.ErrorForbidden
	}
	t := models.Theme(theme)
	if !t.Valid() {
		return nil, &ValidationError{Fields: map[string]string{"theme": "must be one of light, dark, system"}}
	}

	repo := s.repomanager.Users(s.db)
	if err := repo.UpdateTheme(ctx, id, t, s.now()); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating theme: %w", err)
	}
	return repo.GetByID(ctx, id)
}
