package services

import (
	"context"
	"net/http"

	"github.com/gyulist/gyulist/internal/api"
	"github.com/gyulist/gyulist/internal/client/client"
)

// Login exchanges credentials for a session token. Wrong credentials match
// client.ErrUnauthorized.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := s.api.Auth().Login(ctx, api.LoginRequest{Email: email, Password: password})
	out, err := result(resp, err)
	if err != nil {
		return "", err
	}
	return out.Token, nil
}

func (s *Service) Register(ctx context.Context, email, password, userName string) (int64, error) {
	resp, err := s.api.Auth().Register(ctx, api.RegisterRequest{Email: email, Password: password, UserName: userName})
	out, err := result(resp, err)
	if err != nil {
		return 0, err
	}
	return out.ID, nil
}

// Verify asks the server whether token is still accepted.
func (s *Service) Verify(ctx context.Context, token string) (*api.VerifyResponse, error) {
	resp, err := s.api.Auth().Verify(ctx, api.VerifyRequest{Token: token})
	out, err := result(resp, err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (*api.User, error) {
	u, err := authed(ctx, s, func(ctx context.Context, auth client.RequestOption) (*client.Response[api.User], error) {
		return s.api.Users().Get(ctx, id, auth)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Service) UpdateTheme(ctx context.Context, id int64, theme string) (*api.ThemeData, error) {
	out, err := authed(ctx, s, func(ctx context.Context, auth client.RequestOption) (*client.Response[api.ThemeResponse], error) {
		return s.api.Users().Theme(id).Patch(ctx, api.UpdateThemeRequest{Theme: theme}, auth)
	})
	if err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// PreRegister joins the waitlist. Validation failures come back as a
// response with FieldErrors set, not as an error.
func (s *Service) PreRegister(ctx context.Context, req api.PreRegisterRequest) (*api.PreRegisterResponse, error) {
	resp, err := s.api.PreRegister().Post(ctx, req)
	if err != nil {
		return nil, err
	}
	if !resp.OK && resp.Status != http.StatusBadRequest {
		return nil, statusError(resp.Status)
	}
	out, err := resp.JSON()
	if err != nil {
		return nil, err
	}
	return &out, nil
}
