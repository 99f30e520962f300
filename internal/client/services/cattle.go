package services

import (
	"context"

	"github.com/gyulist/gyulist/internal/api"
	"github.com/gyulist/gyulist/internal/client/client"
)

func (s *Service) ListCattle(ctx context.Context, q api.CattleListQuery) (*api.Page[api.Cattle], error) {
	p, err := authed(ctx, s, func(ctx context.Context, auth client.RequestOption) (*client.Response[api.Page[api.Cattle]], error) {
		return s.api.Cattle().List(ctx, q, auth)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) GetCattle(ctx context.Context, id int64) (*api.Cattle, error) {
	c, err := authed(ctx, s, func(ctx context.Context, auth client.RequestOption) (*client.Response[api.Cattle], error) {
		return s.api.Cattle().ID(id).Get(ctx, auth)
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) CattleHistory(ctx context.Context, id int64) ([]api.StatusHistory, error) {
	return authed(ctx, s, func(ctx context.Context, auth client.RequestOption) (*client.Response[[]api.StatusHistory], error) {
		return s.api.Cattle().ID(id).History().Get(ctx, auth)
	})
}

// UpdateCattleStatus sends a single PATCH /cattle/{id}/status.
func (s *Service) UpdateCattleStatus(ctx context.Context, id int64, status, reason string) (*api.Cattle, error) {
	out, err := authed(ctx, s, func(ctx context.Context, auth client.RequestOption) (*client.Response[api.CattleResponse], error) {
		return s.api.Cattle().ID(id).Status().Patch(ctx, api.UpdateStatusRequest{Status: status, Reason: reason}, auth)
	})
	if err != nil {
		return nil, err
	}
	return &out.Data, nil
}
