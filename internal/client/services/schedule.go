package services

import (
	"context"

	"github.com/gyulist/gyulist/internal/api"
	"github.com/gyulist/gyulist/internal/client/client"
)

func (s *Service) ListEvents(ctx context.Context, q api.EventListQuery) ([]api.Event, error) {
	return authed(ctx, s, func(ctx context.Context, auth client.RequestOption) (*client.Response[[]api.Event], error) {
		return s.api.Events().List(ctx, q, auth)
	})
}

func (s *Service) BreedingKPI(ctx context.Context, from, to string) (*api.BreedingKPIResponse, error) {
	out, err := authed(ctx, s, func(ctx context.Context, auth client.RequestOption) (*client.Response[api.BreedingKPIResponse], error) {
		return s.api.KPI().Breeding().Get(ctx, from, to, auth)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) ListShipments(ctx context.Context, q api.ShipmentListQuery) (*api.Page[api.Shipment], error) {
	p, err := authed(ctx, s, func(ctx context.Context, auth client.RequestOption) (*client.Response[api.Page[api.Shipment]], error) {
		return s.api.Shipments().List(ctx, q, auth)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) ListPlans(ctx context.Context) ([]api.ShipmentPlan, error) {
	return authed(ctx, s, func(ctx context.Context, auth client.RequestOption) (*client.Response[[]api.ShipmentPlan], error) {
		return s.api.Shipments().Plans().List(ctx, auth)
	})
}
