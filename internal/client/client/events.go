package client

import (
	"context"
	"net/http"

	"github.com/gyulist/gyulist/internal/api"
)

type EventsAPI struct{ c *Client }

func (c *Client) Events() EventsAPI { return EventsAPI{c} }

func (a EventsAPI) List(ctx context.Context, q api.EventListQuery, opts ...RequestOption) (*Response[[]api.Event], error) {
	v := query{}.
		num("cattleId", q.CattleID).
		str("from", q.From).
		str("to", q.To).
		num("limit", int64(q.Limit)).
		num("offset", int64(q.Offset))
	return send[[]api.Event](ctx, a.c, http.MethodGet, api.RouteEvents, v.values(), nil, opts)
}

func (a EventsAPI) Create(ctx context.Context, body api.CreateEventRequest, opts ...RequestOption) (*Response[api.Event], error) {
	return send[api.Event](ctx, a.c, http.MethodPost, api.RouteEvents, nil, body, opts)
}

func (a EventsAPI) Delete(ctx context.Context, id int64, opts ...RequestOption) (*Response[struct{}], error) {
	return send[struct{}](ctx, a.c, http.MethodDelete, api.Path(api.RouteEventItem, "id", api.ID(id)), nil, nil, opts)
}

type KPIAPI struct{ c *Client }

func (c *Client) KPI() KPIAPI { return KPIAPI{c} }

func (k KPIAPI) Breeding() BreedingAPI { return BreedingAPI{k.c} }

type BreedingAPI struct{ c *Client }

// Get fetches breeding metrics. from and to are YYYY-MM-DD; empty values
// leave the range to the server default.
func (b BreedingAPI) Get(ctx context.Context, from, to string, opts ...RequestOption) (*Response[api.BreedingKPIResponse], error) {
	v := query{}.str("from", from).str("to", to)
	return send[api.BreedingKPIResponse](ctx, b.c, http.MethodGet, api.RouteBreedingKPI, v.values(), nil, opts)
}
