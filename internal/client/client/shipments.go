package client

import (
	"context"
	"net/http"

	"github.com/gyulist/gyulist/internal/api"
)

type ShipmentsAPI struct{ c *Client }

func (c *Client) Shipments() ShipmentsAPI { return ShipmentsAPI{c} }

func (a ShipmentsAPI) List(ctx context.Context, q api.ShipmentListQuery, opts ...RequestOption) (*Response[api.Page[api.Shipment]], error) {
	v := query{}.
		str("from", q.From).
		str("to", q.To).
		num("limit", int64(q.Limit)).
		num("offset", int64(q.Offset))
	return send[api.Page[api.Shipment]](ctx, a.c, http.MethodGet, api.RouteShipments, v.values(), nil, opts)
}

func (a ShipmentsAPI) Create(ctx context.Context, body api.CreateShipmentRequest, opts ...RequestOption) (*Response[api.Shipment], error) {
	return send[api.Shipment](ctx, a.c, http.MethodPost, api.RouteShipments, nil, body, opts)
}

func (a ShipmentsAPI) Delete(ctx context.Context, id int64, opts ...RequestOption) (*Response[struct{}], error) {
	return send[struct{}](ctx, a.c, http.MethodDelete, api.Path(api.RouteShipmentItem, "id", api.ID(id)), nil, nil, opts)
}

func (a ShipmentsAPI) Plans() PlansAPI { return PlansAPI{a.c} }

type PlansAPI struct{ c *Client }

func (p PlansAPI) List(ctx context.Context, opts ...RequestOption) (*Response[[]api.ShipmentPlan], error) {
	return send[[]api.ShipmentPlan](ctx, p.c, http.MethodGet, api.RouteShipmentPlans, nil, nil, opts)
}

func (p PlansAPI) Put(ctx context.Context, cattleID int64, body api.PutShipmentPlanRequest, opts ...RequestOption) (*Response[api.ShipmentPlan], error) {
	path := api.Path(api.RouteShipmentPlan, "cattleId", api.ID(cattleID))
	return send[api.ShipmentPlan](ctx, p.c, http.MethodPut, path, nil, body, opts)
}

func (p PlansAPI) Delete(ctx context.Context, cattleID int64, opts ...RequestOption) (*Response[struct{}], error) {
	path := api.Path(api.RouteShipmentPlan, "cattleId", api.ID(cattleID))
	return send[struct{}](ctx, p.c, http.MethodDelete, path, nil, nil, opts)
}
