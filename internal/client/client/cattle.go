package client

import (
	"context"
	"net/http"

	"github.com/gyulist/gyulist/internal/api"
)

type CattleAPI struct{ c *Client }

func (c *Client) Cattle() CattleAPI { return CattleAPI{c} }

func (a CattleAPI) List(ctx context.Context, q api.CattleListQuery, opts ...RequestOption) (*Response[api.Page[api.Cattle]], error) {
	v := query{}.
		str("search", q.Search).
		str("status", q.Status).
		str("growthStage", q.GrowthStage).
		str("gender", q.Gender).
		num("limit", int64(q.Limit)).
		num("offset", int64(q.Offset))
	return send[api.Page[api.Cattle]](ctx, a.c, http.MethodGet, api.RouteCattle, v.values(), nil, opts)
}

func (a CattleAPI) Create(ctx context.Context, body api.CreateCattleRequest, opts ...RequestOption) (*Response[api.Cattle], error) {
	return send[api.Cattle](ctx, a.c, http.MethodPost, api.RouteCattle, nil, body, opts)
}

// ID addresses a single animal.
func (a CattleAPI) ID(id int64) CattleItemAPI { return CattleItemAPI{a.c, api.ID(id)} }

type CattleItemAPI struct {
	c  *Client
	id string
}

func (i CattleItemAPI) path(route string) string {
	return api.Path(route, "id", i.id)
}

func (i CattleItemAPI) Get(ctx context.Context, opts ...RequestOption) (*Response[api.Cattle], error) {
	return send[api.Cattle](ctx, i.c, http.MethodGet, i.path(api.RouteCattleItem), nil, nil, opts)
}

func (i CattleItemAPI) Patch(ctx context.Context, body api.UpdateCattleRequest, opts ...RequestOption) (*Response[api.Cattle], error) {
	return send[api.Cattle](ctx, i.c, http.MethodPatch, i.path(api.RouteCattleItem), nil, body, opts)
}

func (i CattleItemAPI) Delete(ctx context.Context, opts ...RequestOption) (*Response[struct{}], error) {
	return send[struct{}](ctx, i.c, http.MethodDelete, i.path(api.RouteCattleItem), nil, nil, opts)
}

func (i CattleItemAPI) Status() CattleStatusAPI { return CattleStatusAPI{i} }

func (i CattleItemAPI) History() CattleHistoryAPI { return CattleHistoryAPI{i} }

type CattleStatusAPI struct{ item CattleItemAPI }

func (s CattleStatusAPI) Patch(ctx context.Context, body api.UpdateStatusRequest, opts ...RequestOption) (*Response[api.CattleResponse], error) {
	return send[api.CattleResponse](ctx, s.item.c, http.MethodPatch, s.item.path(api.RouteCattleStatus), nil, body, opts)
}

type CattleHistoryAPI struct{ item CattleItemAPI }

func (h CattleHistoryAPI) Get(ctx context.Context, opts ...RequestOption) (*Response[[]api.StatusHistory], error) {
	return send[[]api.StatusHistory](ctx, h.item.c, http.MethodGet, h.item.path(api.RouteCattleHistory), nil, nil, opts)
}
