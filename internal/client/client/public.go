package client

import (
	"context"
	"net/http"

	"github.com/gyulist/gyulist/internal/api"
)

func (c *Client) Health(ctx context.Context, opts ...RequestOption) (*Response[api.HealthResponse], error) {
	return send[api.HealthResponse](ctx, c, http.MethodGet, api.RouteHealth, nil, nil, opts)
}

type PreRegisterAPI struct{ c *Client }

func (c *Client) PreRegister() PreRegisterAPI { return PreRegisterAPI{c} }

func (p PreRegisterAPI) Post(ctx context.Context, body api.PreRegisterRequest, opts ...RequestOption) (*Response[api.PreRegisterResponse], error) {
	return send[api.PreRegisterResponse](ctx, p.c, http.MethodPost, api.RoutePreRegister, nil, body, opts)
}
