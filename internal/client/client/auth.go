package client

import (
	"context"
	"net/http"

	"github.com/gyulist/gyulist/internal/api"
)

type AuthAPI struct{ c *Client }

func (c *Client) Auth() AuthAPI { return AuthAPI{c} }

func (a AuthAPI) Register(ctx context.Context, body api.RegisterRequest, opts ...RequestOption) (*Response[api.RegisterResponse], error) {
	return send[api.RegisterResponse](ctx, a.c, http.MethodPost, api.RouteAuthRegister, nil, body, opts)
}

func (a AuthAPI) Login(ctx context.Context, body api.LoginRequest, opts ...RequestOption) (*Response[api.LoginResponse], error) {
	return send[api.LoginResponse](ctx, a.c, http.MethodPost, api.RouteAuthLogin, nil, body, opts)
}

func (a AuthAPI) Verify(ctx context.Context, body api.VerifyRequest, opts ...RequestOption) (*Response[api.VerifyResponse], error) {
	return send[api.VerifyResponse](ctx, a.c, http.MethodPost, api.RouteAuthVerify, nil, body, opts)
}

type UsersAPI struct{ c *Client }

func (c *Client) Users() UsersAPI { return UsersAPI{c} }

func (u UsersAPI) Get(ctx context.Context, id int64, opts ...RequestOption) (*Response[api.User], error) {
	return send[api.User](ctx, u.c, http.MethodGet, api.Path(api.RouteUser, "id", api.ID(id)), nil, nil, opts)
}

// Theme addresses /users/{id}/theme.
func (u UsersAPI) Theme(id int64) ThemeAPI { return ThemeAPI{u.c, id} }

type ThemeAPI struct {
	c  *Client
	id int64
}

func (t ThemeAPI) Patch(ctx context.Context, body api.UpdateThemeRequest, opts ...RequestOption) (*Response[api.ThemeResponse], error) {
	return send[api.ThemeResponse](ctx, t.c, http.MethodPatch, api.Path(api.RouteUserTheme, "id", api.ID(t.id)), nil, body, opts)
}
