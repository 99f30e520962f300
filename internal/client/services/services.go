// Package services contains the operator operations shared by the web app
// and the CLI. Each call fetches the session token through a TokenSource,
// performs exactly one API request with it, and turns a non-2xx answer into
// an error wrapping client.ErrRequestFailed.
package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gyulist/gyulist/internal/client/client"
	"github.com/gyulist/gyulist/internal/common"
)

type Service struct {
	api    *client.Client
	tokens client.TokenSource
}

func New(c *client.Client, tokens client.TokenSource) *Service {
	return &Service{api: c, tokens: tokens}
}

// StatusError is a non-2xx answer from the API. It always matches
// client.ErrRequestFailed; 401 and 404 additionally match
// client.ErrUnauthorized and common.ErrorNotFound.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	errs := e.Unwrap()
	if len(errs) > 1 {
		return fmt.Sprintf("%v: %v (status %d)", errs[0], errs[1], e.Status)
	}
	return fmt.Sprintf("%v: status %d", errs[0], e.Status)
}

func (e *StatusError) Unwrap() []error {
	switch e.Status {
	case http.StatusUnauthorized:
		return []error{client.ErrRequestFailed, client.ErrUnauthorized}
	case http.StatusNotFound:
		return []error{client.ErrRequestFailed, common.ErrorNotFound}
	}
	return []error{client.ErrRequestFailed}
}

func statusError(status int) error {
	return &StatusError{Status: status}
}

func result[T any](resp *client.Response[T], err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	if !resp.OK {
		var zero T
		return zero, statusError(resp.Status)
	}
	return resp.JSON()
}

// authed runs call with the caller's bearer token.
func authed[T any](ctx context.Context, s *Service, call func(ctx context.Context, auth client.RequestOption) (*client.Response[T], error)) (T, error) {
	return client.WithToken(ctx, s.tokens, func(ctx context.Context, token string) (T, error) {
		resp, err := call(ctx, client.Bearer(token))
		return result(resp, err)
	})
}
