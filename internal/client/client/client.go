package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gyulist/gyulist/internal/common"
)

// Client talks to the gyulist API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// New returns a client for the server at baseURL, e.g. "http://127.0.0.1:8787".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// RequestOption adjusts an outgoing request.
type RequestOption func(*http.Request)

// Bearer sets "Authorization: Bearer <token>".
func Bearer(token string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
}

// Response is the outcome of a call that reached the server.
type Response[T any] struct {
	OK     bool
	Status int
	Body   []byte
}

// JSON decodes the body as T. An empty body yields the zero value.
func (r *Response[T]) JSON() (T, error) {
	var v T
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(r.Body, &v); err != nil {
		return v, fmt.Errorf("decode response (status %d): %w", r.Status, err)
	}
	return v, nil
}

// send performs one round trip. Only transport and encoding failures are
// errors; any HTTP status is returned in the Response.
func send[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any, opts []RequestOption) (*Response[T], error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, o := range opts {
		o(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response[T]{
		OK:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		Status: resp.StatusCode,
		Body:   data,
	}, nil
}

// query collects non-empty parameters.
type query url.Values

func (q query) str(k, v string) query {
	if v != "" {
		url.Values(q).Set(k, v)
	}
	return q
}

func (q query) num(k string, v int64) query {
	if v != 0 {
		url.Values(q).Set(k, fmt.Sprint(v))
	}
	return q
}

func (q query) values() url.Values {
	return url.Values(q)
}
