package client

import "context"

// TokenSource yields the session token of the current caller.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func(ctx context.Context) (string, error)

func (f TokenFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// StaticToken always returns the same token.
type StaticToken string

func (t StaticToken) Token(context.Context) (string, error) {
	if t == "" {
		return "", ErrNoToken
	}
	return string(t), nil
}

// WithToken fetches the current token from src and runs fn with it. The
// result and error of fn are returned unchanged; a token source failure is
// returned as is and fn is not called.
func WithToken[T any](ctx context.Context, src TokenSource, fn func(ctx context.Context, token string) (T, error)) (T, error) {
	token, err := src.Token(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return fn(ctx, token)
}
