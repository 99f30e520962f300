// Package session guards the operator web pages. It checks that a session
// cookie is present, exposes the token to the typed API client, and reads
// the user id out of the token for display purposes. Signatures are never
// checked here; the API server verifies every bearer token.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/gyulist/gyulist/internal/client/client"
	"github.com/gyulist/gyulist/internal/common"
)

// LoginPath is where unauthenticated visitors are sent.
const LoginPath = "/login"

type ctxKey struct{}

// WithToken stores the session token in ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKey{}, token)
}

// TokenFrom returns the token stored by WithToken.
func TokenFrom(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(ctxKey{}).(string)
	return t, ok && t != ""
}

// cookieToken reads the session cookie. An empty value counts as absent.
func cookieToken(r *http.Request) (string, bool) {
	c, err := r.Cookie(common.SessionCookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// RequireToken returns the session token, or redirects to loginPath and
// reports false when there is none. The value is not validated.
func RequireToken(w http.ResponseWriter, r *http.Request, loginPath string) (string, bool) {
	token, ok := cookieToken(r)
	if !ok {
		http.Redirect(w, r, loginPath, http.StatusFound)
		return "", false
	}
	return token, true
}

// Guard is middleware that lets a request through only when it carries a
// session cookie, placing the token into the request context.
func Guard(loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := RequireToken(w, r, loginPath)
			if !ok {
				return
			}
			next.ServeHTTP(w, r.WithContext(WithToken(r.Context(), token)))
		})
	}
}

// ContextTokens is the client.TokenSource of the web app: the token Guard
// put into the request context.
type ContextTokens struct{}

func (ContextTokens) Token(ctx context.Context) (string, error) {
	if t, ok := TokenFrom(ctx); ok {
		return t, nil
	}
	return "", client.ErrNoToken
}

// SetCookie stores token in an HttpOnly, SameSite=Lax cookie.
func SetCookie(w http.ResponseWriter, token string, secure bool, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
