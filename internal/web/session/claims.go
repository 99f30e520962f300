package session

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gyulist/gyulist/internal/common"
)

var (
	ErrMalformedToken = errors.New("malformed session token")
	ErrSessionExpired = errors.New("session expired")
)

// ClaimsReader decodes the payload of a session token without verifying
// its signature.
type ClaimsReader struct {
	now func() time.Time
}

func NewClaimsReader() *ClaimsReader {
	return &ClaimsReader{now: time.Now}
}

// UserID returns the userId claim of token. The token must have exactly
// three dot-separated parts, userId must be a positive integer within int64
// and, when there is an exp claim, exp must not be in the past.
func (c *ClaimsReader) UserID(token string) (int64, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return 0, ErrMalformedToken
	}

	payload, err := common.DecodeBase64UTF8(parts[1])
	if err != nil {
		return 0, ErrMalformedToken
	}

	var claims jwt.MapClaims
	if err := json.Unmarshal([]byte(payload), &claims); err != nil {
		return 0, ErrMalformedToken
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return 0, ErrMalformedToken
	}
	if exp != nil && exp.Unix() < c.now().Unix() {
		return 0, ErrSessionExpired
	}

	// user ids are positive and must fit in int64
	id, ok := claims["userId"].(float64)
	if !ok || id != math.Trunc(id) || id <= 0 || id >= math.MaxInt64 {
		return 0, ErrMalformedToken
	}
	return int64(id), nil
}

// RequireUserID reads the user id from the request's session token. Any
// failure redirects to loginPath and reports false.
func (c *ClaimsReader) RequireUserID(w http.ResponseWriter, r *http.Request, loginPath string) (int64, bool) {
	token, ok := TokenFrom(r.Context())
	if !ok {
		if token, ok = RequireToken(w, r, loginPath); !ok {
			return 0, false
		}
	}

	id, err := c.UserID(token)
	if err != nil {
		http.Redirect(w, r, loginPath, http.StatusFound)
		return 0, false
	}
	return id, true
}
