package httpapi

import (
	"errors"
	"net/http"

	"github.com/gyulist/gyulist/internal/common"
	"github.com/gyulist/gyulist/internal/server/httputil"
	"github.com/gyulist/gyulist/internal/server/services"
)

// writeError maps service errors onto HTTP statuses. Unknown errors are
// logged and reported as a bare 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		httputil.Validation(w, ve.Fields)
	case errors.Is(err, common.ErrorNotFound):
		httputil.Error(w, http.StatusNotFound, "not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		httputil.Error(w, http.StatusConflict, "already exists")
	case errors.Is(err, common.ErrorUnauthorized):
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, common.ErrorForbidden):
		httputil.Error(w, http.StatusForbidden, "forbidden")
	default:
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		httputil.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
