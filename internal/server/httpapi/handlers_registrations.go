package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gyulist/gyulist/internal/api"
	"github.com/gyulist/gyulist/internal/server/httputil"
	"github.com/gyulist/gyulist/internal/server/models"
	"github.com/gyulist/gyulist/internal/server/services"
)

const (
	codeValidationFailed = "VALIDATION_FAILED"
	codeInvalidRequest   = "INVALID_REQUEST"
	codeInternal         = "INTERNAL_ERROR"
)

// preRegister answers in its own envelope: {ok, alreadyRegistered} or
// {ok:false, code, fieldErrors}.
func (s *Server) preRegister(w http.ResponseWriter, r *http.Request) {
	var req api.PreRegisterRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.JSON(w, http.StatusBadRequest, api.PreRegisterResponse{Code: codeInvalidRequest})
		return
	}

	in := services.PreRegisterInput{Email: req.Email, Locale: req.Locale}
	if req.ReferralSource != nil {
		in.ReferralSource = *req.ReferralSource
	}

	res, err := s.registrations.PreRegister(r.Context(), in)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			httputil.JSON(w, http.StatusBadRequest, api.PreRegisterResponse{
				Code:        codeValidationFailed,
				FieldErrors: ve.Fields,
			})
			return
		}
		s.logger.Error(r.Context(), "pre-register failed", "error", err)
		httputil.JSON(w, http.StatusInternalServerError, api.PreRegisterResponse{Code: codeInternal})
		return
	}

	httputil.OK(w, api.PreRegisterResponse{OK: true, AlreadyRegistered: res.AlreadyRegistered})
}

func (s *Server) listRegistrations(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	f := models.RegistrationFilter{
		Query:  q.String("q"),
		Status: q.String("status"),
		From:   q.Instant("from", false),
		To:     q.Instant("to", true),
	}
	f.Limit, f.Offset = services.PageBounds(q.Int("limit"), q.Int("offset"))
	if errs := q.Err(); errs != nil {
		httputil.Validation(w, errs)
		return
	}

	items, total, err := s.registrations.List(r.Context(), f)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.OK(w, page(mapSlice(items, toRegistration), total, f.Limit, f.Offset))
}

func (s *Server) updateRegistrationStatus(w http.ResponseWriter, r *http.Request) {
	var req api.UpdateRegistrationStatusRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	reg, err := s.registrations.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.OK(w, toRegistration(reg))
}

func (s *Server) listEmailLogs(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	limit, offset := services.PageBounds(q.Int("limit"), q.Int("offset"))
	if errs := q.Err(); errs != nil {
		httputil.Validation(w, errs)
		return
	}

	logs, total, err := s.registrations.EmailLogs(r.Context(), q.String("email"), limit, offset)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.OK(w, page(mapSlice(logs, toEmailLog), total, limit, offset))
}
