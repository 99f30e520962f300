package httpapi

import (
	"errors"
	"net/http"

	"github.com/gyulist/gyulist/internal/api"
	"github.com/gyulist/gyulist/internal/common"
	"github.com/gyulist/gyulist/internal/server/httputil"
	"github.com/gyulist/gyulist/internal/timex"
)

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, api.HealthResponse{Status: "ok"})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	u, err := s.users.Register(r.Context(), req.Email, req.Password, req.UserName)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Registered", "user_id", u.ID)
	httputil.Created(w, api.RegisterResponse{ID: u.ID})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.OK(w, api.LoginResponse{Token: token})
}

// verify always answers 200; the body says whether the token is usable.
func (s *Server) verify(w http.ResponseWriter, r *http.Request) {
	var req api.VerifyRequest
	if err := httputil.Decode(r, &req); err != nil || req.Token == "" {
		httputil.OK(w, api.VerifyResponse{Success: false, Message: "token is required"})
		return
	}

	if _, err := s.users.Verify(req.Token); err != nil {
		msg := "invalid token"
		if errors.Is(err, common.ErrTokenExpired) {
			msg = "token expired"
		}
		httputil.OK(w, api.VerifyResponse{Success: false, Message: msg})
		return
	}
	httputil.OK(w, api.VerifyResponse{Success: true, Message: "token is valid"})
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	u, err := s.users.Get(r.Context(), userIDFrom(r.Context()), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.OK(w, toUser(u))
}

func (s *Server) updateTheme(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req api.UpdateThemeRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	u, err := s.users.UpdateTheme(r.Context(), userIDFrom(r.Context()), id, req.Theme)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.OK(w, api.ThemeResponse{Data: api.ThemeData{
		ID:        u.ID,
		Theme:     string(u.Theme),
		UpdatedAt: timex.FormatTimestamp(u.UpdatedAt),
	}})
}
