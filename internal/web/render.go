package web

import (
	"errors"
	"net/http"

	"github.com/gyulist/gyulist/internal/client/client"
	"github.com/gyulist/gyulist/internal/common"
	"github.com/gyulist/gyulist/internal/web/session"
)

const themeCookie = "theme"

// show renders a page. Pages behind the guard get the navigation bar.
func (s *Server) show(w http.ResponseWriter, r *http.Request, status int, name string, p page) {
	if c, err := r.Cookie(themeCookie); err == nil {
		p.Theme = c.Value
	}
	if err := s.pages.render(w, status, name, p); err != nil {
		s.logger.Error(r.Context(), "render failed", "page", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// badForm answers an unparsable form body on a guarded page.
func (s *Server) badForm(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Warn(r.Context(), "bad form", "path", r.URL.Path, "error", err)
	s.show(w, r, http.StatusBadRequest, "error", page{Title: "Bad request", Nav: true, Data: "The form could not be read."})
}

// fail turns an API failure into a response. A rejected token ends the
// session, a missing record is a 404 page, anything else is logged.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, client.ErrUnauthorized), errors.Is(err, client.ErrNoToken):
		session.ClearCookie(w, s.secureCookies)
		http.Redirect(w, r, session.LoginPath, http.StatusFound)
	case errors.Is(err, common.ErrorNotFound):
		s.show(w, r, http.StatusNotFound, "error", page{Title: "Not found", Nav: true, Data: "The record does not exist."})
	default:
		s.logger.Error(r.Context(), "api call failed", "path", r.URL.Path, "error", err)
		s.show(w, r, http.StatusBadGateway, "error", page{Title: "Error", Nav: true, Data: "Something went wrong. Try again later."})
	}
}
