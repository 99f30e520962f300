package web

import (
	"net/http"
	"slices"

	"github.com/gyulist/gyulist/internal/api"
	"github.com/gyulist/gyulist/internal/web/session"
)

type settingsData struct {
	User   *api.User
	Themes []string
}

func (s *Server) settings(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.claims.RequireUserID(w, r, session.LoginPath)
	if !ok {
		return
	}

	u, err := s.svc.GetUser(r.Context(), userID)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	p := page{Title: "Settings", Nav: true, Data: settingsData{User: u, Themes: api.Themes}}
	if r.URL.Query().Has("saved") {
		p.Flash = "Saved."
	}
	s.show(w, r, http.StatusOK, "settings", p)
}

func (s *Server) updateTheme(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.claims.RequireUserID(w, r, session.LoginPath)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		s.badForm(w, r, err)
		return
	}

	theme := r.PostForm.Get("theme")
	if !slices.Contains(api.Themes, theme) {
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}

	out, err := s.svc.UpdateTheme(r.Context(), userID, theme)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     themeCookie,
		Value:    out.Theme,
		Path:     "/",
		MaxAge:   int(s.sessionMaxAge.Seconds()),
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/settings?saved=1", http.StatusSeeOther)
}
