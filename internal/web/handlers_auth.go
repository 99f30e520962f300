package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gyulist/gyulist/internal/api"
	"github.com/gyulist/gyulist/internal/client/client"
	"github.com/gyulist/gyulist/internal/web/session"
)

type loginData struct {
	Email string
	Error string
}

func (s *Server) loginForm(w http.ResponseWriter, r *http.Request) {
	s.show(w, r, http.StatusOK, "login", page{Title: "Log in", Data: loginData{}})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.show(w, r, http.StatusBadRequest, "login", page{Title: "Log in", Data: loginData{Error: "Invalid form."}})
		return
	}

	email := strings.TrimSpace(r.PostForm.Get("email"))
	password := r.PostForm.Get("password")
	if email == "" || password == "" {
		s.show(w, r, http.StatusBadRequest, "login", page{Title: "Log in", Data: loginData{Email: email, Error: "Enter your email and password."}})
		return
	}

	token, err := s.svc.Login(r.Context(), email, password)
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		s.show(w, r, http.StatusUnauthorized, "login", page{Title: "Log in", Data: loginData{Email: email, Error: "Invalid email or password."}})
		return
	case err != nil:
		s.logger.Error(r.Context(), "login failed", "error", err)
		s.show(w, r, http.StatusBadGateway, "login", page{Title: "Log in", Data: loginData{Email: email, Error: "Login is unavailable. Try again later."}})
		return
	}

	session.SetCookie(w, token, s.secureCookies, s.sessionMaxAge)
	http.Redirect(w, r, "/cattle", http.StatusSeeOther)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	session.ClearCookie(w, s.secureCookies)
	http.Redirect(w, r, session.LoginPath, http.StatusSeeOther)
}

type preRegisterData struct {
	Email             string
	ReferralSource    string
	Locale            string
	FieldErrors       api.FieldErrors
	Error             string
	Done              bool
	AlreadyRegistered bool
}

func (s *Server) preRegisterForm(w http.ResponseWriter, r *http.Request) {
	s.show(w, r, http.StatusOK, "pre_register", page{Title: "Join the waitlist", Data: preRegisterData{Locale: "ja"}})
}

func (s *Server) preRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.show(w, r, http.StatusBadRequest, "pre_register", page{
			Title: "Join the waitlist",
			Data:  preRegisterData{Locale: "ja", Error: "The form could not be read."},
		})
		return
	}
	data := preRegisterData{
		Email:          strings.TrimSpace(r.PostForm.Get("email")),
		ReferralSource: strings.TrimSpace(r.PostForm.Get("referralSource")),
		Locale:         r.PostForm.Get("locale"),
	}

	req := api.PreRegisterRequest{Email: data.Email, Locale: data.Locale}
	if data.ReferralSource != "" {
		req.ReferralSource = &data.ReferralSource
	}

	out, err := s.svc.PreRegister(r.Context(), req)
	if err != nil {
		s.logger.Error(r.Context(), "pre-register failed", "error", err)
		data.Error = "Registration is unavailable. Try again later."
		s.show(w, r, http.StatusBadGateway, "pre_register", page{Title: "Join the waitlist", Data: data})
		return
	}

	if !out.OK {
		data.FieldErrors = out.FieldErrors
		s.show(w, r, http.StatusBadRequest, "pre_register", page{Title: "Join the waitlist", Data: data})
		return
	}

	data.Done = true
	data.AlreadyRegistered = out.AlreadyRegistered
	s.show(w, r, http.StatusOK, "pre_register", page{Title: "Join the waitlist", Data: data})
}
