package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gyulist/gyulist/internal/api"
	"github.com/gyulist/gyulist/internal/client/services"
	"github.com/gyulist/gyulist/internal/common"
)

const cattlePageSize = 20

type cattleListData struct {
	Query    api.CattleListQuery
	Statuses []string
	Page     *api.Page[api.Cattle]
	PrevURL  string
	NextURL  string
}

func (s *Server) cattleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	offset, _ := strconv.Atoi(q.Get("offset"))
	if offset < 0 {
		offset = 0
	}

	query := api.CattleListQuery{
		Search: strings.TrimSpace(q.Get("search")),
		Status: q.Get("status"),
		Limit:  cattlePageSize,
		Offset: offset,
	}

	p, err := s.svc.ListCattle(r.Context(), query)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	data := cattleListData{Query: query, Statuses: api.CattleStatuses, Page: p}
	if offset > 0 {
		data.PrevURL = cattleListURL(query, max(offset-cattlePageSize, 0))
	}
	if offset+len(p.Results) < p.Total {
		data.NextURL = cattleListURL(query, offset+len(p.Results))
	}

	s.show(w, r, http.StatusOK, "cattle_list", page{Title: "Cattle", Nav: true, Data: data})
}

func cattleListURL(q api.CattleListQuery, offset int) string {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if offset > 0 {
		v.Set("offset", strconv.Itoa(offset))
	}
	if len(v) == 0 {
		return "/cattle"
	}
	return "/cattle?" + v.Encode()
}

type cattleDetailData struct {
	Cattle   *api.Cattle
	History  []api.StatusHistory
	Statuses []string
}

func cattleID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, common.ErrorNotFound
	}
	return id, nil
}

func (s *Server) cattleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := cattleID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	c, err := s.svc.GetCattle(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	history, err := s.svc.CattleHistory(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	p := page{
		Title: cattleTitle(c),
		Nav:   true,
		Data:  cattleDetailData{Cattle: c, History: history, Statuses: api.CattleStatuses},
	}
	switch {
	case r.URL.Query().Has("updated"):
		p.Flash = "Status updated."
	case r.URL.Query().Has("failed"):
		p.Flash = "The status could not be updated."
	}
	s.show(w, r, http.StatusOK, "cattle_detail", p)
}

func cattleTitle(c *api.Cattle) string {
	if c.Name != nil && *c.Name != "" {
		return *c.Name
	}
	return "#" + strconv.FormatInt(c.IdentificationNumber, 10)
}

func (s *Server) cattleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := cattleID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.badForm(w, r, err)
		return
	}

	status := r.PostForm.Get("status")
	reason := strings.TrimSpace(r.PostForm.Get("reason"))

	detail := "/cattle/" + strconv.FormatInt(id, 10)
	_, err = s.svc.UpdateCattleStatus(r.Context(), id, status, reason)
	switch {
	case err == nil:
		http.Redirect(w, r, detail+"?updated=1", http.StatusSeeOther)
	case rejected(err):
		s.logger.Warn(r.Context(), "status update rejected", "cattle_id", id, "status", status, "error", err)
		http.Redirect(w, r, detail+"?failed=1", http.StatusSeeOther)
	default:
		s.fail(w, r, err)
	}
}

// rejected reports a 4xx answer other than 401 or 404, e.g. a validation
// failure.
func rejected(err error) bool {
	var se *services.StatusError
	if !errors.As(err, &se) {
		return false
	}
	return se.Status >= 400 && se.Status < 500 &&
		se.Status != http.StatusUnauthorized && se.Status != http.StatusNotFound
}
