package httpapi

import (
	"net/http"

	"github.com/gyulist/gyulist/internal/api"
	"github.com/gyulist/gyulist/internal/server/httputil"
	"github.com/gyulist/gyulist/internal/server/models"
	"github.com/gyulist/gyulist/internal/server/services"
)

func (s *Server) listCattle(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	limit, offset := services.PageBounds(q.Int("limit"), q.Int("offset"))
	if errs := q.Err(); errs != nil {
		httputil.Validation(w, errs)
		return
	}

	items, total, err := s.cattle.List(r.Context(), models.CattleFilter{
		OwnerUserID: userIDFrom(r.Context()),
		Search:      q.String("search"),
		Status:      q.String("status"),
		GrowthStage: q.String("growthStage"),
		Gender:      q.String("gender"),
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.OK(w, page(mapSlice(items, toCattle), total, limit, offset))
}

func (s *Server) createCattle(w http.ResponseWriter, r *http.Request) {
	var req api.CreateCattleRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	c := &models.Cattle{
		OwnerUserID:          userIDFrom(r.Context()),
		IdentificationNumber: req.IdentificationNumber,
		EarTagNumber:         req.EarTagNumber,
		Name:                 req.Name,
		Gender:               req.Gender,
		GrowthStage:          req.GrowthStage,
		Birthday:             req.Birthday,
		Breed:                req.Breed,
		Weight:               req.Weight,
		Notes:                req.Notes,
	}
	if req.Status != nil {
		c.Status = models.CattleStatus(*req.Status)
	}

	out, err := s.cattle.Create(r.Context(), c)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.Created(w, toCattle(out))
}

func (s *Server) getCattle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	c, err := s.cattle.Get(r.Context(), userIDFrom(r.Context()), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.OK(w, toCattle(c))
}

func (s *Server) updateCattle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req api.UpdateCattleRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	c, err := s.cattle.Update(r.Context(), userIDFrom(r.Context()), id, models.CattlePatch{
		IdentificationNumber: req.IdentificationNumber,
		EarTagNumber:         req.EarTagNumber,
		Name:                 req.Name,
		Gender:               req.Gender,
		GrowthStage:          req.GrowthStage,
		Birthday:             req.Birthday,
		Breed:                req.Breed,
		Weight:               req.Weight,
		Notes:                req.Notes,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.OK(w, toCattle(c))
}

func (s *Server) deleteCattle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := s.cattle.Delete(r.Context(), userIDFrom(r.Context()), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.NoContent(w)
}

func (s *Server) updateCattleStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req api.UpdateStatusRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	c, err := s.cattle.UpdateStatus(r.Context(), userIDFrom(r.Context()), id, req.Status, req.Reason)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Status changed", "cattle_id", id, "status", c.Status)
	httputil.OK(w, api.CattleResponse{Data: toCattle(c)})
}

func (s *Server) cattleHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	h, err := s.cattle.History(r.Context(), userIDFrom(r.Context()), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := make([]api.StatusHistory, 0, len(h))
	for _, row := range h {
		out = append(out, toHistory(row))
	}
	httputil.OK(w, out)
}
