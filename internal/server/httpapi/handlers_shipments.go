package httpapi

import (
	"net/http"

	"github.com/gyulist/gyulist/internal/api"
	"github.com/gyulist/gyulist/internal/server/httputil"
	"github.com/gyulist/gyulist/internal/server/models"
	"github.com/gyulist/gyulist/internal/server/services"
)

func (s *Server) listShipments(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	limit, offset := services.PageBounds(q.Int("limit"), q.Int("offset"))
	if errs := q.Err(); errs != nil {
		httputil.Validation(w, errs)
		return
	}

	items, total, err := s.shipments.List(r.Context(), models.ShipmentFilter{
		OwnerUserID: userIDFrom(r.Context()),
		From:        q.String("from"),
		To:          q.String("to"),
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.OK(w, page(mapSlice(items, toShipment), total, limit, offset))
}

func (s *Server) createShipment(w http.ResponseWriter, r *http.Request) {
	var req api.CreateShipmentRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	out, err := s.shipments.Create(r.Context(), userIDFrom(r.Context()), &models.Shipment{
		CattleID:      req.CattleID,
		ShipmentDate:  req.ShipmentDate,
		Price:         req.Price,
		Weight:        req.Weight,
		AgeAtShipment: req.AgeAtShipment,
		Buyer:         req.Buyer,
		Notes:         req.Notes,
	}, req.MarkShipped)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.Created(w, toShipment(out))
}

func (s *Server) deleteShipment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := s.shipments.Delete(r.Context(), userIDFrom(r.Context()), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.NoContent(w)
}

func (s *Server) listPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := s.shipments.Plans(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.OK(w, mapSlice(plans, toPlan))
}

func (s *Server) putPlan(w http.ResponseWriter, r *http.Request) {
	cattleID, ok := pathID(r, "cattleId")
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid cattleId")
		return
	}

	var req api.PutShipmentPlanRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	p, err := s.shipments.PutPlan(r.Context(), userIDFrom(r.Context()), cattleID, req.PlannedShipmentMonth)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.OK(w, toPlan(p))
}

func (s *Server) deletePlan(w http.ResponseWriter, r *http.Request) {
	cattleID, ok := pathID(r, "cattleId")
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid cattleId")
		return
	}

	if err := s.shipments.DeletePlan(r.Context(), userIDFrom(r.Context()), cattleID); err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.NoContent(w)
}
