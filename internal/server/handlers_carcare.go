package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lumiere-studio/internal/carcare"
	"lumiere-studio/internal/session"
)

// careResponse pairs the session with its current item list and total so
// the front-end renders one payload.
type careResponse struct {
	*session.CareState
	Items []carcare.Item `json:"items"`
	Total int64          `json:"total"`
}

func (s *Server) careView(state *session.CareState) careResponse {
	items := s.care.Items(state.Model)
	return careResponse{
		CareState: state,
		Items:     items,
		Total:     carcare.Total(items, state.Quantities),
	}
}

func (s *Server) loadCare(w http.ResponseWriter, r *http.Request) *session.CareState {
	id := chi.URLParam(r, "id")
	state, err := s.sessions.GetCare(r.Context(), id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "session not found")
		} else {
			s.logger.Error("Failed to load care session", zap.String("id", id), zap.Error(err))
			s.writeError(w, http.StatusInternalServerError, "session load failed")
		}
		return nil
	}
	return state
}

func (s *Server) saveCareAndRespond(w http.ResponseWriter, r *http.Request, state *session.CareState, status int) {
	if err := s.sessions.SaveCare(r.Context(), state); err != nil {
		s.logger.Error("Failed to save care session", zap.String("id", state.ID), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "session save failed")
		return
	}
	s.writeJSON(w, status, s.careView(state))
}

type careCreateRequest struct {
	Model string `json:"model"`
}

func (s *Server) handleCareCreate(w http.ResponseWriter, r *http.Request) {
	var req careCreateRequest
	if !s.decode(w, r, &req) {
		return
	}

	items := s.care.Items(req.Model)
	state := session.NewCareState(uuid.NewString(), items)
	state.Model = req.Model

	s.saveCareAndRespond(w, r, state, http.StatusCreated)
}

func (s *Server) handleCareGet(w http.ResponseWriter, r *http.Request) {
	state := s.loadCare(w, r)
	if state == nil {
		return
	}
	s.writeJSON(w, http.StatusOK, s.careView(state))
}

func (s *Server) handleCareDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.sessions.DeleteCare(r.Context(), id); err != nil {
		s.logger.Error("Failed to delete care session", zap.String("id", id), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "session delete failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type careToggleRequest struct {
	ItemID string `json:"itemId"`
}

func (s *Server) handleCareToggle(w http.ResponseWriter, r *http.Request) {
	state := s.loadCare(w, r)
	if state == nil {
		return
	}

	var req careToggleRequest
	if !s.decode(w, r, &req) {
		return
	}

	items := s.care.Items(state.Model)
	var found *carcare.Item
	for i := range items {
		if items[i].ID == req.ItemID {
			found = &items[i]
			break
		}
	}
	if found == nil {
		s.writeError(w, http.StatusBadRequest, "unknown item")
		return
	}

	state.Quantities.Toggle(*found)
	s.saveCareAndRespond(w, r, state, http.StatusOK)
}

type careQuantityRequest struct {
	ItemID string `json:"itemId"`
	Delta  int    `json:"delta"`
}

func (s *Server) handleCareQuantity(w http.ResponseWriter, r *http.Request) {
	state := s.loadCare(w, r)
	if state == nil {
		return
	}

	var req careQuantityRequest
	if !s.decode(w, r, &req) {
		return
	}

	state.Quantities.Adjust(req.ItemID, req.Delta)
	s.saveCareAndRespond(w, r, state, http.StatusOK)
}
