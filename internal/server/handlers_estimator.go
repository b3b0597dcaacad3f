package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lumiere-studio/internal/catalog"
	"lumiere-studio/internal/estimate"
	"lumiere-studio/internal/session"
	"lumiere-studio/pkg/advisory"
)

func (s *Server) loadEstimator(w http.ResponseWriter, r *http.Request) *session.EstimatorState {
	id := chi.URLParam(r, "id")
	state, err := s.sessions.GetEstimator(r.Context(), id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "session not found")
		} else {
			s.logger.Error("Failed to load estimator session", zap.String("id", id), zap.Error(err))
			s.writeError(w, http.StatusInternalServerError, "session load failed")
		}
		return nil
	}
	return state
}

// bumpSeq marks an input change so in-flight advisory results for the
// previous inputs are discarded on arrival.
func (s *Server) bumpSeq(ctx context.Context, state *session.EstimatorState) error {
	seq, err := s.sessions.NextSeq(ctx, state.ID)
	if err != nil {
		return err
	}
	state.Seq = seq
	return nil
}

// recompute refreshes the cached estimate once the session has gone live.
func (s *Server) recompute(state *session.EstimatorState) {
	if !state.Live {
		return
	}
	est := s.estimator.Compute(state.Model, state.Size, state.Coverage)
	state.Estimate = &est
}

func (s *Server) saveAndRespond(w http.ResponseWriter, r *http.Request, state *session.EstimatorState) {
	if err := s.sessions.SaveEstimator(r.Context(), state); err != nil {
		s.logger.Error("Failed to save estimator session", zap.String("id", state.ID), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "session save failed")
		return
	}
	s.writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleEstimatorCreate(w http.ResponseWriter, r *http.Request) {
	state := session.NewEstimatorState(uuid.NewString())
	if err := s.sessions.SaveEstimator(r.Context(), state); err != nil {
		s.logger.Error("Failed to create estimator session", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "session create failed")
		return
	}
	s.writeJSON(w, http.StatusCreated, state)
}

func (s *Server) handleEstimatorGet(w http.ResponseWriter, r *http.Request) {
	state := s.loadEstimator(w, r)
	if state == nil {
		return
	}
	s.writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleEstimatorDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.sessions.DeleteEstimator(r.Context(), id); err != nil {
		s.logger.Error("Failed to delete estimator session", zap.String("id", id), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "session delete failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type selectionRequest struct {
	Model    string            `json:"model"`
	Size     catalog.SizeClass `json:"size"`
	Coverage catalog.Coverage  `json:"coverage"`
}

func (s *Server) handleEstimatorSelection(w http.ResponseWriter, r *http.Request) {
	state := s.loadEstimator(w, r)
	if state == nil {
		return
	}

	var req selectionRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Size != "" && !req.Size.Valid() {
		s.writeError(w, http.StatusBadRequest, "unknown size class")
		return
	}
	if req.Coverage != "" && !req.Coverage.Valid() {
		s.writeError(w, http.StatusBadRequest, "unknown coverage")
		return
	}

	state.Model = req.Model
	if req.Size != "" {
		state.Size = req.Size
	}
	// A catalogued model pins its own size class.
	if v, ok := s.cat.Lookup(req.Model); ok {
		state.Size = v.Size
	}
	if req.Coverage != "" {
		state.Coverage = req.Coverage
	}
	if state.Coverage != catalog.CoverageEtc {
		state.EtcServiceID = ""
	}

	if err := s.bumpSeq(r.Context(), state); err != nil {
		s.logger.Error("Failed to advance session seq", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "session save failed")
		return
	}
	s.recompute(state)
	s.saveAndRespond(w, r, state)
}

type packageRequest struct {
	Package estimate.PackageType `json:"package"`
}

func (s *Server) handleEstimatorPackage(w http.ResponseWriter, r *http.Request) {
	state := s.loadEstimator(w, r)
	if state == nil {
		return
	}

	var req packageRequest
	if !s.decode(w, r, &req) {
		return
	}
	if !req.Package.Valid() {
		s.writeError(w, http.StatusBadRequest, "unknown package")
		return
	}

	state.Package = req.Package
	if err := s.bumpSeq(r.Context(), state); err != nil {
		s.logger.Error("Failed to advance session seq", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "session save failed")
		return
	}
	s.recompute(state)
	s.saveAndRespond(w, r, state)
}

type etcRequest struct {
	EtcServiceID string `json:"etcServiceId"`
}

func (s *Server) handleEstimatorEtc(w http.ResponseWriter, r *http.Request) {
	state := s.loadEstimator(w, r)
	if state == nil {
		return
	}

	var req etcRequest
	if !s.decode(w, r, &req) {
		return
	}
	if _, ok := s.cat.EtcByID(req.EtcServiceID); !ok {
		s.writeError(w, http.StatusBadRequest, "unknown etc service")
		return
	}

	state.Coverage = catalog.CoverageEtc
	state.EtcServiceID = req.EtcServiceID
	if err := s.bumpSeq(r.Context(), state); err != nil {
		s.logger.Error("Failed to advance session seq", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "session save failed")
		return
	}
	s.recompute(state)
	s.saveAndRespond(w, r, state)
}

type consultRequest struct {
	Grade catalog.FilmGrade `json:"grade"`
}

// handleEstimatorConsult latches live mode, computes the estimate and
// kicks off the concierge analysis in the background. The response never
// waits for the advisory; it lands on the session when ready, unless the
// inputs changed in the meantime.
func (s *Server) handleEstimatorConsult(w http.ResponseWriter, r *http.Request) {
	state := s.loadEstimator(w, r)
	if state == nil {
		return
	}

	var req consultRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Grade == "" {
		req.Grade = catalog.GradeStandard
	}

	state.Live = true
	if err := s.bumpSeq(r.Context(), state); err != nil {
		s.logger.Error("Failed to advance session seq", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "session save failed")
		return
	}
	s.recompute(state)

	if err := s.sessions.SaveEstimator(r.Context(), state); err != nil {
		s.logger.Error("Failed to save estimator session", zap.String("id", state.ID), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "session save failed")
		return
	}

	go s.fetchAdvisory(state.ID, state.Seq, advisory.ConsultRequest{
		CarModel: state.Model,
		CarSize:  string(state.Size),
		Coverage: string(state.Coverage),
		Grade:    string(req.Grade),
	})

	s.writeJSON(w, http.StatusOK, state)
}

func (s *Server) fetchAdvisory(sessionID string, seq int64, req advisory.ConsultRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), advisoryTimeout)
	defer cancel()

	text := s.advisor.Consult(ctx, req)

	state, err := s.sessions.GetEstimator(ctx, sessionID)
	if err != nil {
		// Session deleted or expired while we were consulting.
		if !errors.Is(err, session.ErrNotFound) {
			s.logger.Error("Failed to reload session for advisory", zap.Error(err))
		}
		return
	}

	if state.Seq != seq {
		s.logger.Debug("Discarding stale advisory result",
			zap.String("session_id", sessionID),
			zap.Int64("result_seq", seq),
			zap.Int64("session_seq", state.Seq))
		return
	}

	state.Advisory = text
	state.AdvisorySeq = seq
	if err := s.sessions.SaveEstimator(ctx, state); err != nil {
		s.logger.Error("Failed to store advisory result", zap.Error(err))
	}
}
