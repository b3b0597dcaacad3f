package server

import (
	"net/http"

	"lumiere-studio/internal/catalog"
)

type sizeEntry struct {
	ID    catalog.SizeClass `json:"id"`
	Label string            `json:"label"`
}

func (s *Server) handleSizes(w http.ResponseWriter, r *http.Request) {
	sizes := catalog.SizeClasses()
	out := make([]sizeEntry, 0, len(sizes))
	for _, sz := range sizes {
		out = append(out, sizeEntry{ID: sz, Label: sz.Label()})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleVehicles(w http.ResponseWriter, r *http.Request) {
	size := catalog.SizeClass(r.URL.Query().Get("size"))
	if size != "" && !size.Valid() {
		s.writeError(w, http.StatusBadRequest, "unknown size class")
		return
	}

	models := s.cat.Search(r.URL.Query().Get("q"), size)
	s.writeJSON(w, http.StatusOK, map[string][]string{"models": models})
}

func (s *Server) handleEtcServices(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.cat.EtcServices())
}

type estimateRequest struct {
	Model    string            `json:"model"`
	Size     catalog.SizeClass `json:"size"`
	Coverage catalog.Coverage  `json:"coverage"`
}

// handleEstimate is the stateless quote endpoint.
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if !s.decode(w, r, &req) {
		return
	}

	if req.Size == "" {
		req.Size = catalog.SizeSedan
	}
	if !req.Size.Valid() {
		s.writeError(w, http.StatusBadRequest, "unknown size class")
		return
	}
	if req.Coverage == "" {
		req.Coverage = catalog.CoverageFullBody
	}
	if !req.Coverage.Valid() {
		s.writeError(w, http.StatusBadRequest, "unknown coverage")
		return
	}

	est := s.estimator.Compute(req.Model, req.Size, req.Coverage)
	s.writeJSON(w, http.StatusOK, est)
}
