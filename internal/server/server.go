// Package server exposes the studio's estimator, car-care and booking
// flows as a JSON API consumed by the static front-end.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"lumiere-studio/internal/carcare"
	"lumiere-studio/internal/catalog"
	"lumiere-studio/internal/config"
	"lumiere-studio/internal/estimate"
	"lumiere-studio/internal/notify"
	"lumiere-studio/internal/session"
	"lumiere-studio/internal/storage"
	"lumiere-studio/pkg/advisory"
	"lumiere-studio/pkg/rates"
)

// advisoryTimeout bounds the background consultation fetch; the HTTP
// request itself never waits on it.
const advisoryTimeout = 30 * time.Second

type Server struct {
	logger    *zap.Logger
	cfg       *config.Config
	cat       *catalog.Catalog
	estimator *estimate.Engine
	care      *carcare.Engine
	sessions  session.Store
	store     storage.Store
	notifier  *notify.Notifier
	advisor   *advisory.Client
	rates     *rates.Client
}

func New(
	logger *zap.Logger,
	cfg *config.Config,
	cat *catalog.Catalog,
	sessions session.Store,
	store storage.Store,
	notifier *notify.Notifier,
	advisor *advisory.Client,
	ratesClient *rates.Client,
) *Server {
	return &Server{
		logger:    logger,
		cfg:       cfg,
		cat:       cat,
		estimator: estimate.NewEngine(cat),
		care:      carcare.NewEngine(cat),
		sessions:  sessions,
		store:     store,
		notifier:  notifier,
		advisor:   advisor,
		rates:     ratesClient,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(withCORS)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Get("/sizes", s.handleSizes)
		r.Get("/vehicles", s.handleVehicles)
		r.Get("/etc-services", s.handleEtcServices)

		r.Post("/estimate", s.handleEstimate)

		r.Route("/estimator/sessions", func(r chi.Router) {
			r.Post("/", s.handleEstimatorCreate)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleEstimatorGet)
				r.Delete("/", s.handleEstimatorDelete)
				r.Put("/selection", s.handleEstimatorSelection)
				r.Put("/package", s.handleEstimatorPackage)
				r.Put("/etc", s.handleEstimatorEtc)
				r.Post("/consult", s.handleEstimatorConsult)
			})
		})

		r.Route("/carcare/sessions", func(r chi.Router) {
			r.Post("/", s.handleCareCreate)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleCareGet)
				r.Delete("/", s.handleCareDelete)
				r.Post("/toggle", s.handleCareToggle)
				r.Post("/quantity", s.handleCareQuantity)
			})
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", s.handleBookingCreate)
			r.Get("/{id}", s.handleBookingGet)
			r.Post("/{id}/confirm", s.handleBookingConfirm)
		})

		r.Get("/rates/usdt", s.handleUSDTRate)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
