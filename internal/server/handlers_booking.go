package server

import (
	"errors"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"lumiere-studio/internal/booking"
	"lumiere-studio/internal/catalog"
	"lumiere-studio/internal/estimate"
	"lumiere-studio/internal/storage"
)

type bookingRequest struct {
	booking.Request

	Size         catalog.SizeClass    `json:"size"`
	Coverage     catalog.Coverage     `json:"coverage"`
	Package      estimate.PackageType `json:"package"`
	EtcServiceID string               `json:"etcServiceId"`
}

// paymentInstructions tells the customer where to send the deposit.
type paymentInstructions struct {
	Method booking.PaymentMethod `json:"method"`

	BankName    string `json:"bankName,omitempty"`
	BankAccount string `json:"bankAccount,omitempty"`
	BankHolder  string `json:"bankHolder,omitempty"`

	USDTNetwork string `json:"usdtNetwork,omitempty"`
	USDTAddress string `json:"usdtAddress,omitempty"`
	USDTAmount  string `json:"usdtAmount,omitempty"`

	PayPalAccount string `json:"paypalAccount,omitempty"`
}

type bookingResponse struct {
	Booking      *booking.Booking    `json:"booking"`
	Instructions paymentInstructions `json:"instructions"`
}

// resolveBase finds the payable amount for the booking's selection. Etc
// work anchors on the service's base price; film coverage on the quoted
// range's minimum.
func (s *Server) resolveBase(req bookingRequest) int64 {
	if req.Coverage == catalog.CoverageEtc {
		svc, ok := s.cat.EtcByID(req.EtcServiceID)
		if !ok {
			return 0
		}
		return booking.ResolveBase(estimate.Round5Pct(svc.BasePrice))
	}

	size := req.Size
	if size == "" {
		size = catalog.SizeSedan
	}
	coverage := req.Coverage
	if coverage == "" {
		coverage = catalog.CoverageFullBody
	}

	est := s.estimator.Compute(req.CarModel, size, coverage)

	// Front package has a single priced band; the package selection is
	// irrelevant there.
	if coverage == catalog.CoverageFrontPackage {
		return booking.ResolveBase(est.Transparent)
	}
	return booking.ResolveBase(est.Range(req.Package))
}

func (s *Server) instructionsFor(b *booking.Booking) paymentInstructions {
	p := s.cfg.Payment
	out := paymentInstructions{Method: b.Method}

	switch b.Method {
	case booking.PayBank:
		out.BankName = p.BankName
		out.BankAccount = p.BankAccount
		out.BankHolder = p.BankHolder
	case booking.PayUSDT:
		out.USDTNetwork = p.USDTNetwork
		out.USDTAddress = p.USDTAddress
		out.USDTAmount = b.USDTAmount
	case booking.PayPayPal:
		out.PayPalAccount = p.PayPalAccount
	}
	return out
}

func (s *Server) handleBookingCreate(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
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

	base := s.resolveBase(req)
	if base <= 0 {
		s.writeError(w, http.StatusBadRequest, "selection has no payable estimate, please contact the studio directly")
		return
	}

	var rate float64
	if req.Method == booking.PayUSDT {
		rate = s.rates.USDTKRW(r.Context())
	}

	b, err := booking.New(req.Request, base, rate)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.SaveBooking(r.Context(), b); err != nil {
		s.logger.Error("Failed to persist booking", zap.String("id", b.ID), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "booking save failed")
		return
	}

	go s.notifyBooking(b)

	s.writeJSON(w, http.StatusCreated, bookingResponse{
		Booking:      b,
		Instructions: s.instructionsFor(b),
	})
}

// notifyBooking alerts the staff and hands over the lead as an Excel
// sheet. Fire-and-forget; failures only log.
func (s *Server) notifyBooking(b *booking.Booking) {
	s.notifier.NotifyNewBooking(b)
	if !s.notifier.Enabled() {
		return
	}

	path, err := storage.ExportBookingsToExcel([]booking.Booking{*b}, os.TempDir())
	if err != nil {
		s.logger.Error("Failed to export booking", zap.String("id", b.ID), zap.Error(err))
		return
	}
	defer os.Remove(path)
	s.notifier.SendExport(path)
}

func (s *Server) handleBookingGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	b, err := s.store.GetBooking(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "booking not found")
		} else {
			s.logger.Error("Failed to load booking", zap.String("id", id), zap.Error(err))
			s.writeError(w, http.StatusInternalServerError, "booking load failed")
		}
		return
	}

	s.writeJSON(w, http.StatusOK, bookingResponse{
		Booking:      b,
		Instructions: s.instructionsFor(b),
	})
}

// handleBookingConfirm is the payment success transition. Nothing is
// verified; staff confirm the deposit out of band.
func (s *Server) handleBookingConfirm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	b, err := s.store.GetBooking(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "booking not found")
		} else {
			s.logger.Error("Failed to load booking", zap.String("id", id), zap.Error(err))
			s.writeError(w, http.StatusInternalServerError, "booking load failed")
		}
		return
	}

	if b.Status == booking.StatusCancelled {
		s.writeError(w, http.StatusConflict, "booking is cancelled")
		return
	}

	if b.Status != booking.StatusConfirmed {
		if err := s.store.UpdateStatus(r.Context(), id, booking.StatusConfirmed); err != nil {
			s.logger.Error("Failed to confirm booking", zap.String("id", id), zap.Error(err))
			s.writeError(w, http.StatusInternalServerError, "booking update failed")
			return
		}
		b.Status = booking.StatusConfirmed
	}

	s.writeJSON(w, http.StatusOK, bookingResponse{
		Booking:      b,
		Instructions: s.instructionsFor(b),
	})
}

func (s *Server) handleUSDTRate(w http.ResponseWriter, r *http.Request) {
	rate := s.rates.USDTKRW(r.Context())
	s.writeJSON(w, http.StatusOK, map[string]float64{"usdtKrw": rate})
}
