package storage

import (
	"context"
	"errors"

	"lumiere-studio/internal/booking"
)

// ErrNotFound is returned when a booking does not exist.
var ErrNotFound = errors.New("storage: booking not found")

// Store persists booking leads.
type Store interface {
	SaveBooking(ctx context.Context, b *booking.Booking) error
	GetBooking(ctx context.Context, id string) (*booking.Booking, error)
	ListBookings(ctx context.Context, limit int) ([]booking.Booking, error)
	UpdateStatus(ctx context.Context, id string, status booking.Status) error
	Close() error
}
