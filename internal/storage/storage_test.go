package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"lumiere-studio/internal/booking"
)

func fakeBooking(t *testing.T, createdAt time.Time) *booking.Booking {
	t.Helper()
	return &booking.Booking{
		ID:           uuid.NewString(),
		CustomerName: gofakeit.Name(),
		Phone:        "+8210" + gofakeit.DigitN(8),
		Region:       "서울",
		CarModel:     "BMW 5시리즈",
		VisitDate:    "2026-09-15",
		VisitTime:    "14:00",
		Method:       booking.PayBank,
		BasePrice:    4_800_000,
		Deposit:      480_000,
		Status:       booking.StatusPending,
		CreatedAt:    createdAt,
	}
}

func TestMemoryStoreBookings(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.GetBooking(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	now := time.Now().UTC()
	first := fakeBooking(t, now.Add(-time.Hour))
	second := fakeBooking(t, now)

	require.NoError(t, store.SaveBooking(ctx, first))
	require.NoError(t, store.SaveBooking(ctx, second))

	got, err := store.GetBooking(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, first.CustomerName, got.CustomerName)

	list, err := store.ListBookings(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID, "newest first")

	list, err = store.ListBookings(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, store.UpdateStatus(ctx, first.ID, booking.StatusConfirmed))
	got, err = store.GetBooking(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, booking.StatusConfirmed, got.Status)

	err = store.UpdateStatus(ctx, "missing", booking.StatusCancelled)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestExportBookingsToExcel(t *testing.T) {
	dir := t.TempDir()

	bookings := []booking.Booking{
		*fakeBooking(t, time.Now().UTC()),
		*fakeBooking(t, time.Now().UTC()),
	}

	path, err := ExportBookingsToExcel(bookings, dir)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	b := fakeBooking(t, time.Now().UTC())
	require.NoError(t, store.SaveBooking(ctx, b))

	got, err := store.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	got.Status = booking.StatusCancelled

	again, err := store.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, booking.StatusPending, again.Status)
}
