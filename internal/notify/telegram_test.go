package notify

import (
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"lumiere-studio/internal/booking"
	"lumiere-studio/internal/config"
)

func TestDisabledNotifierIsNoop(t *testing.T) {
	n, err := New(config.AdminConfig{}, zap.NewNop())
	if err != nil {
		t.Fatalf("New without token: %v", err)
	}
	if n.Enabled() {
		t.Fatal("notifier must be disabled without a token")
	}

	// Must not panic without a bot connection.
	n.NotifyNewBooking(&booking.Booking{ID: "b1"})
	n.SendExport("/tmp/nothing.xlsx")
}

func TestFormatBookingNotification(t *testing.T) {
	b := &booking.Booking{
		ID:           "b1",
		CustomerName: "김민수",
		Phone:        "+821023456789",
		Region:       "서울",
		CarModel:     "BMW 5시리즈",
		VisitDate:    "2026-09-15",
		VisitTime:    "14:00",
		Method:       booking.PayUSDT,
		TxID:         "4821",
		BasePrice:    4_800_000,
		Deposit:      480_000,
		USDTAmount:   "331.03",
		CreatedAt:    time.Now(),
	}

	text := FormatBookingNotification(b)

	for _, want := range []string{
		"김민수",
		"010-2345-6789",
		"BMW 5시리즈",
		"4,800,000원",
		"480,000원",
		"331.03",
		"…4821",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("notification missing %q:\n%s", want, text)
		}
	}
}

func TestFormatKRW(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1_000, "1,000"},
		{480_000, "480,000"},
		{4_800_000, "4,800,000"},
	}
	for _, tt := range tests {
		if got := formatKRW(tt.in); got != tt.want {
			t.Errorf("formatKRW(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
