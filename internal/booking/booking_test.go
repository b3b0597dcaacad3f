package booking

import (
	"errors"
	"testing"

	"lumiere-studio/internal/estimate"
)

func validRequest() Request {
	return Request{
		CustomerName: "김민수",
		Phone:        "010-2345-6789",
		Region:       "서울",
		CarModel:     "BMW 5시리즈",
		Date:         "2026-09-15",
		Time:         "14:00",
		Method:       PayBank,
	}
}

func TestDeposit(t *testing.T) {
	tests := []struct {
		base int64
		want int64
	}{
		{4_800_000, 480_000},
		{2_600_000, 260_000},
		{5_100_000, 510_000},
		{15, 2}, // half rounds away from zero
		{0, 0},
	}
	for _, tt := range tests {
		if got := Deposit(tt.base); got != tt.want {
			t.Errorf("Deposit(%d) = %d, want %d", tt.base, got, tt.want)
		}
	}
}

func TestUSDTAmount(t *testing.T) {
	if got := USDTAmount(480_000, 1450); got != "331.03" {
		t.Errorf("USDTAmount = %s, want 331.03", got)
	}
	// Non-positive rate falls back.
	if got, want := USDTAmount(145_000, 0), USDTAmount(145_000, FallbackUSDTRate); got != want {
		t.Errorf("fallback rate: got %s, want %s", got, want)
	}
}

func TestResolveBase(t *testing.T) {
	priced := estimate.PriceRange{Status: estimate.StatusPriced, Min: 4_800_000, Max: 5_040_000}
	if got := ResolveBase(priced); got != 4_800_000 {
		t.Errorf("ResolveBase priced = %d, want range minimum", got)
	}
	if got := ResolveBase(estimate.PriceRange{Status: estimate.StatusNotOffered}); got != 0 {
		t.Errorf("ResolveBase not_offered = %d, want 0", got)
	}
	if got := ResolveBase(estimate.PriceRange{Status: estimate.StatusAskSeparately}); got != 0 {
		t.Errorf("ResolveBase ask_separately = %d, want 0", got)
	}
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
		want   error
	}{
		{"valid", func(r *Request) {}, nil},
		{"missing name", func(r *Request) { r.CustomerName = "  " }, ErrNameRequired},
		{"missing phone", func(r *Request) { r.Phone = "" }, ErrPhoneRequired},
		{"fake phone", func(r *Request) { r.Phone = "0000000000" }, ErrPhoneInvalid},
		{"missing date", func(r *Request) { r.Date = "" }, ErrDateRequired},
		{"missing time", func(r *Request) { r.Time = "" }, ErrTimeRequired},
		{"missing model", func(r *Request) { r.CarModel = "" }, ErrModelRequired},
		{"bad method", func(r *Request) { r.Method = "CASH" }, ErrMethodInvalid},
		{"usdt without txid", func(r *Request) { r.Method = PayUSDT }, ErrTxIDRequired},
	}

	for _, tt := range tests {
		req := validRequest()
		tt.mutate(&req)
		if err := req.Validate(); !errors.Is(err, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestNewBooking(t *testing.T) {
	req := validRequest()
	req.Method = PayUSDT
	req.TxID = "4821"

	b, err := New(req, 4_800_000, 1450)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if b.ID == "" {
		t.Error("booking has no ID")
	}
	if b.Phone != "+821023456789" {
		t.Errorf("phone not normalized: %s", b.Phone)
	}
	if b.Deposit != 480_000 {
		t.Errorf("deposit = %d, want 480000", b.Deposit)
	}
	if b.USDTAmount != "331.03" {
		t.Errorf("usdt amount = %s, want 331.03", b.USDTAmount)
	}
	if b.Status != StatusPending {
		t.Errorf("status = %s, want pending", b.Status)
	}

	if _, err := New(validRequest(), 0, 0); !errors.Is(err, ErrNothingToDeposit) {
		t.Errorf("zero base: got %v, want ErrNothingToDeposit", err)
	}
}

func TestPhoneNormalization(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"010-2345-6789", "+821023456789"},
		{"01023456789", "+821023456789"},
		{"+82 10 2345 6789", "+821023456789"},
		{"+1 (212) 555-0183", "+12125550183"},
	}
	for _, tt := range tests {
		if got := NormalizePhone(tt.in); got != tt.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if FormatPhone("+821023456789") != "010-2345-6789" {
		t.Errorf("FormatPhone: got %s", FormatPhone("+821023456789"))
	}
}
