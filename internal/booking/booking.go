package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"lumiere-studio/internal/estimate"
)

type PaymentMethod string

const (
	PayBank   PaymentMethod = "BANK"
	PayUSDT   PaymentMethod = "USDT"
	PayPayPal PaymentMethod = "PAYPAL"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PayBank, PayUSDT, PayPayPal:
		return true
	}
	return false
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// PresetTimes are the slots offered before falling back to a custom time.
var PresetTimes = []string{
	"10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00",
}

// FallbackUSDTRate is used when the live KRW rate is unavailable.
const FallbackUSDTRate = 1450.0

var (
	ErrNameRequired     = errors.New("customer name is required")
	ErrPhoneRequired    = errors.New("customer phone is required")
	ErrPhoneInvalid     = errors.New("customer phone is invalid")
	ErrDateRequired     = errors.New("visit date is required")
	ErrTimeRequired     = errors.New("visit time is required")
	ErrModelRequired    = errors.New("car model is required")
	ErrMethodInvalid    = errors.New("unknown payment method")
	ErrTxIDRequired     = errors.New("txid confirmation is required for USDT")
	ErrNothingToDeposit = errors.New("estimate has no payable amount")
)

// Request is a booking submission.
type Request struct {
	CustomerName string        `json:"customerName"`
	Phone        string        `json:"phone"`
	Region       string        `json:"region"`
	CarModel     string        `json:"carModel"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	Method       PaymentMethod `json:"method"`
	TxID         string        `json:"txid,omitempty"`
}

func (r *Request) Validate() error {
	if strings.TrimSpace(r.CustomerName) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(r.Phone) == "" {
		return ErrPhoneRequired
	}
	if !IsValidPhone(r.Phone) {
		return ErrPhoneInvalid
	}
	if strings.TrimSpace(r.Date) == "" {
		return ErrDateRequired
	}
	if strings.TrimSpace(r.Time) == "" {
		return ErrTimeRequired
	}
	if strings.TrimSpace(r.CarModel) == "" {
		return ErrModelRequired
	}
	if !r.Method.Valid() {
		return ErrMethodInvalid
	}
	if r.Method == PayUSDT && strings.TrimSpace(r.TxID) == "" {
		return ErrTxIDRequired
	}
	return nil
}

// Booking is a confirmed reservation with its deposit quote.
type Booking struct {
	ID           string        `db:"id" json:"id"`
	CustomerName string        `db:"customer_name" json:"customerName"`
	Phone        string        `db:"phone" json:"phone"`
	Region       string        `db:"region" json:"region"`
	CarModel     string        `db:"car_model" json:"carModel"`
	VisitDate    string        `db:"visit_date" json:"date"`
	VisitTime    string        `db:"visit_time" json:"time"`
	Method       PaymentMethod `db:"method" json:"method"`
	TxID         string        `db:"txid" json:"txid,omitempty"`
	BasePrice    int64         `db:"base_price" json:"basePrice"`
	Deposit      int64         `db:"deposit" json:"deposit"`
	USDTRate     float64       `db:"usdt_rate" json:"usdtRate,omitempty"`
	USDTAmount   string        `db:"usdt_amount" json:"usdtAmount,omitempty"`
	Status       Status        `db:"status" json:"status"`
	CreatedAt    time.Time     `db:"created_at" json:"createdAt"`
}

// ResolveBase returns the payable base amount of a quoted range. Ranges
// without a priced amount carry no deposit obligation.
func ResolveBase(r estimate.PriceRange) int64 {
	if r.Status != estimate.StatusPriced {
		return 0
	}
	return r.Min
}

// Deposit is 10% of the base, rounded half away from zero.
func Deposit(base int64) int64 {
	return (base + 5) / 10
}

// USDTAmount converts a KRW deposit at the given rate, formatted to
// two decimals the way exchanges quote it.
func USDTAmount(deposit int64, rate float64) string {
	if rate <= 0 {
		rate = FallbackUSDTRate
	}
	return fmt.Sprintf("%.2f", float64(deposit)/rate)
}

// New builds a pending booking from a validated request and quote inputs.
func New(req Request, base int64, usdtRate float64) (*Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if base <= 0 {
		return nil, ErrNothingToDeposit
	}

	b := &Booking{
		ID:           uuid.NewString(),
		CustomerName: strings.TrimSpace(req.CustomerName),
		Phone:        NormalizePhone(req.Phone),
		Region:       strings.TrimSpace(req.Region),
		CarModel:     strings.TrimSpace(req.CarModel),
		VisitDate:    req.Date,
		VisitTime:    req.Time,
		Method:       req.Method,
		TxID:         strings.TrimSpace(req.TxID),
		BasePrice:    base,
		Deposit:      Deposit(base),
		Status:       StatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	if req.Method == PayUSDT {
		if usdtRate <= 0 {
			usdtRate = FallbackUSDTRate
		}
		b.USDTRate = usdtRate
		b.USDTAmount = USDTAmount(b.Deposit, usdtRate)
	}

	return b, nil
}
