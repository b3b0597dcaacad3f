package session

import (
	"context"
	"errors"
	"time"

	"lumiere-studio/internal/carcare"
	"lumiere-studio/internal/catalog"
	"lumiere-studio/internal/estimate"
)

// ErrNotFound is returned when a session does not exist or has expired.
var ErrNotFound = errors.New("session: not found")

// EstimatorState is one visitor's film-estimator session. Seq increases
// on every input change; an advisory result is only attached when its
// captured Seq still matches, so stale consultations never overwrite
// newer ones.
type EstimatorState struct {
	ID           string               `json:"id"`
	Size         catalog.SizeClass    `json:"size"`
	Model        string               `json:"model,omitempty"`
	Coverage     catalog.Coverage     `json:"coverage"`
	Package      estimate.PackageType `json:"package"`
	EtcServiceID string               `json:"etcServiceId,omitempty"`

	// Live is latched by the first consult; afterwards every input change
	// recomputes the estimate immediately.
	Live     bool                   `json:"live"`
	Estimate *estimate.FullEstimate `json:"estimate,omitempty"`

	Seq         int64  `json:"seq"`
	Advisory    string `json:"advisory,omitempty"`
	AdvisorySeq int64  `json:"advisorySeq,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// CareState is one visitor's maintenance-estimator session.
type CareState struct {
	ID         string            `json:"id"`
	Model      string            `json:"model,omitempty"`
	Quantities carcare.Selection `json:"quantities"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// Store persists visitor sessions. Implementations must be safe for
// concurrent use.
type Store interface {
	GetEstimator(ctx context.Context, id string) (*EstimatorState, error)
	SaveEstimator(ctx context.Context, state *EstimatorState) error
	DeleteEstimator(ctx context.Context, id string) error

	// NextSeq advances the session's input-change counter.
	NextSeq(ctx context.Context, id string) (int64, error)

	GetCare(ctx context.Context, id string) (*CareState, error)
	SaveCare(ctx context.Context, state *CareState) error
	DeleteCare(ctx context.Context, id string) error
}

// NewEstimatorState seeds a session with the default size class and
// full-body coverage.
func NewEstimatorState(id string) *EstimatorState {
	return &EstimatorState{
		ID:        id,
		Size:      catalog.SizeSedan,
		Coverage:  catalog.CoverageFullBody,
		Package:   estimate.PackageTransparent,
		UpdatedAt: time.Now().UTC(),
	}
}

// NewCareState seeds a maintenance session with the default item selected.
func NewCareState(id string, items []carcare.Item) *CareState {
	return &CareState{
		ID:         id,
		Quantities: carcare.NewSelection(items),
		UpdatedAt:  time.Now().UTC(),
	}
}
