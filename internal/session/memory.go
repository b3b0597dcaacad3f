package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the in-process fallback used when Redis is not
// configured, and the store all handler tests run against.
type MemoryStore struct {
	mu         sync.RWMutex
	estimators map[string]EstimatorState
	cares      map[string]CareState
	seqs       map[string]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		estimators: make(map[string]EstimatorState),
		cares:      make(map[string]CareState),
		seqs:       make(map[string]int64),
	}
}

func cloneEstimator(state EstimatorState) EstimatorState {
	if state.Estimate != nil {
		e := *state.Estimate
		state.Estimate = &e
	}
	return state
}

func (s *MemoryStore) GetEstimator(_ context.Context, id string) (*EstimatorState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.estimators[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := cloneEstimator(state)
	return &copied, nil
}

func (s *MemoryStore) SaveEstimator(_ context.Context, state *EstimatorState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state.UpdatedAt = time.Now().UTC()
	s.estimators[state.ID] = cloneEstimator(*state)
	return nil
}

func (s *MemoryStore) DeleteEstimator(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.estimators, id)
	delete(s.seqs, id)
	return nil
}

func (s *MemoryStore) NextSeq(_ context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seqs[id]++
	return s.seqs[id], nil
}

func (s *MemoryStore) GetCare(_ context.Context, id string) (*CareState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.cares[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := state
	if state.Quantities != nil {
		copied.Quantities = make(map[string]int, len(state.Quantities))
		for k, v := range state.Quantities {
			copied.Quantities[k] = v
		}
	}
	return &copied, nil
}

func (s *MemoryStore) SaveCare(_ context.Context, state *CareState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state.UpdatedAt = time.Now().UTC()
	saved := *state
	if state.Quantities != nil {
		saved.Quantities = make(map[string]int, len(state.Quantities))
		for k, v := range state.Quantities {
			saved.Quantities[k] = v
		}
	}
	s.cares[state.ID] = saved
	return nil
}

func (s *MemoryStore) DeleteCare(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cares, id)
	return nil
}
