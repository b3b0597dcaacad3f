package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lumiere-studio/pkg/redis"
)

const (
	estimatorPrefix = "estimator:"
	carePrefix      = "care:"
	seqPrefix       = "estimator:seq:"
)

// RedisStore keeps sessions in Redis with the client's TTL so abandoned
// sessions expire on their own.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) GetEstimator(ctx context.Context, id string) (*EstimatorState, error) {
	var state EstimatorState
	if err := s.client.GetJSON(ctx, estimatorPrefix+id, &state); err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get estimator session: %w", err)
	}
	return &state, nil
}

func (s *RedisStore) SaveEstimator(ctx context.Context, state *EstimatorState) error {
	state.UpdatedAt = time.Now().UTC()
	if err := s.client.SaveJSON(ctx, estimatorPrefix+state.ID, state); err != nil {
		return fmt.Errorf("save estimator session: %w", err)
	}
	return nil
}

func (s *RedisStore) DeleteEstimator(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, estimatorPrefix+id); err != nil {
		return fmt.Errorf("delete estimator session: %w", err)
	}
	return s.client.Del(ctx, seqPrefix+id)
}

func (s *RedisStore) NextSeq(ctx context.Context, id string) (int64, error) {
	n, err := s.client.Incr(ctx, seqPrefix+id)
	if err != nil {
		return 0, fmt.Errorf("advance session seq: %w", err)
	}
	return n, nil
}

func (s *RedisStore) GetCare(ctx context.Context, id string) (*CareState, error) {
	var state CareState
	if err := s.client.GetJSON(ctx, carePrefix+id, &state); err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get care session: %w", err)
	}
	return &state, nil
}

func (s *RedisStore) SaveCare(ctx context.Context, state *CareState) error {
	state.UpdatedAt = time.Now().UTC()
	if err := s.client.SaveJSON(ctx, carePrefix+state.ID, state); err != nil {
		return fmt.Errorf("save care session: %w", err)
	}
	return nil
}

func (s *RedisStore) DeleteCare(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, carePrefix+id); err != nil {
		return fmt.Errorf("delete care session: %w", err)
	}
	return nil
}
