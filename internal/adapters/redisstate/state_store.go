package redisstate

// Package redisstate provides a Redis-backed durable slot store for
// persisted client state (session snapshot, plain token, preferences).

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/ports"
)

// StateStore is a Redis-based ports.StateStore. Keys are namespaced by
// prefix so several clients can share one Redis instance.
type StateStore struct {
	client redis.UniversalClient
	prefix string
}

// NewStateStore creates a Redis-backed state store with the default
// key prefix.
func NewStateStore(client redis.UniversalClient) *StateStore {
	return &StateStore{client: client, prefix: "fms:state:"}
}

// NewStateStoreWithPrefix creates a Redis-backed state store with a
// custom key prefix.
func NewStateStoreWithPrefix(client redis.UniversalClient, prefix string) *StateStore {
	return &StateStore{client: client, prefix: prefix}
}

func (s *StateStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ports.ErrNotFound
	}

	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return data, nil
}

func (s *StateStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New("state key cannot be empty")
	}
	// State slots have no expiry; lifetime is managed by the session
	// store's explicit clears.
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

func (s *StateStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil // Nothing to delete
	}
	return s.client.Del(ctx, s.prefix+key).Err()
}
