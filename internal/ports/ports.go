package ports

// Package ports defines interfaces (hexagonal ports) for the client
// core. Implementations live in internal/adapters; orchestration in
// internal/session, internal/gateway and internal/service.

import (
	"context"
	"time"

	domainauth "github.com/Mohamed-Esmat/fms-upskilling-guide/internal/domain/auth"
)

// ErrNotFound is returned by StateStore and CacheRepository lookups
// when the key is absent.
type notFoundError struct{}

func (notFoundError) Error() string { return "key not found" }

var ErrNotFound error = notFoundError{}

// StateStore is the durable key-value slot backing persisted client
// state (session snapshot, plain bearer token, UI preferences). It is
// the local-storage analog.
type StateStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// CacheRepository is the shared server-state cache consumed by the
// query layer. TTL of zero means no expiry. Get returns (nil, nil)
// when the key is absent or expired.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) (bool, error)
	// DeletePrefix removes every key under the given prefix and returns
	// the number of keys removed. Used for region invalidation.
	DeletePrefix(ctx context.Context, prefix string) (int, error)
}

// Notifier surfaces transient user-facing notifications (toasts).
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Navigator abstracts the client-side location. Navigate applies route
// guards and returns the path actually mounted; Force performs a hard
// location change that bypasses them (the 401 handler's redirect).
type Navigator interface {
	CurrentPath() string
	Navigate(path string) string
	Force(path string)
}

// RoleMapper derives the application role from the API group name.
type RoleMapper interface {
	Map(groupName string) domainauth.Role
}

// SessionReader exposes the session snapshot to consumers that must
// not mutate it (route guards, presentation).
type SessionReader interface {
	Snapshot() domainauth.Session
}

// SessionInvalidator is the slice of the session store the gateway
// needs for the 401 handler.
type SessionInvalidator interface {
	Logout(ctx context.Context) error
}
