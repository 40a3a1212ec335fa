package session

// Package session owns the client's authentication state: who is
// logged in, with what bearer token, and at what privilege. The store
// is dependency-injected into the gateway and the route guards rather
// than living as process-global state.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	domainauth "github.com/Mohamed-Esmat/fms-upskilling-guide/internal/domain/auth"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/ports"
)

// Durable slot keys. SnapshotKey holds the serialized session,
// TokenKey holds the plain bearer token read by the HTTP gateway, and
// SidebarKey holds the sidebar-collapse preference. The token is
// deliberately stored twice; both writes happen inside single Store
// operations so the slots cannot diverge.
const (
	SnapshotKey = "auth-storage"
	TokenKey    = "token"
	SidebarKey  = "sidebar-storage"
)

// sidebarState is the persisted UI-preference snapshot.
type sidebarState struct {
	IsCollapsed bool `json:"isCollapsed"`
}

// StoreOptions groups dependencies for Store.
type StoreOptions struct {
	State ports.StateStore
	Roles ports.RoleMapper
}

// Store is the single source of truth for session state. Mutations are
// serialized by a mutex; in practice UI actions arrive one at a time,
// but late gateway failures may race a logout.
type Store struct {
	state ports.StateStore
	roles ports.RoleMapper

	mu      sync.Mutex
	current domainauth.Session
	sidebar sidebarState
}

// NewStore constructs a Store and rehydrates persisted state. A corrupt
// or missing snapshot yields an empty (unauthenticated) session rather
// than an error.
func NewStore(ctx context.Context, opts StoreOptions) (*Store, error) {
	if opts.State == nil {
		return nil, errors.New("state store is required")
	}
	if opts.Roles == nil {
		return nil, errors.New("role mapper is required")
	}

	s := &Store{state: opts.State, roles: opts.Roles}
	s.rehydrate(ctx)
	return s, nil
}

func (s *Store) rehydrate(ctx context.Context) {
	if data, err := s.state.Get(ctx, SnapshotKey); err == nil {
		var sess domainauth.Session
		if json.Unmarshal(data, &sess) == nil {
			if sess.User != nil {
				// Role is derived state; recompute on load so a stale
				// snapshot can never carry a privilege its group does
				// not grant.
				sess.Role = s.roles.Map(sess.User.Group.Name)
			}
			s.current = sess
		}
	}

	if data, err := s.state.Get(ctx, SidebarKey); err == nil {
		var sb sidebarState
		if json.Unmarshal(data, &sb) == nil {
			s.sidebar = sb
		}
	}
}

// Snapshot returns a copy of the current session.
func (s *Store) Snapshot() domainauth.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySession(s.current)
}

// SetAuth unconditionally replaces the session with the given user and
// token, derives the role from the user's group, and persists both the
// structured snapshot and the plain token slot. The in-memory state is
// applied before persistence, so a storage failure leaves the session
// usable for the current process.
func (s *Store) SetAuth(ctx context.Context, user domainauth.User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := user
	s.current = domainauth.Session{
		User:            &u,
		Token:           token,
		IsAuthenticated: true,
		Role:            s.roles.Map(user.Group.Name),
	}
	return s.persistLocked(ctx, true)
}

// UpdateUser replaces the user record and recomputes the role, leaving
// the token and authentication flag untouched. Accepts updates while
// unauthenticated; the value is stored as-is.
func (s *Store) UpdateUser(ctx context.Context, user domainauth.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := user
	s.current.User = &u
	s.current.Role = s.roles.Map(user.Group.Name)
	return s.persistLocked(ctx, false)
}

// Logout clears the session and removes both persisted slots.
// Idempotent.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = domainauth.Session{}

	var errs []error
	if err := s.state.Delete(ctx, SnapshotKey); err != nil {
		errs = append(errs, fmt.Errorf("delete session snapshot: %w", err))
	}
	if err := s.state.Delete(ctx, TokenKey); err != nil {
		errs = append(errs, fmt.Errorf("delete token slot: %w", err))
	}
	return errors.Join(errs...)
}

// Token returns the current bearer token, or the empty string when
// unauthenticated.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Token
}

// TokenClaims decodes the current bearer token's payload. Returns an
// error when unauthenticated or when the token is not a JWT.
func (s *Store) TokenClaims() (*domainauth.TokenClaims, error) {
	token := s.Token()
	if token == "" {
		return nil, errors.New("no bearer token present")
	}
	return domainauth.DecodeTokenClaims(token)
}

// SidebarCollapsed reports the persisted sidebar-collapse preference.
func (s *Store) SidebarCollapsed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sidebar.IsCollapsed
}

// SetSidebarCollapsed persists the sidebar-collapse preference.
func (s *Store) SetSidebarCollapsed(ctx context.Context, collapsed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sidebar.IsCollapsed = collapsed
	data, err := json.Marshal(s.sidebar)
	if err != nil {
		return fmt.Errorf("marshal sidebar state: %w", err)
	}
	if err := s.state.Set(ctx, SidebarKey, data); err != nil {
		return fmt.Errorf("persist sidebar state: %w", err)
	}
	return nil
}

// persistLocked writes the structured snapshot and, when withToken is
// set, the paired plain-token slot. Caller holds the mutex.
func (s *Store) persistLocked(ctx context.Context, withToken bool) error {
	data, err := json.Marshal(s.current)
	if err != nil {
		return fmt.Errorf("marshal session snapshot: %w", err)
	}

	var errs []error
	if err := s.state.Set(ctx, SnapshotKey, data); err != nil {
		errs = append(errs, fmt.Errorf("persist session snapshot: %w", err))
	}
	if withToken {
		if err := s.state.Set(ctx, TokenKey, []byte(s.current.Token)); err != nil {
			errs = append(errs, fmt.Errorf("persist token slot: %w", err))
		}
	}
	return errors.Join(errs...)
}

func copySession(sess domainauth.Session) domainauth.Session {
	out := sess
	if sess.User != nil {
		u := *sess.User
		out.User = &u
	}
	return out
}
