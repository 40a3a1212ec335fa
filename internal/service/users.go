package service

import (
	"context"
	"errors"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/api"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/ports"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/query"
)

// UsersServiceOptions groups dependencies for UsersService.
type UsersServiceOptions struct {
	Client   *api.UsersClient
	Cache    *query.Cache
	Notifier ports.Notifier
}

// UsersService serves the admin user-management screen.
type UsersService struct {
	client   *api.UsersClient
	cache    *query.Cache
	notifier ports.Notifier
}

// NewUsersService constructs a UsersService.
func NewUsersService(opts UsersServiceOptions) (*UsersService, error) {
	if opts.Client == nil {
		return nil, errors.New("users client is required")
	}
	if opts.Cache == nil {
		return nil, errors.New("query cache is required")
	}
	if opts.Notifier == nil {
		return nil, errors.New("notifier is required")
	}
	return &UsersService{client: opts.Client, cache: opts.Cache, notifier: opts.Notifier}, nil
}

// List fetches a filtered page of users through the cache.
func (s *UsersService) List(ctx context.Context, params api.UserListParams) (*api.Paginated[api.User], error) {
	key := query.ListKey(query.RegionUsers, params.Values())
	return query.FetchJSON(ctx, s.cache, key, func(ctx context.Context) (*api.Paginated[api.User], error) {
		return s.client.List(ctx, params)
	})
}

// Get fetches a single user through the cache.
func (s *UsersService) Get(ctx context.Context, id int) (*api.User, error) {
	key := query.DetailKey(query.RegionUsers, id)
	return query.FetchJSON(ctx, s.cache, key, func(ctx context.Context) (*api.User, error) {
		return s.client.Get(ctx, id)
	})
}

// Delete removes a user account.
func (s *UsersService) Delete(ctx context.Context, id int) error {
	if _, err := s.client.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, query.RegionUsers)
	s.notifier.Success("User deleted successfully!")
	return nil
}
