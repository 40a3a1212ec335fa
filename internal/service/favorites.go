package service

import (
	"context"
	"errors"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/api"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/ports"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/query"
)

// FavoritesServiceOptions groups dependencies for FavoritesService.
type FavoritesServiceOptions struct {
	Client   *api.FavoritesClient
	Cache    *query.Cache
	Notifier ports.Notifier
}

// FavoritesService serves the standard-user favorites screen. The
// server enforces the role; an admin calling these endpoints receives
// the gateway's access-denied handling.
type FavoritesService struct {
	client   *api.FavoritesClient
	cache    *query.Cache
	notifier ports.Notifier
}

// NewFavoritesService constructs a FavoritesService.
func NewFavoritesService(opts FavoritesServiceOptions) (*FavoritesService, error) {
	if opts.Client == nil {
		return nil, errors.New("favorites client is required")
	}
	if opts.Cache == nil {
		return nil, errors.New("query cache is required")
	}
	if opts.Notifier == nil {
		return nil, errors.New("notifier is required")
	}
	return &FavoritesService{client: opts.Client, cache: opts.Cache, notifier: opts.Notifier}, nil
}

// List fetches a page of favorites through the cache.
func (s *FavoritesService) List(ctx context.Context, params api.FavoriteListParams) (*api.Paginated[api.Favorite], error) {
	key := query.ListKey(query.RegionFavorites, params.Values())
	return query.FetchJSON(ctx, s.cache, key, func(ctx context.Context) (*api.Paginated[api.Favorite], error) {
		return s.client.List(ctx, params)
	})
}

// Add puts a recipe on the favorites list.
func (s *FavoritesService) Add(ctx context.Context, recipeID int) (*api.Favorite, error) {
	favorite, err := s.client.Add(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, query.RegionFavorites)
	s.notifier.Success("Added to favorites!")
	return favorite, nil
}

// Remove deletes a favorites entry.
func (s *FavoritesService) Remove(ctx context.Context, id int) error {
	if _, err := s.client.Remove(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, query.RegionFavorites)
	s.notifier.Success("Removed from favorites!")
	return nil
}
