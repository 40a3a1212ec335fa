package service

import (
	"context"
	"errors"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/api"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/ports"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/query"
)

// CategoriesServiceOptions groups dependencies for CategoriesService.
type CategoriesServiceOptions struct {
	Client   *api.CategoriesClient
	Cache    *query.Cache
	Notifier ports.Notifier
}

// CategoriesService serves the admin category screens and the category
// picker on the recipe form.
type CategoriesService struct {
	client   *api.CategoriesClient
	cache    *query.Cache
	notifier ports.Notifier
}

// NewCategoriesService constructs a CategoriesService.
func NewCategoriesService(opts CategoriesServiceOptions) (*CategoriesService, error) {
	if opts.Client == nil {
		return nil, errors.New("categories client is required")
	}
	if opts.Cache == nil {
		return nil, errors.New("query cache is required")
	}
	if opts.Notifier == nil {
		return nil, errors.New("notifier is required")
	}
	return &CategoriesService{client: opts.Client, cache: opts.Cache, notifier: opts.Notifier}, nil
}

// List fetches a page of categories through the cache.
func (s *CategoriesService) List(ctx context.Context, params api.CategoryListParams) (*api.Paginated[api.Category], error) {
	key := query.ListKey(query.RegionCategories, params.Values())
	return query.FetchJSON(ctx, s.cache, key, func(ctx context.Context) (*api.Paginated[api.Category], error) {
		return s.client.List(ctx, params)
	})
}

// Get fetches a category with its recipes through the cache.
func (s *CategoriesService) Get(ctx context.Context, id int) (*api.CategoryWithRecipes, error) {
	key := query.DetailKey(query.RegionCategories, id)
	return query.FetchJSON(ctx, s.cache, key, func(ctx context.Context) (*api.CategoryWithRecipes, error) {
		return s.client.Get(ctx, id)
	})
}

// Create adds a category.
func (s *CategoriesService) Create(ctx context.Context, name string) (*api.Category, error) {
	category, err := s.client.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, query.RegionCategories)
	s.notifier.Success("Category created successfully!")
	return category, nil
}

// Update renames a category.
func (s *CategoriesService) Update(ctx context.Context, id int, name string) (*api.Category, error) {
	category, err := s.client.Update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, query.RegionCategories)
	s.notifier.Success("Category updated successfully!")
	return category, nil
}

// Delete removes a category.
func (s *CategoriesService) Delete(ctx context.Context, id int) error {
	if _, err := s.client.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, query.RegionCategories)
	s.notifier.Success("Category deleted successfully!")
	return nil
}
