package service

import (
	"context"
	"errors"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/api"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/ports"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/query"
)

// RecipesServiceOptions groups dependencies for RecipesService.
type RecipesServiceOptions struct {
	Recipes  *api.RecipesClient
	Tags     *api.TagsClient
	Cache    *query.Cache
	Notifier ports.Notifier
}

// RecipesService serves the recipe screens: paginated browsing for
// both roles, create/update/delete for admins, and the tag list for
// the recipe form.
type RecipesService struct {
	recipes  *api.RecipesClient
	tags     *api.TagsClient
	cache    *query.Cache
	notifier ports.Notifier
}

// NewRecipesService constructs a RecipesService.
func NewRecipesService(opts RecipesServiceOptions) (*RecipesService, error) {
	if opts.Recipes == nil {
		return nil, errors.New("recipes client is required")
	}
	if opts.Tags == nil {
		return nil, errors.New("tags client is required")
	}
	if opts.Cache == nil {
		return nil, errors.New("query cache is required")
	}
	if opts.Notifier == nil {
		return nil, errors.New("notifier is required")
	}
	return &RecipesService{
		recipes:  opts.Recipes,
		tags:     opts.Tags,
		cache:    opts.Cache,
		notifier: opts.Notifier,
	}, nil
}

// List fetches a page of recipes through the cache.
func (s *RecipesService) List(ctx context.Context, params api.RecipeListParams) (*api.Paginated[api.Recipe], error) {
	key := query.ListKey(query.RegionRecipes, params.Values())
	return query.FetchJSON(ctx, s.cache, key, func(ctx context.Context) (*api.Paginated[api.Recipe], error) {
		return s.recipes.List(ctx, params)
	})
}

// Get fetches a single recipe through the cache.
func (s *RecipesService) Get(ctx context.Context, id int) (*api.Recipe, error) {
	key := query.DetailKey(query.RegionRecipes, id)
	return query.FetchJSON(ctx, s.cache, key, func(ctx context.Context) (*api.Recipe, error) {
		return s.recipes.Get(ctx, id)
	})
}

// Tags fetches the tag list through the cache.
func (s *RecipesService) Tags(ctx context.Context) ([]api.Tag, error) {
	key := query.SingletonKey(query.RegionTags, "list")
	return query.FetchJSON(ctx, s.cache, key, func(ctx context.Context) ([]api.Tag, error) {
		return s.tags.List(ctx)
	})
}

// Create adds a recipe, invalidating the region before any refetch.
func (s *RecipesService) Create(ctx context.Context, form api.RecipeForm) error {
	if _, err := s.recipes.Create(ctx, form); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, query.RegionRecipes)
	s.notifier.Success("Recipe created successfully!")
	return nil
}

// Update replaces a recipe.
func (s *RecipesService) Update(ctx context.Context, id int, form api.RecipeForm) (*api.Recipe, error) {
	recipe, err := s.recipes.Update(ctx, id, form)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, query.RegionRecipes)
	s.notifier.Success("Recipe updated successfully!")
	return recipe, nil
}

// Delete removes a recipe.
func (s *RecipesService) Delete(ctx context.Context, id int) error {
	if _, err := s.recipes.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, query.RegionRecipes)
	s.notifier.Success("Recipe deleted successfully!")
	return nil
}
