package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/gateway"
)

// FavoritesClient covers the /userRecipe endpoints. These are
// standard-user only; the server answers 403 for the admin role.
type FavoritesClient struct {
	gw *gateway.Client
}

// NewFavoritesClient constructs a FavoritesClient.
func NewFavoritesClient(gw *gateway.Client) *FavoritesClient {
	return &FavoritesClient{gw: gw}
}

// FavoriteListParams pages GET /userRecipe/.
type FavoriteListParams struct {
	PageSize   int
	PageNumber int
}

// Values encodes the parameters for the query string.
func (p FavoriteListParams) Values() url.Values {
	return pageValues(p.PageSize, p.PageNumber)
}

// List fetches a page of the caller's favorites.
func (c *FavoritesClient) List(ctx context.Context, params FavoriteListParams) (*Paginated[Favorite], error) {
	var out Paginated[Favorite]
	if err := c.gw.Get(ctx, "/userRecipe/", &out, gateway.WithQuery(params.Values())); err != nil {
		return nil, err
	}
	return &out, nil
}

// Add puts a recipe on the caller's favorites list.
func (c *FavoritesClient) Add(ctx context.Context, recipeID int) (*Favorite, error) {
	var out Favorite
	body := map[string]int{"recipeId": recipeID}
	if err := c.gw.Post(ctx, "/userRecipe/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Remove deletes a favorites entry by its own identifier (not the
// recipe's).
func (c *FavoritesClient) Remove(ctx context.Context, id int) (*DeleteResult, error) {
	var out DeleteResult
	if err := c.gw.Delete(ctx, fmt.Sprintf("/userRecipe/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
