package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/gateway"
)

// CategoriesClient covers the /Category endpoints.
type CategoriesClient struct {
	gw *gateway.Client
}

// NewCategoriesClient constructs a CategoriesClient.
func NewCategoriesClient(gw *gateway.Client) *CategoriesClient {
	return &CategoriesClient{gw: gw}
}

// CategoryListParams filters GET /Category/.
type CategoryListParams struct {
	PageSize   int
	PageNumber int
	Name       string
}

// Values encodes the parameters for the query string.
func (p CategoryListParams) Values() url.Values {
	v := pageValues(p.PageSize, p.PageNumber)
	if p.Name != "" {
		v.Set("name", p.Name)
	}
	return v
}

// List fetches a filtered page of categories.
func (c *CategoriesClient) List(ctx context.Context, params CategoryListParams) (*Paginated[Category], error) {
	var out Paginated[Category]
	if err := c.gw.Get(ctx, "/Category/", &out, gateway.WithQuery(params.Values())); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches a category with its recipes.
func (c *CategoriesClient) Get(ctx context.Context, id int) (*CategoryWithRecipes, error) {
	var out CategoryWithRecipes
	if err := c.gw.Get(ctx, fmt.Sprintf("/Category/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a category. Admin only.
func (c *CategoriesClient) Create(ctx context.Context, name string) (*Category, error) {
	var out Category
	body := map[string]string{"name": name}
	if err := c.gw.Post(ctx, "/Category/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update renames a category. Admin only.
func (c *CategoriesClient) Update(ctx context.Context, id int, name string) (*Category, error) {
	var out Category
	body := map[string]string{"name": name}
	if err := c.gw.Put(ctx, fmt.Sprintf("/Category/%d", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a category. Admin only.
func (c *CategoriesClient) Delete(ctx context.Context, id int) (*DeleteResult, error) {
	var out DeleteResult
	if err := c.gw.Delete(ctx, fmt.Sprintf("/Category/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
