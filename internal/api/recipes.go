package api

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/gateway"
)

// RecipesClient covers the /Recipe endpoints.
type RecipesClient struct {
	gw *gateway.Client
}

// NewRecipesClient constructs a RecipesClient.
func NewRecipesClient(gw *gateway.Client) *RecipesClient {
	return &RecipesClient{gw: gw}
}

// RecipeListParams filters GET /Recipe/.
type RecipeListParams struct {
	PageSize   int
	PageNumber int
	Name       string
	TagID      int
	CategoryID int
}

// Values encodes the parameters for the query string.
func (p RecipeListParams) Values() url.Values {
	v := pageValues(p.PageSize, p.PageNumber)
	if p.Name != "" {
		v.Set("name", p.Name)
	}
	if p.TagID > 0 {
		v.Set("tagId", strconv.Itoa(p.TagID))
	}
	if p.CategoryID > 0 {
		v.Set("categoryId", strconv.Itoa(p.CategoryID))
	}
	return v
}

// List fetches a filtered page of recipes.
func (c *RecipesClient) List(ctx context.Context, params RecipeListParams) (*Paginated[Recipe], error) {
	var out Paginated[Recipe]
	if err := c.gw.Get(ctx, "/Recipe/", &out, gateway.WithQuery(params.Values())); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches a single recipe.
func (c *RecipesClient) Get(ctx context.Context, id int) (*Recipe, error) {
	var out Recipe
	if err := c.gw.Get(ctx, fmt.Sprintf("/Recipe/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecipeForm carries the create/update payload. The update endpoint
// requires every field, so the same shape serves both. RecipeImage is
// optional on update.
type RecipeForm struct {
	Name          string
	Description   string
	Price         float64
	TagID         int
	CategoryIDs   []int
	RecipeImage   io.Reader
	ImageFileName string
}

func (f RecipeForm) multipart() *gateway.Form {
	form := gateway.NewForm().
		AddField("name", f.Name).
		AddField("description", f.Description).
		AddField("price", strconv.FormatFloat(f.Price, 'f', -1, 64)).
		AddInt("tagId", f.TagID).
		AddInts("categoriesIds", f.CategoryIDs)
	if f.RecipeImage != nil {
		form.AddFile("recipeImage", f.ImageFileName, f.RecipeImage)
	}
	return form
}

// Create adds a recipe. Admin only.
func (c *RecipesClient) Create(ctx context.Context, form RecipeForm) (*MessageResult, error) {
	var out MessageResult
	if err := c.gw.PostForm(ctx, "/Recipe/", form.multipart(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a recipe. Admin only.
func (c *RecipesClient) Update(ctx context.Context, id int, form RecipeForm) (*Recipe, error) {
	var out Recipe
	if err := c.gw.PutForm(ctx, fmt.Sprintf("/Recipe/%d", id), form.multipart(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a recipe. Admin only.
func (c *RecipesClient) Delete(ctx context.Context, id int) (*DeleteResult, error) {
	var out DeleteResult
	if err := c.gw.Delete(ctx, fmt.Sprintf("/Recipe/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
