package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/api"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/gateway"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/mocks/state"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/query"
)

type resourceFixture struct {
	gw       *gateway.Client
	cache    *query.Cache
	repo     *state.MemoryCacheRepo
	notifier *state.RecordingNotifier
}

type discardSessions struct{}

func (*discardSessions) Logout(context.Context) error { return nil }

func newResourceFixture(t *testing.T, handler http.HandlerFunc) *resourceFixture {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	notifier := state.NewRecordingNotifier()
	gw, err := gateway.NewClient(gateway.ClientOptions{
		BaseURL:   srv.URL,
		Tokens:    gateway.NewStateTokenSource(state.NewMemoryStateStore()),
		Notifier:  notifier,
		Navigator: state.NewStubNavigator("/dashboard"),
		Sessions:  &discardSessions{},
	})
	require.NoError(t, err)

	repo := state.NewMemoryCacheRepo()
	cache, err := query.New(query.Options{Repo: repo})
	require.NoError(t, err)

	return &resourceFixture{gw: gw, cache: cache, repo: repo, notifier: notifier}
}

func newRecipesService(t *testing.T, fx *resourceFixture) *RecipesService {
	t.Helper()
	svc, err := NewRecipesService(RecipesServiceOptions{
		Recipes:  api.NewRecipesClient(fx.gw),
		Tags:     api.NewTagsClient(fx.gw),
		Cache:    fx.cache,
		Notifier: fx.notifier,
	})
	require.NoError(t, err)
	return svc
}

func TestRecipesService_List_CachesPerParams(t *testing.T) {
	var calls int
	fx := newResourceFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/Recipe/", r.URL.Path)
		calls++
		page := api.Paginated[api.Recipe]{
			Data:                 []api.Recipe{{ID: 1, Name: "Koshari"}},
			PageNumber:           1,
			TotalNumberOfRecords: 1,
		}
		json.NewEncoder(w).Encode(page)
	})
	svc := newRecipesService(t, fx)

	params := api.RecipeListParams{Name: "kosh"}
	for i := 0; i < 2; i++ {
		page, err := svc.List(context.Background(), params)
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "Koshari", page.Data[0].Name)
	}
	assert.Equal(t, 1, calls, "second list must come from the cache")

	// Different filters miss the cache.
	_, err := svc.List(context.Background(), api.RecipeListParams{Name: "molokhia"})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRecipesService_Get_And_Tags(t *testing.T) {
	fx := newResourceFixture(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/Recipe/"):
			w.Write([]byte(`{"id":9,"name":"Falafel","price":4.5,"tag":{"id":2,"name":"Vegan"}}`))
		case r.URL.Path == "/tag/":
			w.Write([]byte(`[{"id":2,"name":"Vegan"},{"id":3,"name":"Spicy"}]`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	})
	svc := newRecipesService(t, fx)

	recipe, err := svc.Get(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "Falafel", recipe.Name)
	assert.Equal(t, "Vegan", recipe.Tag.Name)

	tags, err := svc.Tags(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "Spicy", tags[1].Name)
}

func TestRecipesService_Create_InvalidatesAndNotifies(t *testing.T) {
	var listCalls int
	fx := newResourceFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/Recipe/", r.URL.Path)
		if r.Method == http.MethodGet {
			listCalls++
			json.NewEncoder(w).Encode(api.Paginated[api.Recipe]{Data: []api.Recipe{{ID: 1}}})
			return
		}
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"message":"created"}`))
	})
	svc := newRecipesService(t, fx)

	_, err := svc.List(context.Background(), api.RecipeListParams{})
	require.NoError(t, err)

	form := api.RecipeForm{
		Name: "Taameya", Description: "street food", Price: 3.25,
		TagID: 2, CategoryIDs: []int{1, 4},
	}
	require.NoError(t, svc.Create(context.Background(), form))
	assert.Equal(t, []string{"Recipe created successfully!"}, fx.notifier.AllSuccesses())

	// The recipes region was flushed; the next list refetches.
	_, err = svc.List(context.Background(), api.RecipeListParams{})
	require.NoError(t, err)
	assert.Equal(t, 2, listCalls)
}

func TestRecipesService_Update_And_Delete(t *testing.T) {
	fx := newResourceFixture(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			assert.Equal(t, "/Recipe/9", r.URL.Path)
			w.Write([]byte(`{"id":9,"name":"Renamed","price":5}`))
		case http.MethodDelete:
			assert.Equal(t, "/Recipe/9", r.URL.Path)
			w.Write([]byte(`{"raw":[],"affected":1}`))
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	})
	svc := newRecipesService(t, fx)

	recipe, err := svc.Update(context.Background(), 9, api.RecipeForm{Name: "Renamed", Price: 5, TagID: 2})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", recipe.Name)

	require.NoError(t, svc.Delete(context.Background(), 9))
	assert.Equal(t, []string{
		"Recipe updated successfully!",
		"Recipe deleted successfully!",
	}, fx.notifier.AllSuccesses())
}

func TestRecipesService_Create_FailurePropagates(t *testing.T) {
	fx := newResourceFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"invalid","additionalInfo":{"errors":{"name":["name is required"]}}}`))
	})
	svc := newRecipesService(t, fx)

	err := svc.Create(context.Background(), api.RecipeForm{})
	require.Error(t, err)
	assert.Empty(t, fx.notifier.AllSuccesses())
	// The gateway already notified; the service must not add its own.
	assert.Equal(t, []string{"name: name is required"}, fx.notifier.AllErrors())
}

func newCategoriesService(t *testing.T, fx *resourceFixture) *CategoriesService {
	t.Helper()
	svc, err := NewCategoriesService(CategoriesServiceOptions{
		Client:   api.NewCategoriesClient(fx.gw),
		Cache:    fx.cache,
		Notifier: fx.notifier,
	})
	require.NoError(t, err)
	return svc
}

func TestCategoriesService_CRUD(t *testing.T) {
	var listCalls int
	fx := newResourceFixture(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/Category/":
			listCalls++
			json.NewEncoder(w).Encode(api.Paginated[api.Category]{Data: []api.Category{{ID: 1, Name: "Breakfast"}}})
		case r.Method == http.MethodGet:
			assert.Equal(t, "/Category/1", r.URL.Path)
			w.Write([]byte(`{"id":1,"name":"Breakfast","recipe":[{"id":3,"name":"Foul"}]}`))
		case r.Method == http.MethodPost:
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Dinner", body["name"])
			w.Write([]byte(`{"id":2,"name":"Dinner"}`))
		case r.Method == http.MethodPut:
			assert.Equal(t, "/Category/2", r.URL.Path)
			w.Write([]byte(`{"id":2,"name":"Supper"}`))
		case r.Method == http.MethodDelete:
			w.Write([]byte(`{"raw":[],"affected":1}`))
		}
	})
	svc := newCategoriesService(t, fx)

	page, err := svc.List(context.Background(), api.CategoryListParams{})
	require.NoError(t, err)
	assert.Equal(t, "Breakfast", page.Data[0].Name)

	detail, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, detail.Recipe, 1)
	assert.Equal(t, "Foul", detail.Recipe[0].Name)

	created, err := svc.Create(context.Background(), "Dinner")
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)

	updated, err := svc.Update(context.Background(), 2, "Supper")
	require.NoError(t, err)
	assert.Equal(t, "Supper", updated.Name)

	require.NoError(t, svc.Delete(context.Background(), 2))

	assert.Equal(t, []string{
		"Category created successfully!",
		"Category updated successfully!",
		"Category deleted successfully!",
	}, fx.notifier.AllSuccesses())

	// Each mutation flushed the region, so this is a fresh fetch.
	_, err = svc.List(context.Background(), api.CategoryListParams{})
	require.NoError(t, err)
	assert.Equal(t, 2, listCalls)
}

func newUsersService(t *testing.T, fx *resourceFixture) *UsersService {
	t.Helper()
	svc, err := NewUsersService(UsersServiceOptions{
		Client:   api.NewUsersClient(fx.gw),
		Cache:    fx.cache,
		Notifier: fx.notifier,
	})
	require.NoError(t, err)
	return svc
}

func TestUsersService_ListGetDelete(t *testing.T) {
	fx := newResourceFixture(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/Users/":
			assert.Equal(t, []string{"1", "2"}, r.URL.Query()["groups"])
			json.NewEncoder(w).Encode(api.Paginated[api.User]{Data: []api.User{{ID: 7, UserName: "boss"}}})
		case r.Method == http.MethodGet:
			assert.Equal(t, "/Users/7", r.URL.Path)
			w.Write([]byte(`{"id":7,"userName":"boss","group":{"id":1,"name":"SuperAdmin"}}`))
		case r.Method == http.MethodDelete:
			assert.Equal(t, "/Users/7", r.URL.Path)
			w.Write([]byte(`{"raw":[],"affected":1}`))
		}
	})
	svc := newUsersService(t, fx)

	page, err := svc.List(context.Background(), api.UserListParams{Groups: []int{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, "boss", page.Data[0].UserName)

	user, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "SuperAdmin", user.Group.Name)

	require.NoError(t, svc.Delete(context.Background(), 7))
	assert.Equal(t, []string{"User deleted successfully!"}, fx.notifier.AllSuccesses())
}

func newFavoritesService(t *testing.T, fx *resourceFixture) *FavoritesService {
	t.Helper()
	svc, err := NewFavoritesService(FavoritesServiceOptions{
		Client:   api.NewFavoritesClient(fx.gw),
		Cache:    fx.cache,
		Notifier: fx.notifier,
	})
	require.NoError(t, err)
	return svc
}

func TestFavoritesService_AddListRemove(t *testing.T) {
	var listCalls int
	fx := newResourceFixture(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			require.Equal(t, "/userRecipe/", r.URL.Path)
			listCalls++
			json.NewEncoder(w).Encode(api.Paginated[api.Favorite]{Data: []api.Favorite{
				{ID: 11, Recipe: api.Recipe{ID: 5, Name: "Koshari"}},
			}})
		case r.Method == http.MethodPost:
			var body map[string]int
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, 5, body["recipeId"])
			w.Write([]byte(`{"id":11,"recipe":{"id":5,"name":"Koshari"}}`))
		case r.Method == http.MethodDelete:
			assert.Equal(t, "/userRecipe/11", r.URL.Path)
			w.Write([]byte(`{"raw":[],"affected":1}`))
		}
	})
	svc := newFavoritesService(t, fx)

	fav, err := svc.Add(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 11, fav.ID)

	page, err := svc.List(context.Background(), api.FavoriteListParams{})
	require.NoError(t, err)
	assert.Equal(t, "Koshari", page.Data[0].Recipe.Name)

	require.NoError(t, svc.Remove(context.Background(), 11))
	assert.Equal(t, []string{"Added to favorites!", "Removed from favorites!"}, fx.notifier.AllSuccesses())

	// Removal flushed the favorites region.
	_, err = svc.List(context.Background(), api.FavoriteListParams{})
	require.NoError(t, err)
	assert.Equal(t, 2, listCalls)
}

func TestNewResourceServices_Validation(t *testing.T) {
	_, err := NewRecipesService(RecipesServiceOptions{})
	require.Error(t, err)
	_, err = NewCategoriesService(CategoriesServiceOptions{})
	require.Error(t, err)
	_, err = NewUsersService(UsersServiceOptions{})
	require.Error(t, err)
	_, err = NewFavoritesService(FavoritesServiceOptions{})
	require.Error(t, err)
}
