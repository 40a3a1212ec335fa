package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/mocks"
)

// A broken repository must degrade the cache to a pass-through, never
// break the read path.

func TestFetchJSON_RepoGetFailureFallsThroughToLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCacheRepository(ctrl)

	repo.EXPECT().Get(gomock.Any(), "k").Return(nil, errors.New("connection refused"))
	repo.EXPECT().Set(gomock.Any(), "k", gomock.Any(), gomock.Any()).Return(nil)

	cache, err := New(Options{Repo: repo})
	require.NoError(t, err)

	got, err := FetchJSON(context.Background(), cache, "k", func(context.Context) (int, error) {
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestFetchJSON_RepoSetFailureStillReturnsValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCacheRepository(ctrl)

	repo.EXPECT().Get(gomock.Any(), "k").Return(nil, nil)
	repo.EXPECT().Set(gomock.Any(), "k", []byte(`"v"`), DefaultStaleTime).Return(errors.New("full"))

	cache, err := New(Options{Repo: repo})
	require.NoError(t, err)

	got, err := FetchJSON(context.Background(), cache, "k", func(context.Context) (string, error) {
		return "v", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestCache_Invalidate_SwallowsRepoFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCacheRepository(ctrl)

	repo.EXPECT().DeletePrefix(gomock.Any(), regionPrefix(RegionRecipes)).Return(0, errors.New("down"))

	cache, err := New(Options{Repo: repo, StaleTime: time.Minute})
	require.NoError(t, err)

	// Must not panic or surface the error.
	cache.Invalidate(context.Background(), RegionRecipes)
}
