package memcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRepo_SetGet(t *testing.T) {
	repo := NewCacheRepo()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "recipes:list", []byte(`[]`), time.Minute))

	value, err := repo.Get(ctx, "recipes:list")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), value)
}

func TestCacheRepo_Get_MissReturnsNilNil(t *testing.T) {
	repo := NewCacheRepo()

	value, err := repo.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestCacheRepo_Expiry(t *testing.T) {
	repo := NewCacheRepo()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "short", []byte("x"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	value, err := repo.Get(ctx, "short")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestCacheRepo_Delete(t *testing.T) {
	repo := NewCacheRepo()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", []byte("v"), 0))

	removed, err := repo.Delete(ctx, "k")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, "k")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestCacheRepo_DeletePrefix(t *testing.T) {
	repo := NewCacheRepo()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "recipes:list", []byte("a"), 0))
	require.NoError(t, repo.Set(ctx, "recipes:detail:1", []byte("b"), 0))
	require.NoError(t, repo.Set(ctx, "users:list", []byte("c"), 0))

	removed, err := repo.DeletePrefix(ctx, "recipes:")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	value, err := repo.Get(ctx, "users:list")
	require.NoError(t, err)
	assert.Equal(t, []byte("c"), value)
}
