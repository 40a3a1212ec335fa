package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/ports"
)

func TestMemoryStateStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStateStore()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ports.ErrNotFound)

	require.NoError(t, store.Set(ctx, "token", []byte("abc")))
	got, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	require.NoError(t, store.Delete(ctx, "token"))
	_, err = store.Get(ctx, "token")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestMemoryStateStore_Overrides(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStateStore()
	boom := errors.New("boom")
	store.SetFunc = func(context.Context, string, []byte) error { return boom }

	assert.ErrorIs(t, store.Set(ctx, "k", []byte("v")), boom)

	store.SetFunc = nil
	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	assert.Equal(t, []string{"k"}, store.Keys())
}

func TestMemoryCacheRepo_Expiry(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCacheRepo()

	now := time.Unix(1000, 0)
	repo.SetClock(func() time.Time { return now })

	require.NoError(t, repo.Set(ctx, "k", []byte(`1`), time.Minute))
	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`1`), got)

	now = now.Add(2 * time.Minute)
	got, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got, "expired entries read as misses")
}

func TestMemoryCacheRepo_DeletePrefix(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCacheRepo()
	require.NoError(t, repo.Set(ctx, "recipes:a", []byte(`1`), 0))
	require.NoError(t, repo.Set(ctx, "recipes:b", []byte(`2`), 0))
	require.NoError(t, repo.Set(ctx, "users:a", []byte(`3`), 0))

	removed, err := repo.DeletePrefix(ctx, "recipes:")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, repo.Len())
}

func TestRecordingNotifier_CopiesSlices(t *testing.T) {
	n := NewRecordingNotifier()
	n.Success("ok")
	n.Error("bad")

	successes := n.AllSuccesses()
	successes[0] = "mutated"
	assert.Equal(t, []string{"ok"}, n.AllSuccesses())
	assert.Equal(t, []string{"bad"}, n.AllErrors())
}

func TestStubNavigator(t *testing.T) {
	nav := NewStubNavigator("/login")
	assert.Equal(t, "/login", nav.CurrentPath())

	assert.Equal(t, "/dashboard", nav.Navigate("/dashboard"))
	nav.Force("/login")

	assert.Equal(t, "/login", nav.CurrentPath())
	assert.Equal(t, []string{"/dashboard"}, nav.Navs)
	assert.Equal(t, []string{"/login"}, nav.Forces)
}
