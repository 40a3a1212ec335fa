package bootstrap

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/config"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/routeguard"
)

func fileBackedConfig(t *testing.T) config.AppConfig {
	t.Helper()
	return config.AppConfig{
		API: config.APIConfig{
			BaseURL: "https://upskilling-egypt.com:3006/api/v1",
			Timeout: 30 * time.Second,
		},
		Storage: config.StorageConfig{
			Backend:  config.StorageFile,
			FilePath: filepath.Join(t.TempDir(), "state.json"),
		},
		Cache: config.CacheConfig{Enabled: false},
	}
}

func TestNewApp_FileBackend(t *testing.T) {
	app, err := NewApp(context.Background(), fileBackedConfig(t), nil)
	require.NoError(t, err)
	defer app.Close()

	require.NotNil(t, app.State)
	require.NotNil(t, app.Sessions)
	require.NotNil(t, app.Navigator)
	require.NotNil(t, app.Gateway)
	require.NotNil(t, app.Cache)
	require.NotNil(t, app.Auth)
	require.NotNil(t, app.Recipes)
	require.NotNil(t, app.Categories)
	require.NotNil(t, app.Users)
	require.NotNil(t, app.Favorites)

	// Fresh state starts unauthenticated at the login screen.
	assert.False(t, app.Sessions.Snapshot().IsAuthenticated)
	assert.Equal(t, routeguard.PathLogin, app.Navigator.CurrentPath())

	// No Redis connections were opened for file storage + disabled cache.
	assert.Empty(t, app.redisClients)
	assert.NoError(t, app.Close())
}

func TestNewApp_UnknownBackend(t *testing.T) {
	cfg := fileBackedConfig(t)
	cfg.Storage.Backend = config.StorageBackend("bolt")

	_, err := NewApp(context.Background(), cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage backend")
}

func TestNewApp_StatePersistsAcrossRestarts(t *testing.T) {
	cfg := fileBackedConfig(t)

	app, err := NewApp(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.NoError(t, app.State.Set(context.Background(), "token", []byte("abc")))
	require.NoError(t, app.Close())

	reopened, err := NewApp(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.State.Get(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}
