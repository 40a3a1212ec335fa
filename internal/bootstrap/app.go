package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/config"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/adapters/authroles"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/adapters/filestate"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/adapters/lognotifier"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/adapters/memcache"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/adapters/rediscache"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/adapters/redisstate"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/api"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/gateway"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/navigator"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/ports"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/query"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/routeguard"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/service"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/session"
)

// App is the wired application: state, session, gateway and the
// feature services, built from configuration.
type App struct {
	Config config.AppConfig
	Logger *slog.Logger

	State     ports.StateStore
	Sessions  *session.Store
	Navigator *navigator.Navigator
	Notifier  ports.Notifier
	Gateway   *gateway.Client
	Cache     *query.Cache

	Auth       *service.AuthService
	Recipes    *service.RecipesService
	Categories *service.CategoriesService
	Users      *service.UsersService
	Favorites  *service.FavoritesService

	redisClients []*redis.Client
}

// NewRedisClient creates a Redis client from configuration.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewApp wires the application from configuration. The context is used
// for session rehydration only; it does not bound the app's lifetime.
func NewApp(ctx context.Context, cfg config.AppConfig, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	app := &App{Config: cfg, Logger: logger}

	state, err := app.buildStateStore(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("build state store: %w", err)
	}
	app.State = state

	sessions, err := session.NewStore(ctx, session.StoreOptions{
		State: state,
		Roles: authroles.NewGroupRoleMapper(),
	})
	if err != nil {
		return nil, fmt.Errorf("build session store: %w", err)
	}
	app.Sessions = sessions

	app.Navigator = navigator.New(navigator.Options{
		Table:    routeguard.NewTable(),
		Sessions: sessions,
		Logger:   logger,
	})

	app.Notifier = lognotifier.New(logger)

	gw, err := gateway.NewClient(gateway.ClientOptions{
		BaseURL:    cfg.API.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.API.Timeout},
		Tokens:     gateway.NewStateTokenSource(state),
		Notifier:   app.Notifier,
		Navigator:  app.Navigator,
		Sessions:   sessions,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build gateway: %w", err)
	}
	app.Gateway = gw

	cache, err := query.New(query.Options{
		Repo:      app.buildCacheRepo(cfg.Cache),
		StaleTime: cfg.Cache.StaleTime,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build query cache: %w", err)
	}
	app.Cache = cache

	if err := app.buildServices(gw); err != nil {
		return nil, err
	}
	return app, nil
}

func (a *App) buildStateStore(cfg config.StorageConfig) (ports.StateStore, error) {
	switch cfg.Backend {
	case config.StorageRedis:
		client := NewRedisClient(cfg.Redis)
		a.redisClients = append(a.redisClients, client)
		return redisstate.NewStateStore(client), nil
	case config.StorageFile:
		return filestate.NewStateStore(cfg.FilePath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func (a *App) buildCacheRepo(cfg config.CacheConfig) ports.CacheRepository {
	if !cfg.Enabled {
		return memcache.NewCacheRepo()
	}
	client := NewRedisClient(cfg.Redis)
	a.redisClients = append(a.redisClients, client)
	return rediscache.NewCacheRepo(client)
}

func (a *App) buildServices(gw *gateway.Client) error {
	auth, err := service.NewAuthService(service.AuthServiceOptions{
		Client:    api.NewAuthClient(gw),
		Sessions:  a.Sessions,
		Cache:     a.Cache,
		Notifier:  a.Notifier,
		Navigator: a.Navigator,
	})
	if err != nil {
		return fmt.Errorf("build auth service: %w", err)
	}
	a.Auth = auth

	recipes, err := service.NewRecipesService(service.RecipesServiceOptions{
		Recipes:  api.NewRecipesClient(gw),
		Tags:     api.NewTagsClient(gw),
		Cache:    a.Cache,
		Notifier: a.Notifier,
	})
	if err != nil {
		return fmt.Errorf("build recipes service: %w", err)
	}
	a.Recipes = recipes

	categories, err := service.NewCategoriesService(service.CategoriesServiceOptions{
		Client:   api.NewCategoriesClient(gw),
		Cache:    a.Cache,
		Notifier: a.Notifier,
	})
	if err != nil {
		return fmt.Errorf("build categories service: %w", err)
	}
	a.Categories = categories

	users, err := service.NewUsersService(service.UsersServiceOptions{
		Client:   api.NewUsersClient(gw),
		Cache:    a.Cache,
		Notifier: a.Notifier,
	})
	if err != nil {
		return fmt.Errorf("build users service: %w", err)
	}
	a.Users = users

	favorites, err := service.NewFavoritesService(service.FavoritesServiceOptions{
		Client:   api.NewFavoritesClient(gw),
		Cache:    a.Cache,
		Notifier: a.Notifier,
	})
	if err != nil {
		return fmt.Errorf("build favorites service: %w", err)
	}
	a.Favorites = favorites

	return nil
}

// Close releases connections held by the app.
func (a *App) Close() error {
	var firstErr error
	for _, client := range a.redisClients {
		if err := client.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
