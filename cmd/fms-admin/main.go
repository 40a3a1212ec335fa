package main

import (
	"context"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/api"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting fms admin client",
		"api_base_url", cfg.API.BaseURL,
		"storage_backend", cfg.Storage.Backend,
		"cache_enabled", cfg.Cache.Enabled)

	app, err := bootstrap.NewApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close app failed", "error", cerr)
		}
	}()

	// Non-interactive login from configured credentials. Without
	// credentials a previously persisted session may still be live.
	if cfg.API.LoginEmail != "" && cfg.API.LoginPassword != "" {
		if _, err := app.Auth.Login(ctx, cfg.API.LoginEmail, cfg.API.LoginPassword); err != nil {
			return err
		}
	}

	snapshot := app.Sessions.Snapshot()
	if !snapshot.IsAuthenticated {
		logger.InfoContext(ctx, "no authenticated session; set API_LOGIN_EMAIL and API_LOGIN_PASSWORD to log in")
		return nil
	}

	logger.InfoContext(ctx, "session ready",
		"user", snapshot.User.UserName,
		"role", string(snapshot.Role),
		"path", app.Navigator.CurrentPath())

	return warmLookups(ctx, app, logger)
}

// warmLookups primes the lookup caches the recipe screens depend on.
func warmLookups(ctx context.Context, app *bootstrap.App, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		tags, err := app.Recipes.Tags(gctx)
		if err != nil {
			return err
		}
		logger.InfoContext(gctx, "tags loaded", "count", len(tags))
		return nil
	})
	g.Go(func() error {
		categories, err := app.Categories.List(gctx, api.CategoryListParams{})
		if err != nil {
			return err
		}
		logger.InfoContext(gctx, "categories loaded", "count", categories.TotalNumberOfRecords)
		return nil
	})

	return g.Wait()
}
