package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/breakloop/community-backend/api/controllers"
	"github.com/breakloop/community-backend/api/routes"
	"github.com/breakloop/community-backend/internal/community"
	"github.com/breakloop/community-backend/internal/settings"
	"github.com/breakloop/community-backend/internal/suggestions"
	"github.com/breakloop/community-backend/pkg/config"
	"github.com/breakloop/community-backend/pkg/db"
	"github.com/breakloop/community-backend/pkg/env"
	"github.com/breakloop/community-backend/pkg/kv"
	"github.com/breakloop/community-backend/pkg/logger"
	"github.com/breakloop/community-backend/pkg/metrics"
	"github.com/breakloop/community-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	durable, pingers, cleanup, err := buildBackend(context.Background(), cfg, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap storage backend", err)
		os.Exit(1)
	}
	defer cleanup()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	transitionMetrics := metrics.NewTransitionMetrics(registry)

	snapshotStore, err := community.NewStore(community.StoreParams{
		Logger:    logg,
		Durable:   durable,
		Key:       cfg.Snapshot.StorageKey,
		Ephemeral: cfg.Snapshot.DemoMode,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create snapshot store", err)
		os.Exit(1)
	}
	if _, err := snapshotStore.Load(context.Background(), community.Patch{}); err != nil {
		logg.Error(context.Background(), "failed to load community snapshot", err)
		os.Exit(1)
	}

	communityService, err := community.NewService(community.Params{
		Store:   snapshotStore,
		Logger:  logg,
		Metrics: transitionMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create community service", err)
		os.Exit(1)
	}

	settingsService, err := settings.NewService(settings.Params{
		Logger:    logg,
		Durable:   durable,
		Key:       cfg.Snapshot.SettingsKey,
		Ephemeral: cfg.Snapshot.DemoMode,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create settings service", err)
		os.Exit(1)
	}

	var generator suggestions.TextGenerator
	if cfg.Suggestions.Enabled() {
		client, err := suggestions.NewClient(
			cfg.Suggestions.APIKey,
			suggestions.WithBaseURL(cfg.Suggestions.BaseURL),
			suggestions.WithModel(cfg.Suggestions.Model),
			suggestions.WithHTTPClient(&http.Client{Timeout: cfg.Suggestions.Timeout}),
		)
		if err != nil {
			logg.Error(context.Background(), "failed to create suggestions client", err)
			os.Exit(1)
		}
		generator = client
	} else {
		logg.Warn(context.Background(), "no suggestions api key configured, suggestions disabled")
	}
	suggestionsService, err := suggestions.NewService(suggestions.Params{
		Logger:    logg,
		Generator: generator,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create suggestions service", err)
		os.Exit(1)
	}

	addr := ":" + env.Get("PORT", cfg.App.Port)
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"backend": cfg.Snapshot.Backend,
		"demo":    cfg.Snapshot.DemoMode,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			pingers,
			registry,
			communityService,
			settingsService,
			suggestionsService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

// buildBackend wires the durable key-value store the configured backend
// maps to, plus the readiness pingers and shutdown hook that go with it.
func buildBackend(ctx context.Context, cfg *config.Config, logg *logger.Logger) (kv.Store, map[string]controllers.Pinger, func(), error) {
	noop := func() {}

	switch cfg.Snapshot.Backend {
	case config.SnapshotBackendMemory:
		return kv.NewMemory(), map[string]controllers.Pinger{}, noop, nil

	case config.SnapshotBackendRedis:
		client, err := redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return nil, nil, noop, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}
		pingers := map[string]controllers.Pinger{"redis": client}
		return kv.NewRedis(client), pingers, cleanup, nil

	case config.SnapshotBackendPostgres, config.SnapshotBackendSQLite:
		usePostgres := cfg.Snapshot.Backend == config.SnapshotBackendPostgres
		client, err := db.New(ctx, cfg.DB, usePostgres, logg)
		if err != nil {
			return nil, nil, noop, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				logg.Error(context.Background(), "error closing database", err)
			}
		}
		store, err := kv.NewGorm(client.DB())
		if err != nil {
			cleanup()
			return nil, nil, noop, err
		}
		pingers := map[string]controllers.Pinger{"db": client}
		return store, pingers, cleanup, nil
	}

	return nil, nil, noop, fmt.Errorf("unknown snapshot backend %q", cfg.Snapshot.Backend)
}
