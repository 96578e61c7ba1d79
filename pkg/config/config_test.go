package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsDev() {
		t.Fatalf("expected dev env by default, got %q", cfg.App.Env)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("unexpected default port %q", cfg.App.Port)
	}
	if cfg.Snapshot.StorageKey != "community_state_v2" {
		t.Fatalf("unexpected snapshot key %q", cfg.Snapshot.StorageKey)
	}
	if cfg.Snapshot.Backend != SnapshotBackendSQLite {
		t.Fatalf("unexpected snapshot backend %q", cfg.Snapshot.Backend)
	}
	if cfg.Snapshot.DemoMode {
		t.Fatal("demo mode should be off by default")
	}
	if cfg.Suggestions.Enabled() {
		t.Fatal("suggestions should be disabled without an API key")
	}
	if cfg.Suggestions.Timeout != 10*time.Second {
		t.Fatalf("unexpected suggestions timeout %v", cfg.Suggestions.Timeout)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
	t.Setenv(EnvSnapshotBackend, SnapshotBackendRedis)
	t.Setenv(EnvDemoMode, "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if !cfg.App.IsProd() {
		t.Fatalf("expected production env, got %q", cfg.App.Env)
	}
	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected Redis URL: %q", cfg.Redis.URL)
	}
	if cfg.Snapshot.Backend != SnapshotBackendRedis {
		t.Fatalf("unexpected backend %q", cfg.Snapshot.Backend)
	}
	if !cfg.Snapshot.DemoMode {
		t.Fatal("expected demo mode on")
	}
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	t.Setenv(EnvSnapshotBackend, "carrier-pigeon")
	if _, err := Load(); err == nil {
		t.Fatal("expected unknown backend to return an error")
	}
}
