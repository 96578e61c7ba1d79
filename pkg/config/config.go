package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App         AppConfig
	Snapshot    SnapshotConfig
	Redis       RedisConfig
	DB          DBConfig
	Suggestions SuggestionsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Snapshot.validateBackend(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BREAKLOOP_APP_ENV" default:"dev"`
	Port         string `envconfig:"BREAKLOOP_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"BREAKLOOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BREAKLOOP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// SnapshotConfig controls how community snapshots are stored. DemoMode
// bypasses durable storage entirely so every boot starts from seed defaults.
type SnapshotConfig struct {
	StorageKey    string `envconfig:"BREAKLOOP_SNAPSHOT_KEY" default:"community_state_v2"`
	SettingsKey   string `envconfig:"BREAKLOOP_SETTINGS_KEY" default:"user_settings_v1"`
	Backend       string `envconfig:"BREAKLOOP_SNAPSHOT_BACKEND" default:"sqlite"`
	DemoMode      bool   `envconfig:"BREAKLOOP_DEMO_MODE" default:"false"`
	CurrentUserID string `envconfig:"BREAKLOOP_CURRENT_USER_ID" default:"f0"`
}

func (s SnapshotConfig) validateBackend() error {
	switch s.Backend {
	case SnapshotBackendMemory, SnapshotBackendRedis, SnapshotBackendSQLite, SnapshotBackendPostgres:
		return nil
	}
	return fmt.Errorf("unknown snapshot backend %q", s.Backend)
}

type RedisConfig struct {
	URL          string        `envconfig:"BREAKLOOP_REDIS_URL"`
	Address      string        `envconfig:"BREAKLOOP_REDIS_ADDR"`
	Password     string        `envconfig:"BREAKLOOP_REDIS_PASSWORD"`
	DB           int           `envconfig:"BREAKLOOP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BREAKLOOP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BREAKLOOP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BREAKLOOP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BREAKLOOP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BREAKLOOP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type DBConfig struct {
	DSN        string `envconfig:"BREAKLOOP_DB_DSN"`
	SQLitePath string `envconfig:"BREAKLOOP_SQLITE_PATH" default:"breakloop.db"`

	MaxOpenConns    int           `envconfig:"BREAKLOOP_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"BREAKLOOP_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"BREAKLOOP_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BREAKLOOP_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// SuggestionsConfig configures the generative-text provider. A missing API
// key disables suggestions rather than failing boot.
type SuggestionsConfig struct {
	APIKey  string        `envconfig:"BREAKLOOP_GEMINI_KEY"`
	BaseURL string        `envconfig:"BREAKLOOP_GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	Model   string        `envconfig:"BREAKLOOP_GEMINI_MODEL" default:"gemini-2.5-flash-preview-09-2025"`
	Timeout time.Duration `envconfig:"BREAKLOOP_GEMINI_TIMEOUT" default:"10s"`
}

// Enabled reports whether a usable API key is configured.
func (s SuggestionsConfig) Enabled() bool {
	return strings.TrimSpace(s.APIKey) != ""
}
