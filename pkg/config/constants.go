package config

const (
	EnvPrefix = "BREAKLOOP"

	AppEnvDev  = "dev"
	AppEnvProd = "production"

	SnapshotBackendMemory   = "memory"
	SnapshotBackendRedis    = "redis"
	SnapshotBackendSQLite   = "sqlite"
	SnapshotBackendPostgres = "postgres"

	EnvAppEnv          = "BREAKLOOP_APP_ENV"
	EnvPort            = "BREAKLOOP_APP_PORT"
	EnvSnapshotBackend = "BREAKLOOP_SNAPSHOT_BACKEND"
	EnvDemoMode        = "BREAKLOOP_DEMO_MODE"
	EnvRedisURL        = "BREAKLOOP_REDIS_URL"
	EnvDBDSN           = "BREAKLOOP_DB_DSN"
	EnvGeminiKey       = "BREAKLOOP_GEMINI_KEY"
)
