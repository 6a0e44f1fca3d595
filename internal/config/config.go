package config

import (
	"time"
)

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
	// DriverNone leaves the pool store unconfigured; store-backed operations degrade.
	DriverNone = "none"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Archive  ArchiveConfig  `yaml:"archive"`
	Quiz     QuizConfig     `yaml:"quiz"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"3000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// SearchRateLimit caps /api/search requests per client per minute; 0 disables it.
	SearchRateLimit int `yaml:"search_rate_limit" env:"SERVER_SEARCH_RATE_LIMIT"`
}

// DatabaseConfig holds pool store connection settings.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"             env:"DATABASE_DRIVER"             env-default:"memory"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	SkipMigrate     bool          `yaml:"skip_migrate"       env:"DATABASE_SKIP_MIGRATE"`
}

// ArchiveConfig holds dictionary archive settings.
type ArchiveConfig struct {
	Path          string        `yaml:"path"            env:"ARCHIVE_PATH"            env-default:"./dict.zip"`
	PassTimeout   time.Duration `yaml:"pass_timeout"    env:"ARCHIVE_PASS_TIMEOUT"    env-default:"60s"`
	MaxEntryBytes int64         `yaml:"max_entry_bytes" env:"ARCHIVE_MAX_ENTRY_BYTES" env-default:"67108864"`
	Watch         bool          `yaml:"watch"           env:"ARCHIVE_WATCH"           env-default:"false"`
}

// QuizConfig holds quiz pool settings.
type QuizConfig struct {
	SeedLimit       int           `yaml:"seed_limit"        env:"QUIZ_SEED_LIMIT"        env-default:"7"`
	SkipStartupSeed bool          `yaml:"skip_startup_seed" env:"QUIZ_SKIP_STARTUP_SEED"`
	BatchSize       int           `yaml:"batch_size"        env:"QUIZ_BATCH_SIZE"        env-default:"19"`
	SearchTimeout   time.Duration `yaml:"search_timeout"    env:"QUIZ_SEARCH_TIMEOUT"    env-default:"30s"`
	SearchCacheSize int           `yaml:"search_cache_size" env:"QUIZ_SEARCH_CACHE_SIZE" env-default:"0"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// HasStore reports whether a pool store driver is configured.
func (c DatabaseConfig) HasStore() bool {
	return c.Driver != DriverNone && c.Driver != ""
}
