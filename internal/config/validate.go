package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Archive.validate(); err != nil {
		return fmt.Errorf("archive: %w", err)
	}
	if err := c.Quiz.validate(); err != nil {
		return fmt.Errorf("quiz: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.SearchRateLimit < 0 {
		return fmt.Errorf("server.search_rate_limit must be >= 0 (got %d)", c.Server.SearchRateLimit)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	d.Driver = strings.ToLower(strings.TrimSpace(d.Driver))
	if d.Driver == "" {
		d.Driver = DriverNone
	}

	switch d.Driver {
	case DriverPostgres, DriverSQLite:
		if d.DSN == "" {
			return fmt.Errorf("dsn is required for driver %q", d.Driver)
		}
	case DriverMemory, DriverNone:
	default:
		return fmt.Errorf("unknown driver %q", d.Driver)
	}

	if d.Driver == DriverPostgres && d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns (%d) must not exceed max_conns (%d)", d.MinConns, d.MaxConns)
	}
	return nil
}

func (a *ArchiveConfig) validate() error {
	if a.Path == "" {
		return fmt.Errorf("path is required")
	}
	if a.PassTimeout <= 0 {
		return fmt.Errorf("pass_timeout must be > 0 (got %v)", a.PassTimeout)
	}
	if a.MaxEntryBytes < 0 {
		return fmt.Errorf("max_entry_bytes must be >= 0 (got %d)", a.MaxEntryBytes)
	}
	return nil
}

func (q *QuizConfig) validate() error {
	if q.SeedLimit < 0 {
		return fmt.Errorf("seed_limit must be >= 0 (got %d)", q.SeedLimit)
	}
	if q.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", q.BatchSize)
	}
	if q.SearchTimeout <= 0 {
		return fmt.Errorf("search_timeout must be > 0 (got %v)", q.SearchTimeout)
	}
	if q.SearchCacheSize < 0 {
		return fmt.Errorf("search_cache_size must be >= 0 (got %d)", q.SearchCacheSize)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown level %q", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("unknown format %q", l.Format)
	}
	return nil
}
