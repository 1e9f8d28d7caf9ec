package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if c.Redis.Enabled() {
		u, err := url.Parse(c.Redis.URL)
		if err != nil || (u.Scheme != "redis" && u.Scheme != "rediss") {
			return fmt.Errorf("redis.url must be a redis:// or rediss:// URL")
		}
		if c.Redis.CacheTTL <= 0 {
			return fmt.Errorf("redis.cache_ttl must be > 0 (got %v)", c.Redis.CacheTTL)
		}
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.Cases.MaxBatchLink <= 0 {
		return fmt.Errorf("cases.max_batch_link must be > 0 (got %d)", c.Cases.MaxBatchLink)
	}
	if c.Cases.MaxNoteLength <= 0 {
		return fmt.Errorf("cases.max_note_length must be > 0 (got %d)", c.Cases.MaxNoteLength)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.DSN == "" {
		return fmt.Errorf("dsn is required")
	}
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be in 0..max_conns (got %d)", d.MinConns)
	}
	if d.StatementTimeout < 0 {
		return fmt.Errorf("statement_timeout must be >= 0 (got %v)", d.StatementTimeout)
	}
	if d.TxRetries == 0 {
		return fmt.Errorf("tx_retries must be >= 1")
	}
	return nil
}
