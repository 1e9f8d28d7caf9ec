package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Log      LogConfig      `yaml:"log"`
	Cases    CasesConfig    `yaml:"cases"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// ServerConfig holds settings of the operational HTTP server
// (health probes and metrics).
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN              string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns         int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns         int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime  time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	StatementTimeout time.Duration `yaml:"statement_timeout"  env:"DATABASE_STATEMENT_TIMEOUT"  env-default:"15s"`
	TxRetries        uint          `yaml:"tx_retries"         env:"DATABASE_TX_RETRIES"         env-default:"3"`
	AutoMigrate      bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// RedisConfig holds the aid-type catalog cache settings.
// An empty URL disables the cache.
type RedisConfig struct {
	URL      string        `yaml:"url"       env:"REDIS_URL"`
	CacheTTL time.Duration `yaml:"cache_ttl" env:"REDIS_CACHE_TTL" env-default:"10m"`
}

// Enabled reports whether a Redis URL is configured.
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CasesConfig holds case lifecycle settings.
type CasesConfig struct {
	// StrictTransitions restricts status changes to the transition table.
	// Off by default: any status may follow any other.
	StrictTransitions bool `yaml:"strict_transitions" env:"CASES_STRICT_TRANSITIONS" env-default:"false"`
	MaxBatchLink      int  `yaml:"max_batch_link"     env:"CASES_MAX_BATCH_LINK"     env-default:"50"`
	MaxNoteLength     int  `yaml:"max_note_length"    env:"CASES_MAX_NOTE_LENGTH"    env-default:"5000"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}
