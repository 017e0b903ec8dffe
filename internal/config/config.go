package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Generator GeneratorConfig `yaml:"generator"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
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
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"5s"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"padagalu"`
}

// GeneratorConfig holds couplet search parameters and request defaults.
type GeneratorConfig struct {
	DefaultTarget  int `yaml:"default_target"  env:"GEN_DEFAULT_TARGET"  env-default:"12"`
	DefaultCount   int `yaml:"default_count"   env:"GEN_DEFAULT_COUNT"   env-default:"5"`
	MaxCount       int `yaml:"max_count"       env:"GEN_MAX_COUNT"       env-default:"20"`
	MaxTarget      int `yaml:"max_target"      env:"GEN_MAX_TARGET"      env-default:"64"`
	BeamWidth      int `yaml:"beam_width"      env:"GEN_BEAM_WIDTH"      env-default:"20"`
	MaxWords       int `yaml:"max_words"       env:"GEN_MAX_WORDS"       env-default:"6"`
	SampleSize     int `yaml:"sample_size"     env:"GEN_SAMPLE_SIZE"     env-default:"80"`
	LineCandidates int `yaml:"line_candidates" env:"GEN_LINE_CANDIDATES" env-default:"20"`
	MinWordWeight  int `yaml:"min_word_weight" env:"GEN_MIN_WORD_WEIGHT" env-default:"1"`
	MaxWordWeight  int `yaml:"max_word_weight" env:"GEN_MAX_WORD_WEIGHT" env-default:"6"`
	MaxWordRunes   int `yaml:"max_word_runes"  env:"GEN_MAX_WORD_RUNES"  env-default:"12"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig limits couplet generation per client.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	GeneratePerMin  int           `yaml:"generate_per_min" env:"RATE_LIMIT_GENERATE_PER_MIN" env-default:"30"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// MetricsConfig controls the OpenTelemetry meter/tracer providers and the
// Prometheus scrape endpoint.
type MetricsConfig struct {
	Enabled     bool   `yaml:"enabled"      env:"METRICS_ENABLED"      env-default:"true"`
	Path        string `yaml:"path"         env:"METRICS_PATH"         env-default:"/metrics"`
	ServiceName string `yaml:"service_name" env:"METRICS_SERVICE_NAME" env-default:"padagalu"`
}
