// Package config loads service configuration with viper: defaults, then an
// optional config.yaml, then AGROTOUR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/fridayblessings411-cell/AgroTour/pkg/domain"
)

const envPrefix = "AGROTOUR"

// Audit sinks.
const (
	AuditSinkMemory   = "memory"
	AuditSinkPostgres = "postgres"
	AuditSinkKafka    = "kafka"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Registry  RegistryConfig  `mapstructure:"registry"`
	Postgres  PostgresConfig  `mapstructure:"postgres"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Authority AuthorityConfig `mapstructure:"authority"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Ledger    LedgerConfig    `mapstructure:"ledger"`
	Audit     AuditConfig     `mapstructure:"audit"`
	Log       LogConfig       `mapstructure:"log"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
}

// ServerConfig captures HTTP server level configuration.
type ServerConfig struct {
	Addr              string        `mapstructure:"addr"`
	AdminToken        string        `mapstructure:"admin_token"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

// RegistryConfig holds deployment-time registry limits.
type RegistryConfig struct {
	MaxFarms        uint64 `mapstructure:"max_farms"`
	RegistrationFee uint64 `mapstructure:"registration_fee"`
}

// PostgresConfig selects the Postgres stores when URL is set.
type PostgresConfig struct {
	URL          string `mapstructure:"url"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// RedisConfig selects the Redis authority oracle when URL is set.
type RedisConfig struct {
	URL          string        `mapstructure:"url"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// AuthorityConfig configures the verified-authority oracle.
type AuthorityConfig struct {
	// Verified seeds the allowlist. With Redis configured it also serves as
	// the fallback set while Redis is unreachable.
	Verified         []string      `mapstructure:"verified"`
	CacheTTL         time.Duration `mapstructure:"cache_ttl"`
	FailureThreshold int           `mapstructure:"failure_threshold"`
}

// KafkaConfig configures the farm event stream.
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

// LedgerConfig seeds the in-process fee ledger. Entries are "principal=amount".
type LedgerConfig struct {
	Balances []string `mapstructure:"balances"`
}

type AuditConfig struct {
	Sink       string `mapstructure:"sink"`
	BufferSize int    `mapstructure:"buffer_size"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Tracing exporters.
const (
	TracingExporterNone   = "none"
	TracingExporterStdout = "stdout"
	TracingExporterOTLP   = "otlp"
)

// TracingConfig configures OpenTelemetry spans around registry operations.
// When Enabled is false a no-op tracer is installed.
type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	Exporter     string  `mapstructure:"exporter"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	SampleRate   float64 `mapstructure:"sample_rate"`
	ServiceName  string  `mapstructure:"service_name"`
}

// DefaultConfig returns usable development values.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Registry: RegistryConfig{
			MaxFarms:        1000,
			RegistrationFee: 1000,
		},
		Postgres: PostgresConfig{MaxOpenConns: 10},
		Redis: RedisConfig{
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Authority: AuthorityConfig{
			CacheTTL:         30 * time.Second,
			FailureThreshold: 5,
		},
		Kafka:   KafkaConfig{Topic: "agrotour.farm-events"},
		Audit:   AuditConfig{Sink: AuditSinkMemory, BufferSize: 256},
		Log:     LogConfig{Level: "info", Format: "json"},
		Ledger:  LedgerConfig{},
		Tracing: TracingConfig{Exporter: TracingExporterStdout, OTLPEndpoint: "localhost:4317", SampleRate: 1.0, ServiceName: "agrotour-registry"},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.admin_token", d.Server.AdminToken)
	v.SetDefault("server.read_header_timeout", d.Server.ReadHeaderTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("registry.max_farms", d.Registry.MaxFarms)
	v.SetDefault("registry.registration_fee", d.Registry.RegistrationFee)
	v.SetDefault("postgres.url", d.Postgres.URL)
	v.SetDefault("postgres.max_open_conns", d.Postgres.MaxOpenConns)
	v.SetDefault("redis.url", d.Redis.URL)
	v.SetDefault("redis.pool_size", d.Redis.PoolSize)
	v.SetDefault("redis.min_idle_conns", d.Redis.MinIdleConns)
	v.SetDefault("redis.dial_timeout", d.Redis.DialTimeout)
	v.SetDefault("redis.read_timeout", d.Redis.ReadTimeout)
	v.SetDefault("redis.write_timeout", d.Redis.WriteTimeout)
	v.SetDefault("authority.verified", []string{})
	v.SetDefault("authority.cache_ttl", d.Authority.CacheTTL)
	v.SetDefault("authority.failure_threshold", d.Authority.FailureThreshold)
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", d.Kafka.Topic)
	v.SetDefault("ledger.balances", []string{})
	v.SetDefault("audit.sink", d.Audit.Sink)
	v.SetDefault("audit.buffer_size", d.Audit.BufferSize)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
}

// Load reads configuration. An explicit path must exist; without one,
// config.yaml is searched for in . and ./config and may be absent.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field requirements.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	switch c.Audit.Sink {
	case AuditSinkMemory:
	case AuditSinkPostgres:
		if c.Postgres.URL == "" {
			return errors.New("audit.sink=postgres requires postgres.url")
		}
	case AuditSinkKafka:
		if len(c.Kafka.Brokers) == 0 {
			return errors.New("audit.sink=kafka requires kafka.brokers")
		}
	default:
		return fmt.Errorf("unknown audit.sink %q", c.Audit.Sink)
	}
	switch c.Tracing.Exporter {
	case TracingExporterNone, TracingExporterStdout, TracingExporterOTLP:
	default:
		return fmt.Errorf("unknown tracing.exporter %q", c.Tracing.Exporter)
	}
	if _, err := c.Ledger.Seed(); err != nil {
		return err
	}
	if _, err := c.Authority.Principals(); err != nil {
		return err
	}
	return nil
}

// Seed parses the configured opening balances.
func (l LedgerConfig) Seed() (map[domain.Principal]uint64, error) {
	out := make(map[domain.Principal]uint64, len(l.Balances))
	for _, entry := range l.Balances {
		who, amount, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("ledger.balances entry %q: expected principal=amount", entry)
		}
		p, err := domain.ParsePrincipal(who)
		if err != nil {
			return nil, fmt.Errorf("ledger.balances entry %q: %w", entry, err)
		}
		n, err := strconv.ParseUint(strings.TrimSpace(amount), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ledger.balances entry %q: %w", entry, err)
		}
		out[p] += n
	}
	return out, nil
}

// Principals parses the verified authority seed list.
func (a AuthorityConfig) Principals() ([]domain.Principal, error) {
	out := make([]domain.Principal, 0, len(a.Verified))
	for _, raw := range a.Verified {
		p, err := domain.ParsePrincipal(raw)
		if err != nil {
			return nil, fmt.Errorf("authority.verified entry %q: %w", raw, err)
		}
		out = append(out, p)
	}
	return out, nil
}
