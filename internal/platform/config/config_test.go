package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fridayblessings411-cell/AgroTour/pkg/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	d := DefaultConfig()
	assert.Equal(t, d.Server, cfg.Server)
	assert.Equal(t, d.Registry, cfg.Registry)
	assert.Equal(t, d.Redis, cfg.Redis)
	assert.Equal(t, d.Audit, cfg.Audit)
	assert.Equal(t, d.Log, cfg.Log)
	assert.Equal(t, d.Tracing, cfg.Tracing)
	assert.Equal(t, d.Kafka.Topic, cfg.Kafka.Topic)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Empty(t, cfg.Authority.Verified)
	assert.Empty(t, cfg.Postgres.URL)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
  admin_token: from-file
registry:
  max_farms: 3
  registration_fee: 250
authority:
  verified: ["ST1AUTH"]
  cache_ttl: 1m
ledger:
  balances: ["ST1OWNER=5000"]
`)
	t.Setenv("AGROTOUR_SERVER_ADMIN_TOKEN", "from-env")
	t.Setenv("AGROTOUR_KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "from-env", cfg.Server.AdminToken, "env overrides file")
	assert.Equal(t, uint64(3), cfg.Registry.MaxFarms)
	assert.Equal(t, uint64(250), cfg.Registry.RegistrationFee)
	assert.Equal(t, time.Minute, cfg.Authority.CacheTTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)

	seed, err := cfg.Ledger.Seed()
	require.NoError(t, err)
	assert.Equal(t, map[domain.Principal]uint64{"ST1OWNER": 5000}, seed)

	authorities, err := cfg.Authority.Principals()
	require.NoError(t, err)
	assert.Equal(t, []domain.Principal{"ST1AUTH"}, authorities)
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, "server.addr is required"},
		{"postgres sink without url", func(c *Config) { c.Audit.Sink = AuditSinkPostgres }, "requires postgres.url"},
		{"kafka sink without brokers", func(c *Config) { c.Audit.Sink = AuditSinkKafka }, "requires kafka.brokers"},
		{"unknown sink", func(c *Config) { c.Audit.Sink = "s3" }, "unknown audit.sink"},
		{"unknown tracing exporter", func(c *Config) { c.Tracing.Exporter = "jaeger" }, "unknown tracing.exporter"},
		{"malformed balance", func(c *Config) { c.Ledger.Balances = []string{"ST1OWNER"} }, "expected principal=amount"},
		{"bad balance amount", func(c *Config) { c.Ledger.Balances = []string{"ST1OWNER=-5"} }, "ledger.balances"},
		{"bad authority", func(c *Config) { c.Authority.Verified = []string{"not valid"} }, "authority.verified"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
