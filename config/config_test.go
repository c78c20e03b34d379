package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv(EnvConfigFile, path)

	return path
}

func TestNewClient_AppliesDefaults(t *testing.T) {
	writeConfig(t, "env:\n  env: test\n")

	cfg, err := NewClient()
	require.NoError(t, err)

	assert.Equal(t, "query", cfg.Tenant.Strategy)
	assert.Equal(t, "tenant", cfg.Tenant.QueryParam)
	assert.Equal(t, "X-Subdomain", cfg.Tenant.Header)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.NotEmpty(t, cfg.Storage.Path)
	assert.Equal(t, 3, cfg.Navigation.MaxAttempts)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "demo", cfg.Seed.Tenant)
	assert.Equal(t, "warn", cfg.Env.Log.Level)
}

func TestNewClient_EnvOverridesFile(t *testing.T) {
	writeConfig(t, `
tenant:
  strategy: subdomain
  baseDomain: painel.local
navigation:
  maxAttempts: 2
`)
	t.Setenv("PAINEL_TENANT_BASEDOMAIN", "saude.gov.br")
	t.Setenv("PAINEL_NAVIGATION_MAXATTEMPTS", "5")
	t.Setenv("PAINEL_BACKEND_TIMEOUT", "3s")

	cfg, err := NewClient()
	require.NoError(t, err)

	assert.Equal(t, "subdomain", cfg.Tenant.Strategy)
	assert.Equal(t, "saude.gov.br", cfg.Tenant.BaseDomain)
	assert.Equal(t, 5, cfg.Navigation.MaxAttempts)
	assert.Equal(t, 3*time.Second, cfg.Backend.Timeout)
}

func TestNewClient_LaunchersFromYAML(t *testing.T) {
	writeConfig(t, `
navigation:
  launchers:
    - xdg-open {url}
    - firefox {url}
`)

	cfg, err := NewClient()
	require.NoError(t, err)

	assert.Equal(t, []string{"xdg-open {url}", "firefox {url}"}, cfg.Navigation.Launchers)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "subdomain strategy needs a base domain",
			mutate:  func(c *Config) { c.Tenant.Strategy = "subdomain" },
			wantErr: "tenant.baseDomain",
		},
		{
			name:    "unknown strategy",
			mutate:  func(c *Config) { c.Tenant.Strategy = "cookie" },
			wantErr: "unknown tenant.strategy",
		},
		{
			name:    "redis driver needs an address",
			mutate:  func(c *Config) { c.Storage.Driver = "redis" },
			wantErr: "storage.redis.addr",
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Storage.Driver = "sqlite" },
			wantErr: "unknown storage.driver",
		},
		{
			name:    "attempts must be positive",
			mutate:  func(c *Config) { c.Navigation.MaxAttempts = -1 },
			wantErr: "maxAttempts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadWithEnv_RequiredFileMissing(t *testing.T) {
	t.Setenv(EnvConfigFile, "")

	_, err := LoadWithEnv[Config]("does-not-exist", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
