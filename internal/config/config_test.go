package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func parse(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	var (
		cfg Config
		err error
	)
	app := &cli.App{
		Flags: Flags(),
		Action: func(c *cli.Context) error {
			cfg, err = FromContext(c)
			return nil
		},
	}
	require.NoError(t, app.Run(append([]string{"auction"}, args...)))
	return cfg, err
}

func TestFromContext_Defaults(t *testing.T) {
	cfg, err := parse(t)
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr())
	require.Equal(t, 3, cfg.LinkRetryAttempts)
	require.Equal(t, time.Minute, cfg.ReconcileInterval)
	require.Empty(t, cfg.MongoURI)
	require.False(t, cfg.MailEnabled())
}

func TestFromContext_EnvAndFlags(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAILGUN_DOMAIN", "mg.example.com")
	t.Setenv("MAILGUN_API_KEY", "key")
	t.Setenv("RECONCILE_INTERVAL", "15s")

	cfg, err := parse(t, "--link_retry_attempts", "5")
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.True(t, cfg.MailEnabled())
	require.Equal(t, 15*time.Second, cfg.ReconcileInterval)
	require.Equal(t, 5, cfg.LinkRetryAttempts)
}

func TestValidate(t *testing.T) {
	valid := Config{Port: "8080", LinkRetryAttempts: 1, ReconcileInterval: time.Second, FanoutQueueSize: 1, EmailConcurrency: 1, SubscriberBuffer: 1}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "no_port", mutate: func(c *Config) { c.Port = "" }},
		{name: "no_link_attempts", mutate: func(c *Config) { c.LinkRetryAttempts = 0 }},
		{name: "zero_interval", mutate: func(c *Config) { c.ReconcileInterval = 0 }},
		{name: "zero_queue", mutate: func(c *Config) { c.FanoutQueueSize = 0 }},
		{name: "mongo_without_db", mutate: func(c *Config) { c.MongoURI = "mongodb://localhost"; c.MongoDB = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := valid
			tc.mutate(&c)
			require.Error(t, c.Validate())
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("AUCTION_TEST_FROM_DOTENV=loaded\n"), 0o600))
	t.Setenv("AUCTION_TEST_FROM_DOTENV", "")
	require.NoError(t, os.Unsetenv("AUCTION_TEST_FROM_DOTENV"))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))
	require.Equal(t, "loaded", os.Getenv("AUCTION_TEST_FROM_DOTENV"))
}
