package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_DefaultsAlone(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.Node.URL)
	assert.Equal(t, 15*time.Second, cfg.Node.RequestTimeout)
	assert.Equal(t, "agwallet.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Workers.BalanceRefreshInterval)
}

func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		Node: Node{URL: "http://node.example:9000"},
	})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "http://node.example:9000", cfg.Node.URL)
	// untouched fields keep their defaults
	assert.Equal(t, 15*time.Second, cfg.Node.RequestTimeout)
}

func TestBuild_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("AGWALLET_NODE_URL", "http://env.example:8000")
	t.Setenv("AGWALLET_STORAGE_DB_DSN", "/tmp/wallet.db")

	cfg, err := newConfigBuilder().withDefaults().withEnv().build()
	require.NoError(t, err)

	assert.Equal(t, "http://env.example:8000", cfg.Node.URL)
	assert.Equal(t, "/tmp/wallet.db", cfg.Storage.DB.DSN)
}

func TestValidate_RejectsEmptyAndNegativeValues(t *testing.T) {
	cfg := defaultConfig()
	cfg.Node.URL = ""
	require.ErrorIs(t, cfg.validate(), ErrMissingConfigValue)

	cfg = defaultConfig()
	cfg.Workers.BalanceRefreshInterval = -time.Second
	require.ErrorIs(t, cfg.validate(), ErrInvalidConfigValue)
}
