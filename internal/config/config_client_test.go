package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := getClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultClientServerURL, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultClientRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.False(t, cfg.App.CopyToken)
}

func TestGetClientConfig_EnvAndFlags(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("CLIENT_SERVER_URL", "http://env:3000")
	t.Setenv("CLIENT_REQUEST_TIMEOUT", "3s")

	cfg, err := getClientConfig([]string{"-s", "http://flag:3000", "-copy-token"})
	require.NoError(t, err)

	assert.Equal(t, "http://flag:3000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.True(t, cfg.App.CopyToken)
}

func TestGetClientConfig_NegativeTimeout(t *testing.T) {
	clearEnvVars(t)

	_, err := getClientConfig([]string{"-t", "-1s"})
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}
