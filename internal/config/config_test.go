package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfigFromEnv(map[string]string{
		"WHIRL_HOST_KEY_FILE": "/etc/whirl/host_key",
	})
	require.NoError(t, err)

	assert.Equal(t, ":2222", config.BindAddr)
	assert.Equal(t, "/etc/whirl/host_key", config.HostKeyFile)
	assert.Empty(t, config.AuthorizedKeysFile)
	assert.Equal(t, 80*time.Millisecond, config.Interval)
	assert.Equal(t, 3*time.Second, config.DemoDuration)
	assert.Equal(t, "wcwidth", config.Algorithm)
	assert.Equal(t, time.Minute, config.IdleTimeout)
	assert.Equal(t, 10*time.Minute, config.MaxTimeout)
}

func TestLoadConfigOverrides(t *testing.T) {
	config, err := LoadConfigFromEnv(map[string]string{
		"WHIRL_HOST_KEY_FILE":        "key",
		"WHIRL_BIND_ADDR":            "127.0.0.1:22",
		"WHIRL_AUTHORIZED_KEYS_FILE": "authorized_keys",
		"WHIRL_INTERVAL":             "120ms",
		"WHIRL_ALGORITHM":            "uniseg",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:22", config.BindAddr)
	assert.Equal(t, "authorized_keys", config.AuthorizedKeysFile)
	assert.Equal(t, 120*time.Millisecond, config.Interval)
	assert.Equal(t, "uniseg", config.Algorithm)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfigFromEnv(map[string]string{})
	require.Error(t, err)

	_, err = LoadConfigFromEnv(map[string]string{
		"WHIRL_HOST_KEY_FILE": "key",
		"WHIRL_INTERVAL":      "0s",
	})
	require.Error(t, err)

	_, err = LoadConfigFromEnv(map[string]string{
		"WHIRL_HOST_KEY_FILE": "key",
		"WHIRL_INTERVAL":      "fast",
	})
	require.Error(t, err)
}
