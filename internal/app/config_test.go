package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/snooze/internal/session"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(NewViper())
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Zero(t, cfg.Client.Timeout, "no timeout by default")
	assert.True(t, cfg.Client.FollowRedirects)
	assert.Equal(t, session.OverlapIgnore, cfg.Overlap)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("SNOOZE_DEBUG", "true")
	t.Setenv("SNOOZE_REQUEST_TIMEOUT", "5s")
	t.Setenv("SNOOZE_REQUEST_OVERLAP", "supersede")
	t.Setenv("SNOOZE_UI_URL", "http://localhost:8080")

	cfg, err := LoadConfig(NewViper())
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 5*time.Second, cfg.Client.Timeout)
	assert.Equal(t, session.OverlapSupersede, cfg.Overlap)
	assert.Equal(t, "http://localhost:8080", cfg.InitialURL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{"unknown overlap", KeyOverlap, "queue"},
		{"negative timeout", KeyRequestTimeout, "-1s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViper()
			v.Set(tt.key, tt.val)
			_, err := LoadConfig(v)
			assert.Error(t, err)
		})
	}
}

func TestReadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snooze.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
request:
  timeout: 2s
  insecure: true
  follow_redirects: false
ui:
  tick_interval: 50ms
`), 0644))

	t.Run("explicit path", func(t *testing.T) {
		v := NewViper()
		require.NoError(t, ReadConfigFile(v, path))
		cfg, err := LoadConfig(v)
		require.NoError(t, err)

		assert.Equal(t, 2*time.Second, cfg.Client.Timeout)
		assert.True(t, cfg.Client.InsecureSkipVerify)
		assert.False(t, cfg.Client.FollowRedirects)
		assert.Equal(t, 50*time.Millisecond, cfg.TickInterval)
	})

	t.Run("search dirs", func(t *testing.T) {
		v := NewViper()
		require.NoError(t, ReadConfigFile(v, "", dir))
		assert.Equal(t, 2*time.Second, v.GetDuration(KeyRequestTimeout))
	})

	t.Run("missing in search dirs is fine", func(t *testing.T) {
		require.NoError(t, ReadConfigFile(NewViper(), "", t.TempDir()))
	})

	t.Run("missing explicit path fails", func(t *testing.T) {
		assert.Error(t, ReadConfigFile(NewViper(), filepath.Join(dir, "nope.yaml")))
	})
}
