package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	snoozeApp "github.com/shhac/snooze/internal/app"
	"github.com/shhac/snooze/internal/session"
)

func execute(t *testing.T, args ...string) (*snoozeApp.Config, error) {
	t.Helper()
	var got *snoozeApp.Config
	cmd := newRootCmd(func(cfg *snoozeApp.Config) error {
		got = cfg
		return nil
	})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return got, err
}

func TestRootCmd_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := execute(t)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.False(t, cfg.Debug)
	assert.Equal(t, time.Duration(0), cfg.Client.Timeout)
	assert.Equal(t, session.OverlapIgnore, cfg.Overlap)
	assert.Empty(t, cfg.InitialURL)
}

func TestRootCmd_Flags(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := execute(t,
		"--debug",
		"--timeout", "3s",
		"--insecure",
		"--overlap", "supersede",
		"--url", "http://localhost:8080/json",
	)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 3*time.Second, cfg.Client.Timeout)
	assert.True(t, cfg.Client.InsecureSkipVerify)
	assert.Equal(t, session.OverlapSupersede, cfg.Overlap)
	assert.Equal(t, "http://localhost:8080/json", cfg.InitialURL)
}

func TestRootCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("request:\n  timeout: 10s\nui:\n  url: http://example.com\n"), 0o644))

	cfg, err := execute(t, "--config", path, "--url", "http://flag.example")
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.Client.Timeout)
	assert.Equal(t, "http://flag.example", cfg.InitialURL, "flags win over the config file")
}

func TestRootCmd_InvalidOverlap(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := execute(t, "--overlap", "queue")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	_, err := execute(t, "extra")
	assert.Error(t, err)
}
