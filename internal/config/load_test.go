package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.conf")

	loaded, err := Load(path)
	require.NoError(t, err)
	require.False(t, loaded.Exists)
	require.Equal(t, Default(), loaded.Config)
	require.Len(t, loaded.Warnings, 1)
	require.Contains(t, loaded.Warnings[0].Message, "using defaults")
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.conf")
	require.NoError(t, os.WriteFile(path, []byte(`{"telemetry": {"enable": false}}`), 0o600))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.True(t, loaded.Exists)
	require.Equal(t, path, loaded.Path)
	require.False(t, loaded.Config.Telemetry.Enable)
}

func TestLoadParseFailureNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.conf")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), path)
}

func TestResolvePathPrecedence(t *testing.T) {
	got, err := ResolvePath("/explicit/config.conf")
	require.NoError(t, err)
	require.Equal(t, "/explicit/config.conf", got)

	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	got, err = ResolvePath("")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/xdg", "voiceime", "config.conf"), got)
}
