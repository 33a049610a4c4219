package doctor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openkbd/voiceime/internal/config"
)

func loadedConfig(t *testing.T) config.Loaded {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	return config.Loaded{Path: "/tmp/config.conf", Config: config.Default()}
}

func TestRunAllChecksPass(t *testing.T) {
	report := Run(loadedConfig(t))
	require.True(t, report.OK())
	require.Len(t, report.Checks, 3)
	require.Contains(t, report.String(), "[OK] config")
	require.Contains(t, report.String(), "locale.supported")
	require.Contains(t, report.String(), "consent.store")
}

func TestRunFailsOnEmptyLocaleList(t *testing.T) {
	loaded := loadedConfig(t)
	loaded.Config.Locale.Supported = nil

	report := Run(loaded)
	require.False(t, report.OK())
	require.Contains(t, report.String(), "[FAIL] locale.supported")
}

func TestRunFailsOnCorruptConsentRecord(t *testing.T) {
	loaded := loadedConfig(t)
	path := filepath.Join(t.TempDir(), "consent.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{broken: ["), 0o600))
	loaded.Config.Consent.Path = path

	report := Run(loaded)
	require.False(t, report.OK())
	require.Contains(t, report.String(), "[FAIL] consent.store")
}

func TestRunReportsGrantedConsent(t *testing.T) {
	loaded := loadedConfig(t)
	path := filepath.Join(t.TempDir(), "consent.yaml")
	require.NoError(t, os.WriteFile(path, []byte("has_used_voice_input: true\n"), 0o600))
	loaded.Config.Consent.Path = path

	report := Run(loaded)
	require.True(t, report.OK())
	require.Contains(t, report.String(), "consent granted")
}
