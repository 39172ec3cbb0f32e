package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/jettonmap/pkg/constants"
	"github.com/agentstation/jettonmap/pkg/errors"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultJettonsDir, config.JettonsDir)
	assert.Equal(t, constants.DefaultExtension, config.Extension)
	assert.Equal(t, constants.DefaultOutputFile, config.OutputFile)
	assert.Equal(t, constants.DefaultTonCenterURL, config.TonCenterURL)
	assert.Equal(t, constants.DefaultRequestTimeout, config.RequestTimeout)
	assert.True(t, config.Strict)
	assert.Equal(t, "merge", config.AggregateMode)
	assert.Equal(t, "stdout", config.LogOutput)
}

func TestLoadConfig_Environment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("OUTPUT_FILE", "catalog.json")
	t.Setenv("TONCENTER_API_KEY", "secret")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("STRICT", "false")

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "catalog.json", config.OutputFile)
	assert.Equal(t, "secret", config.TonCenterAPIKey)
	assert.Equal(t, 3*time.Second, config.RequestTimeout)
	assert.False(t, config.Strict)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("IPFS_GATEWAY", "")
	require.NoError(t, os.Unsetenv("IPFS_GATEWAY"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("IPFS_GATEWAY=https://gw.example/ipfs/\n"), 0o644))

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "https://gw.example/ipfs/", config.IPFSGateway)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "custom.yaml")
	content := "jettons_dir: registry\naggregate_mode: replace\ntoncenter_url: https://testnet.toncenter.com/api/v2/\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "registry", config.JettonsDir)
	assert.Equal(t, "replace", config.AggregateMode)
	assert.Equal(t, "https://testnet.toncenter.com/api/v2", config.TonCenterURL)
	assert.Equal(t, path, config.ConfigFile)
}

func TestLoadConfig_DiscoversFileInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".jettonmap.yaml"), []byte("extension: .yml\n"), 0o644))

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ".yml", config.Extension)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		chdir(t, t.TempDir())
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		var cfgErr *errors.ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	})

	t.Run("unknown aggregate mode", func(t *testing.T) {
		chdir(t, t.TempDir())
		t.Setenv("AGGREGATE_MODE", "append")
		_, err := LoadConfig("")
		assert.Error(t, err)
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		chdir(t, t.TempDir())
		t.Setenv("REQUEST_TIMEOUT", "0s")
		_, err := LoadConfig("")
		assert.Error(t, err)
	})
}

func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{Format: "table", LogLevel: "info"}

	config.UpdateFromFlags(true, false, true, "", "")
	assert.True(t, config.Verbose)
	assert.True(t, config.NoColor)
	assert.Equal(t, "table", config.Format)
	assert.Equal(t, "info", config.LogLevel)

	config.UpdateFromFlags(false, false, false, "json", "debug")
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "debug", config.LogLevel)
}

// chdir stands in for testing.T.Chdir (Go 1.24+): it changes the working
// directory for the duration of the test and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
