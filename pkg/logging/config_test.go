package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/jettonmap/pkg/errors"
	"github.com/agentstation/jettonmap/pkg/logging"
)

func TestOpen(t *testing.T) {
	t.Run("writes json lines to a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "jettonmap.log")
		sink, err := logging.Open(logging.Config{Level: "debug", Format: "json", Output: path})
		require.NoError(t, err)

		sink.Logger.Debug().Str("file", "jettons/a.yaml").Msg("Validating jetton")
		require.NoError(t, sink.Close())
		require.NoError(t, sink.Close(), "second close is a no-op")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"message":"Validating jetton"`)
		assert.Contains(t, string(content), `"file":"jettons/a.yaml"`)
	})

	t.Run("appends to an existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "jettonmap.log")
		require.NoError(t, os.WriteFile(path, []byte("earlier\n"), 0o644))

		sink, err := logging.Open(logging.Config{Format: "json", Output: path})
		require.NoError(t, err)
		sink.Logger.Info().Msg("later")
		require.NoError(t, sink.Close())

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "earlier\n")
		assert.Contains(t, string(content), "later")
	})

	t.Run("filters below level", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "jettonmap.log")
		sink, err := logging.Open(logging.Config{Level: "warn", Format: "json", Output: path})
		require.NoError(t, err)
		defer sink.Close()

		sink.Logger.Info().Msg("info message")
		sink.Logger.Warn().Msg("warn message")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(content), "info message")
		assert.Contains(t, string(content), "warn message")
	})

	t.Run("unopenable output is a config error", func(t *testing.T) {
		dir := t.TempDir()
		sink, err := logging.Open(logging.Config{Output: dir})
		assert.Nil(t, sink)

		var cfgErr *errors.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "log_output", cfgErr.Component)
		assert.Contains(t, err.Error(), dir)
	})

	t.Run("standard streams need no closing", func(t *testing.T) {
		for _, output := range []string{"", "stdout", "stderr", "discard"} {
			sink, err := logging.Open(logging.Config{Output: output})
			require.NoError(t, err, output)
			assert.Equal(t, zerolog.InfoLevel, sink.Logger.GetLevel())
			assert.NoError(t, sink.Close())
		}
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		want  zerolog.Level
		known bool
	}{
		{"", zerolog.InfoLevel, true},
		{"trace", zerolog.TraceLevel, true},
		{"DEBUG", zerolog.DebugLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"error", zerolog.ErrorLevel, true},
		{"off", zerolog.Disabled, true},
		{"loud", zerolog.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, known := logging.ParseLevel(tt.name)
			assert.Equal(t, tt.want, level)
			assert.Equal(t, tt.known, known)
		})
	}
}
