package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "console", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
	assert.NotEmpty(t, cfg.TimeFormat)
}

func TestProductionConfig(t *testing.T) {
	cfg := ProductionConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
	assert.NotEmpty(t, cfg.TimeFormat)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{name: "default config", cfg: DefaultConfig()},
		{name: "production config", cfg: ProductionConfig()},
		{
			name: "stdout output",
			cfg:  &Config{Level: "debug", Format: "console", Output: "stdout"},
		},
		{
			name: "output names are case-insensitive",
			cfg:  &Config{Level: "info", Format: "json", Output: "STDERR"},
		},
		{
			name: "empty format falls back to console",
			cfg:  &Config{Level: "info", Output: "stderr"},
		},
		{
			name:    "unknown format",
			cfg:     &Config{Level: "info", Format: "xml", Output: "stderr"},
			wantErr: true,
		},
		{
			name:    "unwritable file",
			cfg:     &Config{Level: "info", Format: "json", Output: filepath.Join(t.TempDir(), "missing", "app.log")},
			wantErr: true,
		},
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, closeOutput, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, logger)
				assert.Nil(t, closeOutput)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, logger)
			require.NotNil(t, closeOutput)
			closeOutput()
		})
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resistors.log")

	logger, closeOutput, err := New(&Config{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	logger.Info("written to file", zap.Int("count", 3))
	require.NoError(t, logger.Sync())
	closeOutput()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")

	// the file handle is released
	assert.Error(t, logger.Sync())
}

func TestNew_InvalidFormatWithFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resistors.log")

	_, _, err := New(&Config{Level: "info", Format: "xml", Output: path})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.FileExists(t, path)
}

func TestNewWithWriter(t *testing.T) {
	t.Run("json output is structured", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewWithWriter(&Config{Level: "info", Format: "json"}, &buf)
		require.NoError(t, err)

		logger.Info("test message", zap.String("key", "value"))

		var output map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
		assert.Equal(t, "test message", output["msg"])
		assert.Equal(t, "info", output["level"])
		assert.Equal(t, "value", output["key"])
	})

	t.Run("level filters messages", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewWithWriter(&Config{Level: "warn", Format: "console"}, &buf)
		require.NoError(t, err)

		logger.Info("info message")
		assert.False(t, strings.Contains(buf.String(), "info message"))

		logger.Warn("warn message")
		assert.True(t, strings.Contains(buf.String(), "warn message"))
	})

	t.Run("nil writer", func(t *testing.T) {
		_, err := NewWithWriter(DefaultConfig(), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestNewForEnvironment(t *testing.T) {
	for _, env := range []string{"development", "production", "staging"} {
		t.Run(env, func(t *testing.T) {
			logger, closeOutput, err := NewForEnvironment(env)

			require.NoError(t, err)
			assert.NotNil(t, logger)
			closeOutput()
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"unknown", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}

func TestWithAndNamed(t *testing.T) {
	var buf bytes.Buffer
	base, err := NewWithWriter(&Config{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	Named(With(base, zap.String("key", "value")), "report").Info("tagged")

	var output map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Equal(t, "value", output["key"])
	assert.Equal(t, "report", output["logger"])
}

func TestContextHelpers(t *testing.T) {
	t.Run("round trips the logger", func(t *testing.T) {
		logger := zap.NewExample()
		ctx := WithContext(context.Background(), logger)

		assert.Same(t, logger, FromContext(ctx))
	})

	t.Run("missing logger yields no-op", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})

	t.Run("run id is attached to context and logger", func(t *testing.T) {
		var buf bytes.Buffer
		base, err := NewWithWriter(&Config{Level: "info", Format: "json"}, &buf)
		require.NoError(t, err)

		ctx, logger := WithRunID(context.Background(), base, "run-123")
		assert.Same(t, logger, FromContext(ctx))

		FromContext(ctx).Info("rendered")
		assert.Contains(t, buf.String(), `"run_id":"run-123"`)
	})
}
