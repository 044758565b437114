package logger

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidConfig is returned when the logger configuration cannot be applied.
var ErrInvalidConfig = errors.New("logger: invalid configuration")

// Config holds logger configuration
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // json, console
	Output     string // stderr, stdout, or file path
	TimeFormat string // Go time layout
}

// DefaultConfig returns a configuration suitable for development.
// Logs go to stderr so that stdout only carries reports.
func DefaultConfig() *Config {
	return &Config{
		Level:      "info",
		Format:     "console",
		Output:     "stderr",
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}
}

// ProductionConfig returns a configuration suitable for production
func ProductionConfig() *Config {
	return &Config{
		Level:      "info",
		Format:     "json",
		Output:     "stderr",
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}
}

// New creates a zap logger writing to the configured output. The returned
// function closes the output and must be called once the logger is no longer
// used; it is a no-op for stdout and stderr.
func New(cfg *Config) (*zap.Logger, func(), error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	writer, closeOutput, err := openOutput(cfg.Output)
	if err != nil {
		return nil, nil, err
	}
	logger, err := build(cfg, writer)
	if err != nil {
		closeOutput()
		return nil, nil, err
	}
	return logger, closeOutput, nil
}

// NewWithWriter creates a zap logger writing to w, ignoring cfg.Output
func NewWithWriter(cfg *Config, w io.Writer) (*zap.Logger, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if w == nil {
		return nil, fmt.Errorf("%w: writer is nil", ErrInvalidConfig)
	}
	return build(cfg, zapcore.AddSync(w))
}

// NewForEnvironment creates a logger appropriate for the given environment
func NewForEnvironment(env string) (*zap.Logger, func(), error) {
	if strings.EqualFold(env, "production") {
		return New(ProductionConfig())
	}
	return New(DefaultConfig())
}

func build(cfg *Config, writer zapcore.WriteSyncer) (*zap.Logger, error) {
	encoder, err := createEncoder(cfg)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(encoder, writer, parseLevel(cfg.Level))
	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	), nil
}

// parseLevel converts a string level to zapcore.Level
func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// createEncoder creates the encoder for cfg.Format. An empty format means console.
func createEncoder(cfg *Config) (zapcore.Encoder, error) {
	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = DefaultConfig().TimeFormat
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeFormat),
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	switch strings.ToLower(cfg.Format) {
	case "", "console":
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(encoderConfig), nil
	case "json":
		return zapcore.NewJSONEncoder(encoderConfig), nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, cfg.Format)
	}
}

// openOutput resolves stdout, stderr or a file path opened for appending
func openOutput(output string) (zapcore.WriteSyncer, func(), error) {
	switch strings.ToLower(output) {
	case "", "stderr":
		output = "stderr"
	case "stdout":
		output = "stdout"
	}
	writer, closeOutput, err := zap.Open(output)
	if err != nil {
		return nil, nil, fmt.Errorf("open log output %s: %w", output, err)
	}
	return writer, closeOutput, nil
}

// With creates a child logger with the given fields
func With(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	return logger.With(fields...)
}

// Named creates a named logger
func Named(logger *zap.Logger, name string) *zap.Logger {
	return logger.Named(name)
}

// Sync flushes any buffered log entries
func Sync(logger *zap.Logger) error {
	return logger.Sync()
}
