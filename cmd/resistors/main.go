// Package main prints the color-band report of the demonstration resistor catalog.
//
// The command takes no arguments and always exits 0. Output format, logging and
// the random seed are read from config.toml and RESISTORS_* environment variables.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alphonsa-01/resistors/internal/application/report"
	"github.com/alphonsa-01/resistors/internal/domain/resistor"
	"github.com/alphonsa-01/resistors/internal/domain/shared/random"
	"github.com/alphonsa-01/resistors/internal/infrastructure/config"
	"github.com/alphonsa-01/resistors/internal/infrastructure/logger"
	"go.uber.org/zap"
)

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "resistors: %v\n", err)
	}
}

func run(ctx context.Context, stdout, stderr io.Writer) error {
	// Invalid settings fall back to their defaults one by one
	cfg, err := config.LoadWithFallback()
	if err != nil {
		fmt.Fprintf(stderr, "resistors: invalid configuration, affected settings use defaults: %v\n", err)
	}

	log, closeLog, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "resistors: %v, using %s logger defaults\n", err, cfg.App.Env)
		log, closeLog, err = logger.NewForEnvironment(cfg.App.Env)
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
	}
	defer func() {
		_ = logger.Sync(log)
		closeLog()
	}()
	log = logger.With(log, zap.String("app", cfg.App.Name), zap.String("env", cfg.App.Env))

	// Seed the process-wide source once, before any sampling
	src := random.Seeded(cfg.Random.Seed)

	log.Info("Starting resistor report",
		zap.Uint64("seed", src.Seed()),
		zap.String("format", cfg.Report.Format),
	)

	format, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		return err
	}
	svc, err := report.NewReportService(src, format, log)
	if err != nil {
		return err
	}

	if _, err := svc.Render(ctx, stdout, resistor.DemoCatalog()); err != nil {
		log.Error("Failed to render report", zap.Error(err))
		return err
	}
	return nil
}

// newLogger routes stderr output through the given writer so callers can capture it.
// The returned function releases a file output.
func newLogger(cfg *config.Config, stderr io.Writer) (*zap.Logger, func(), error) {
	logCfg := &logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}
	if strings.EqualFold(cfg.Log.Output, "stderr") {
		log, err := logger.NewWithWriter(logCfg, stderr)
		return log, func() {}, err
	}
	return logger.New(logCfg)
}
