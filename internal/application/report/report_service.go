// Package report renders batches of resistor readings for output sinks.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alphonsa-01/resistors/internal/domain/resistor"
	"github.com/alphonsa-01/resistors/internal/domain/shared/random"
	"github.com/alphonsa-01/resistors/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("report: unknown output format")

// Format is a report output format.
type Format string

const (
	// FormatText is the five-lines-per-resistor plain text report.
	FormatText Format = "text"
	// FormatJSON is an indented JSON document for the whole batch.
	FormatJSON Format = "json"
	// FormatYAML is a YAML document for the whole batch.
	FormatYAML Format = "yaml"
)

// SupportedFormats returns all formats accepted by ParseFormat.
func SupportedFormats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML}
}

// ParseFormat converts a configuration value to a Format. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, supported := range SupportedFormats() {
		if f == supported {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// BatchResponse is the structured form of a rendered batch.
type BatchResponse struct {
	RunID       string            `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time         `json:"generated_at" yaml:"generated_at"`
	Count       int               `json:"count" yaml:"count"`
	Readings    []ReadingResponse `json:"readings" yaml:"readings"`
}

// ReadingResponse describes one sampled resistor.
type ReadingResponse struct {
	NominalResistance float64        `json:"nominal_resistance" yaml:"nominal_resistance"`
	Multiplier        float64        `json:"multiplier" yaml:"multiplier"`
	Tolerance         float64        `json:"tolerance" yaml:"tolerance"`
	ActualResistance  string         `json:"actual_resistance" yaml:"actual_resistance"`
	Unit              string         `json:"unit" yaml:"unit"`
	Bands             resistor.Bands `json:"bands" yaml:"bands"`
}

// ReportService samples resistors and writes them in a configured format
type ReportService struct {
	source random.Source
	format Format
	logger *zap.Logger
	now    func() time.Time
}

// NewReportService creates a new ReportService. A nil source uses the
// process-wide default and a nil logger discards log output.
func NewReportService(source random.Source, format Format, log *zap.Logger) (*ReportService, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	if source == nil {
		source = random.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ReportService{
		source: source,
		format: format,
		logger: logger.Named(log, "report"),
		now:    time.Now,
	}, nil
}

// Format returns the output format of the service
func (s *ReportService) Format() Format {
	return s.format
}

// Render samples every resistor once and writes the batch to w.
// Sampling stops early if ctx is cancelled.
func (s *ReportService) Render(ctx context.Context, w io.Writer, resistors []resistor.Resistor) (*BatchResponse, error) {
	runID := uuid.NewString()
	ctx, _ = logger.WithRunID(ctx, s.logger, runID)
	log := logger.FromContext(ctx)

	readings := make([]resistor.Reading, 0, len(resistors))
	for i, r := range resistors {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("render cancelled after %d of %d resistors: %w", i, len(resistors), err)
		}
		rd := r.ReadFrom(s.source)
		log.Debug("sampled resistor",
			zap.Int("index", i),
			zap.Float64("nominal_resistance", r.NominalResistance()),
			zap.Float64("multiplier", r.Multiplier()),
			zap.Float64("tolerance", r.Tolerance()),
			zap.Float64("actual_resistance", rd.ActualResistance),
		)
		readings = append(readings, rd)
	}

	batch := newBatchResponse(runID, s.now(), readings)
	if err := s.write(w, readings, batch); err != nil {
		log.Error("failed to write report", zap.String("format", string(s.format)), zap.Error(err))
		return nil, err
	}

	log.Info("report rendered",
		zap.String("format", string(s.format)),
		zap.Int("count", batch.Count),
	)
	return batch, nil
}

func (s *ReportService) write(w io.Writer, readings []resistor.Reading, batch *BatchResponse) error {
	switch s.format {
	case FormatText:
		for _, rd := range readings {
			if err := rd.WriteText(w); err != nil {
				return fmt.Errorf("write text report: %w", err)
			}
		}
		return nil

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(batch); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(batch); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, s.format)
	}
}

func newBatchResponse(runID string, at time.Time, readings []resistor.Reading) *BatchResponse {
	batch := &BatchResponse{
		RunID:       runID,
		GeneratedAt: at.UTC(),
		Count:       len(readings),
		Readings:    make([]ReadingResponse, 0, len(readings)),
	}
	for _, rd := range readings {
		batch.Readings = append(batch.Readings, ReadingResponse{
			NominalResistance: rd.Resistor.NominalResistance(),
			Multiplier:        rd.Resistor.Multiplier(),
			Tolerance:         rd.Resistor.Tolerance(),
			ActualResistance:  rd.FormattedResistance(),
			Unit:              resistor.ResistanceUnit,
			Bands:             rd.Bands,
		})
	}
	return batch
}
