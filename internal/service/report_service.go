package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rgdevment/opinion-brief/internal/domain"
)

var ErrUnknownFormat = errors.New("unknown export format")

// reportService is the concrete implementation of the Service interface.
// It is unexported to force usage of the Interface.
type reportService struct {
	exporters map[string]Exporter
}

// NewReportService wires the exporters by format name.
func NewReportService(exporters map[string]Exporter) Service {
	return &reportService{
		exporters: exporters,
	}
}

func (s *reportService) Generate(ctx context.Context, in domain.ReportInput) (*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := Validate(in); err != nil {
		return nil, err
	}
	return domain.NewReport(BuildReport(in)), nil
}

func (s *reportService) Export(ctx context.Context, in domain.ReportInput, format string) (*domain.Report, *Document, error) {
	exporter, ok := s.exporters[format]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	report, err := s.Generate(ctx, in)
	if err != nil {
		return nil, nil, err
	}

	data, err := exporter.Export(report.Text)
	if err != nil {
		return nil, nil, fmt.Errorf("export %s: %w", format, err)
	}

	return report, &Document{
		Data:        data,
		ContentType: exporter.ContentType(),
		FileName:    exporter.FileName(),
	}, nil
}
