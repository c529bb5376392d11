package service

import (
	"context"

	"github.com/rgdevment/opinion-brief/internal/domain"
)

type Service interface {
	// Generate validates the input and renders the brief.
	Generate(ctx context.Context, in domain.ReportInput) (*domain.Report, error)

	// Export renders the brief and encodes it with the exporter registered
	// for format ("txt", "docx").
	Export(ctx context.Context, in domain.ReportInput, format string) (*domain.Report, *Document, error)
}

// Exporter turns report text into a downloadable file.
type Exporter interface {
	Export(text string) ([]byte, error)
	ContentType() string
	FileName() string
}

// Document is an encoded report ready to be sent to the client.
type Document struct {
	Data        []byte
	ContentType string
	FileName    string
}
