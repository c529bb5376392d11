package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"
	_ "time/tzdata"

	"go.uber.org/zap"

	"github.com/rgdevment/opinion-brief/internal/config"
	"github.com/rgdevment/opinion-brief/internal/logging"
	"github.com/rgdevment/opinion-brief/internal/platform/catalog"
	"github.com/rgdevment/opinion-brief/internal/platform/export"
	httpHandler "github.com/rgdevment/opinion-brief/internal/platform/http"
	"github.com/rgdevment/opinion-brief/internal/service"
)

// render builds a brief from a JSON submission without starting the server:
//
//	go run ./cmd/render -input incident.json -format docx
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	if err := run(context.Background(), cfg, logger, os.Args[1:]); err != nil {
		logger.Error("render failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	inputPtr := fs.String("input", "", "JSON file with the report fields")
	formatPtr := fs.String("format", "txt", "output format: txt or docx")
	outPtr := fs.String("out", "", "output file (defaults to the export file name)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *inputPtr == "" {
		return errors.New("an input file is required, usage: render -input incident.json -format docx")
	}

	raw, err := os.ReadFile(*inputPtr)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var req httpHandler.ReportRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return fmt.Errorf("invalid JSON input: %w", err)
	}

	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return err
	}

	in, err := req.ToInput(cat, time.Now().In(cfg.Location))
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	svc := service.NewReportService(map[string]service.Exporter{
		"txt":  export.NewTextExporter(),
		"docx": export.NewDocxExporter(),
	})

	report, doc, err := svc.Export(ctx, in, *formatPtr)
	if err != nil {
		return err
	}

	out := *outPtr
	if out == "" {
		out = doc.FileName
	}
	if err := os.WriteFile(out, doc.Data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	logger.Info("report written",
		zap.String("report_id", report.ID.String()),
		zap.String("path", out),
	)
	return nil
}
