package main

import (
	"log"
	"net/http"
	_ "time/tzdata"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	middleware "github.com/rgdevment/opinion-brief/internal/platform/http/middleware"

	"github.com/rgdevment/opinion-brief/internal/config"
	"github.com/rgdevment/opinion-brief/internal/logging"
	"github.com/rgdevment/opinion-brief/internal/platform/catalog"
	"github.com/rgdevment/opinion-brief/internal/platform/export"
	httpHandler "github.com/rgdevment/opinion-brief/internal/platform/http"
	"github.com/rgdevment/opinion-brief/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer logger.Sync()

	if !cfg.EnvFileLoaded {
		logger.Info("no .env file found, using system environment variables")
	}

	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.String("path", cfg.CatalogFile), zap.Error(err))
	}

	svc := service.NewReportService(map[string]service.Exporter{
		"txt":  export.NewTextExporter(),
		"docx": export.NewDocxExporter(),
	})

	handler := httpHandler.NewHandler(svc, cat, logger, cfg.Location)
	handler.RequireAPIKey(cfg.APIKey != "")

	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chiMiddleware.Recoverer)

	handler.RegisterRoutes(r, middleware.APIKeyAuth(cfg.APIKey))

	logger.Info("server listening",
		zap.String("addr", cfg.Port),
		zap.Bool("api_key_required", cfg.APIKey != ""),
		zap.Int("regions", len(cat.Regions)),
	)
	if err := http.ListenAndServe(cfg.Port, r); err != nil {
		logger.Fatal("http server stopped", zap.Error(err))
	}
}
