package http

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/rgdevment/opinion-brief/internal/platform/catalog"
	"github.com/rgdevment/opinion-brief/internal/service"
)

// maxBodyBytes caps /v1 request bodies; a full submission is a few KB.
const maxBodyBytes = 1 << 20

type Handler struct {
	service  service.Service
	catalog  *catalog.Catalog
	logger   *zap.Logger
	location *time.Location
	now      func() time.Time

	// apiKeyField adds an api_key input to the form page.
	apiKeyField bool
}

func NewHandler(s service.Service, cat *catalog.Catalog, logger *zap.Logger, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{
		service:  s,
		catalog:  cat,
		logger:   logger,
		location: loc,
		now:      time.Now,
	}
}

// RequireAPIKey makes the form page ask for the key that guards /v1.
func (h *Handler) RequireAPIKey(required bool) {
	h.apiKeyField = required
}

// RegisterRoutes mounts the form page and the /v1 API. apiMiddleware only
// wraps the /v1 routes.
func (h *Handler) RegisterRoutes(r chi.Router, apiMiddleware ...func(http.Handler) http.Handler) {
	r.Get("/", h.FormPage)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Use(chiMiddleware.RequestSize(maxBodyBytes))
		r.Use(apiMiddleware...)
		r.Get("/catalog", h.GetCatalog)
		r.Post("/reports", h.CreateReport)
		r.Post("/reports/preview", h.PreviewReport)
		r.Post("/reports/{format}", h.DownloadReport)
	})
}

func (h *Handler) today() time.Time {
	return h.now().In(h.location)
}

func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.catalog)
}

// CreateReport validates the submission and returns the preview text.
func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	in, err := req.ToInput(h.catalog, h.today())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.service.Generate(r.Context(), in)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.logger.Info("report generated", zap.String("report_id", report.ID.String()))

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Report-ID", report.ID.String())
	json.NewEncoder(w).Encode(report)
}

// DownloadReport renders the report as a file attachment.
func (h *Handler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(chi.URLParam(r, "format"))

	req, err := decodeRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	in, err := req.ToInput(h.catalog, h.today())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, doc, err := h.service.Export(r.Context(), in, format)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.logger.Info("report exported",
		zap.String("report_id", report.ID.String()),
		zap.String("format", format),
		zap.Int("bytes", len(doc.Data)),
	)

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName}))
	w.Header().Set("X-Report-ID", report.ID.String())
	w.Write(doc.Data)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		h.logger.Info("report rejected", zap.String("reason", vErr.Err.Error()))
		http.Error(w, vErr.Message, http.StatusUnprocessableEntity)
	case errors.Is(err, service.ErrUnknownFormat):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		h.logger.Error("report generation failed", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func decodeRequest(r *http.Request) (*ReportRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req ReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, errors.New("invalid JSON format")
		}
		return &req, nil
	}
	return formRequest(r)
}
