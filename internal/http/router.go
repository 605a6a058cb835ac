package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/andreasstove999/stock-tracker/internal/web"
)

type RouterConfig struct {
	CORSAllowOrigins []string
	Logger           *zap.Logger
}

func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(CorrelationID)
	r.Use(AccessLog(logger))
	r.Use(Recover(logger))
	r.Use(CORS(cfg.CORSAllowOrigins))

	r.Get("/health", h.Health)

	r.Get("/api/inventory", h.GetInventory)
	r.Get("/api/inventory/export.xlsx", h.ExportInventory)

	r.Get("/", web.Index)
	r.Handle("/static/*", web.Static())

	return r
}
