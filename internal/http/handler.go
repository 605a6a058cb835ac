package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/andreasstove999/stock-tracker/internal/inventory"
)

const (
	msgCredentials = "Google credentials not configured. Please set environment variables."
	msgFetchFailed = "Failed to fetch inventory data"
)

// Fetcher is satisfied by *inventory.Reader.
type Fetcher interface {
	Fetch(ctx context.Context) (inventory.Response, error)
}

type Handler struct {
	inv    Fetcher
	logger *zap.Logger
}

func NewHandler(inv Fetcher, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{inv: inv, logger: logger}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "stock-tracker",
	})
}

func (h *Handler) GetInventory(w http.ResponseWriter, r *http.Request) {
	resp, err := h.inv.Fetch(r.Context())
	if err != nil {
		h.writeFetchError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, resp)
}

// ExportInventory serves the current snapshot as an .xlsx download.
func (h *Handler) ExportInventory(w http.ResponseWriter, r *http.Request) {
	resp, err := h.inv.Fetch(r.Context())
	if err != nil {
		h.writeFetchError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := inventory.WriteWorkbook(&buf, resp); err != nil {
		h.logger.Error("export workbook", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "Failed to export inventory", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="stock-summary.xlsx"`)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) writeFetchError(w http.ResponseWriter, r *http.Request, err error) {
	var nf *inventory.NotFoundError
	var fe *inventory.FetchError

	switch {
	case errors.Is(err, inventory.ErrCredentialsNotConfigured):
		h.logger.Error("google credentials missing")
		writeError(w, r, http.StatusInternalServerError, msgCredentials, "")
	case errors.As(err, &nf):
		h.logger.Warn("inventory spreadsheet not found", zap.String("title", nf.Title))
		writeError(w, r, http.StatusNotFound, nf.Error(), "")
	case errors.As(err, &fe):
		h.logger.Error("error fetching sheet data", zap.Error(fe.Err))
		writeError(w, r, http.StatusInternalServerError, msgFetchFailed, fe.Err.Error())
	default:
		h.logger.Error("error fetching sheet data", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, msgFetchFailed, err.Error())
	}
}

type errorResponse struct {
	Error         string `json:"error"`
	Details       string `json:"details,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg, details string) {
	writeJSON(w, status, errorResponse{
		Error:         msg,
		Details:       details,
		CorrelationID: GetCorrelationID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
