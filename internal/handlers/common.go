package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/zense17/classyncserver/internal/catalog"
	"github.com/zense17/classyncserver/internal/extraction"
	"github.com/zense17/classyncserver/internal/models"
	"github.com/zense17/classyncserver/internal/storage"
)

type Handler struct {
	reportStore *storage.ReportStore
	extractor   *extraction.Service
}

func New() *Handler {
	return NewWith(extraction.NewService(catalog.Default()), storage.New())
}

// NewWith wires a handler to an explicit service and store.
func NewWith(extractor *extraction.Service, store *storage.ReportStore) *Handler {
	return &Handler{
		reportStore: store,
		extractor:   extractor,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

// Report helpers
func (h *Handler) getReportOrError(w http.ResponseWriter, reportID string) (*models.Report, bool) {
	report, exists := h.reportStore.Get(reportID)
	if !exists {
		h.writeError(w, "Report not found", http.StatusNotFound)
		return nil, false
	}
	return report, true
}

// File operation helpers
func (h *Handler) ensureUploadsDir() error {
	uploadsDir := "uploads"
	return os.MkdirAll(uploadsDir, 0755)
}
