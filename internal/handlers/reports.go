package handlers

import (
	"net/http"
	"strings"

	"github.com/zense17/classyncserver/internal/export"
	"github.com/zense17/classyncserver/internal/models"
)

func (h *Handler) HandleReports(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		reports := h.reportStore.GetAll()
		reportList := make([]*models.Report, 0, len(reports))
		for _, report := range reports {
			reportList = append(reportList, report)
		}
		h.writeJSON(w, reportList)
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) HandleReportDetail(w http.ResponseWriter, r *http.Request) {
	reportID := strings.TrimPrefix(r.URL.Path, "/api/extractions/")

	if id, ok := strings.CutSuffix(reportID, "/export"); ok {
		h.handleExport(w, r, id)
		return
	}

	report, ok := h.getReportOrError(w, reportID)
	if !ok {
		return
	}

	switch r.Method {
	case "GET":
		h.writeJSON(w, report)
	case "DELETE":
		h.reportStore.Delete(reportID)
		w.WriteHeader(http.StatusNoContent)
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request, reportID string) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	report, ok := h.getReportOrError(w, reportID)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="extraction-`+reportID+`.xlsx"`)
	if err := export.WriteReport(w, report); err != nil {
		h.writeError(w, "Failed to export report: "+err.Error(), http.StatusInternalServerError)
	}
}
