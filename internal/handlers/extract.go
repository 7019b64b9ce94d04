package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/zense17/classyncserver/internal/extraction"
	"github.com/zense17/classyncserver/internal/providers"
	"github.com/zense17/classyncserver/internal/utils"
)

const maxImageBytes = 10 * 1024 * 1024

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// HandleExtract accepts one or two document images as multipart form data,
// runs the extraction pipeline and returns the stored report.
func (h *Handler) HandleExtract(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(32 * 1024 * 1024); err != nil {
		h.writeError(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		files = r.MultipartForm.File["file"]
	}
	if len(files) == 0 {
		h.writeError(w, "No image files submitted", http.StatusBadRequest)
		return
	}
	if len(files) > 2 {
		h.writeError(w, "At most 2 images are supported per extraction", http.StatusBadRequest)
		return
	}

	kind := providers.DocumentKind(r.FormValue("kind"))
	if kind != "" && !providers.ValidKind(kind) {
		h.writeError(w, "Invalid kind. Must be 'checklist', 'registration', 'grades' or 'timetable'", http.StatusBadRequest)
		return
	}

	images := make([]extraction.ImageInput, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			h.writeError(w, "Failed to read file: "+err.Error(), http.StatusBadRequest)
			return
		}

		fileData, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
		file.Close()
		if err != nil {
			h.writeError(w, "Failed to read file contents: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if len(fileData) >= maxImageBytes {
			h.writeError(w, "File too large (max 10MB)", http.StatusBadRequest)
			return
		}

		mimeType := http.DetectContentType(fileData)
		if _, ok := allowedImageTypes[mimeType]; !ok {
			h.writeError(w, "Unsupported file type "+mimeType+". Must be JPEG, PNG or WebP", http.StatusBadRequest)
			return
		}

		if err := h.saveUpload(fileData, mimeType); err != nil {
			slog.Warn("Failed to save uploaded image", "filename", header.Filename, "error", err)
		}

		images = append(images, extraction.ImageInput{
			Filename: header.Filename,
			MimeType: mimeType,
			Data:     fileData,
		})
	}

	report, err := h.extractor.Extract(r.Context(), extraction.Request{
		Kind:     kind,
		Provider: r.FormValue("provider"),
		Model:    r.FormValue("model"),
		Images:   images,
	})
	if err != nil {
		h.writeError(w, "Extraction failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	h.reportStore.Set(report.ID, report)
	h.writeJSON(w, report)
}

func (h *Handler) saveUpload(fileData []byte, mimeType string) error {
	if err := h.ensureUploadsDir(); err != nil {
		return err
	}
	filename := utils.CalculateDataMD5(fileData) + allowedImageTypes[mimeType]
	return os.WriteFile(filepath.Join("uploads", filename), fileData, 0644)
}
