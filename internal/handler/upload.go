// This file implements the bulk claim upload pages.
package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/laa-civil/bulkclaim/internal/claims"
	"github.com/laa-civil/bulkclaim/internal/metrics"
)

// UploadHandler serves the bulk claim upload form and accepts file posts.
type UploadHandler struct {
	client   claims.Client
	renderer *Renderer
	logger   *slog.Logger

	offices        []string
	providerUserID string
	maxUploadBytes int64
	allowedFormats []string
}

// UploadHandlerConfig holds dependencies for the upload handler.
type UploadHandlerConfig struct {
	Client         claims.Client
	Renderer       *Renderer
	Logger         *slog.Logger
	Offices        []string
	ProviderUserID string
	MaxUploadBytes int64

	// AllowedFormats lists acceptable file extensions without the leading
	// dot, e.g. "xml", "csv".
	AllowedFormats []string
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(cfg UploadHandlerConfig) *UploadHandler {
	return &UploadHandler{
		client:         cfg.Client,
		renderer:       cfg.Renderer,
		logger:         cfg.Logger,
		offices:        cfg.Offices,
		providerUserID: cfg.ProviderUserID,
		maxUploadBytes: cfg.MaxUploadBytes,
		allowedFormats: cfg.AllowedFormats,
	}
}

// ShowForm handles GET /upload.
func (h *UploadHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.RenderHTTP(w, "upload", map[string]any{
		"Title":   "Upload a bulk claim",
		"Formats": h.allowedFormats,
	})
}

// Submit handles POST /upload. Oversized and wrongly-typed files are
// rejected before anything is sent upstream.
func (h *UploadHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.rejectUpload(w, fmt.Sprintf("The selected file must be smaller than %d bytes", h.maxUploadBytes))
			return
		}
		h.rejectUpload(w, "Select a bulk claim file to upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.rejectUpload(w, "Select a bulk claim file to upload")
		return
	}
	defer file.Close()

	if !h.formatAllowed(header.Filename) {
		h.rejectUpload(w, fmt.Sprintf("The selected file must be a %s file", strings.Join(h.allowedFormats, " or ")))
		return
	}

	result, err := h.client.Upload(r.Context(), file, header.Filename, h.providerUserID, h.offices)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("failure").Inc()
		ErrorResponse(w, r, h.renderer, h.logger, err)
		return
	}

	metrics.UploadsTotal.WithLabelValues("success").Inc()
	h.logger.Info("bulk claim uploaded",
		"filename", header.Filename,
		"bulk_submission_id", result.BulkSubmissionID,
		"submission_id", result.SubmissionID,
	)

	http.Redirect(w, r, "/submissions/"+result.SubmissionID.String(), http.StatusSeeOther)
}

func (h *UploadHandler) rejectUpload(w http.ResponseWriter, message string) {
	w.WriteHeader(http.StatusBadRequest)
	h.renderer.RenderHTTP(w, "upload", map[string]any{
		"Title":   "Upload a bulk claim",
		"Formats": h.allowedFormats,
		"Error":   message,
	})
}

// formatAllowed checks the file extension against the configured allow
// list, case-insensitively.
func (h *UploadHandler) formatAllowed(filename string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	for _, format := range h.allowedFormats {
		if ext == strings.ToLower(format) {
			return true
		}
	}
	return false
}
