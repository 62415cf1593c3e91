// Package handler contains the HTTP layer.
//
// This file implements the submission detail page with its three
// navigation tabs: claim errors, claim details and matter starts.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/laa-civil/bulkclaim/internal/claims"
	"github.com/laa-civil/bulkclaim/internal/metrics"
	"github.com/laa-civil/bulkclaim/internal/service"
)

// SubmissionHandler serves the view-submission page.
type SubmissionHandler struct {
	client       claims.Client
	costs        service.CostsService
	matterStarts service.MatterStartsService
	messages     service.MessagesService
	renderer     *Renderer
	logger       *slog.Logger

	defaultPageSize int
}

// NewSubmissionHandler creates a new SubmissionHandler.
func NewSubmissionHandler(
	client claims.Client,
	costs service.CostsService,
	matterStarts service.MatterStartsService,
	messages service.MessagesService,
	renderer *Renderer,
	logger *slog.Logger,
	defaultPageSize int,
) *SubmissionHandler {
	return &SubmissionHandler{
		client:          client,
		costs:           costs,
		matterStarts:    matterStarts,
		messages:        messages,
		renderer:        renderer,
		logger:          logger,
		defaultPageSize: defaultPageSize,
	}
}

// Show handles GET /submissions/{id}. The navTab query parameter selects
// which aggregation runs; tab state is never stored server-side.
func (h *SubmissionHandler) Show(w http.ResponseWriter, r *http.Request) {
	submissionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 0 {
		page = 0
	}
	tab := ParseSubmissionTab(r.URL.Query().Get("navTab"))

	submission, err := h.client.GetSubmission(r.Context(), submissionID)
	if err != nil {
		ErrorResponse(w, r, h.renderer, h.logger, err)
		return
	}

	metrics.SubmissionViewsTotal.WithLabelValues(string(tab)).Inc()

	data := map[string]any{
		"Title":      "View submission",
		"Submission": submission,
		"NavTab":     tab,
	}

	switch tab {
	case TabClaimErrors:
		summary, err := h.messages.BuildErrors(r.Context(), submissionID, page, h.defaultPageSize)
		if err != nil {
			ErrorResponse(w, r, h.renderer, h.logger, err)
			return
		}
		data["Messages"] = summary
		data["PageRange"] = PageRange(summary.Pagination.CurrentPage(), summary.Pagination.TotalPages)

	case TabMatterStarts:
		tally, err := h.matterStarts.BuildTally(r.Context(), submissionID)
		if err != nil {
			ErrorResponse(w, r, h.renderer, h.logger, err)
			return
		}
		data["MatterStarts"] = tally

	default: // TabClaimDetails
		details, err := h.costs.BuildClaimDetails(r.Context(), submission.OfficeAccount, submission, page, h.defaultPageSize)
		if err != nil {
			ErrorResponse(w, r, h.renderer, h.logger, err)
			return
		}
		data["ClaimDetails"] = details
		data["PageRange"] = PageRange(details.Pagination.CurrentPage(), details.Pagination.TotalPages)
	}

	h.renderer.RenderHTTP(w, "view-submission", data)
}
