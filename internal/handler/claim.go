package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/laa-civil/bulkclaim/internal/claims"
	"github.com/laa-civil/bulkclaim/internal/service"
)

// ClaimHandler serves the view-claim page.
type ClaimHandler struct {
	client   claims.Client
	messages service.MessagesService
	renderer *Renderer
	logger   *slog.Logger

	defaultPageSize int
}

// NewClaimHandler creates a new ClaimHandler.
func NewClaimHandler(
	client claims.Client,
	messages service.MessagesService,
	renderer *Renderer,
	logger *slog.Logger,
	defaultPageSize int,
) *ClaimHandler {
	return &ClaimHandler{
		client:          client,
		messages:        messages,
		renderer:        renderer,
		logger:          logger,
		defaultPageSize: defaultPageSize,
	}
}

// Show handles GET /submissions/{id}/claims/{claimID}.
func (h *ClaimHandler) Show(w http.ResponseWriter, r *http.Request) {
	submissionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	claimID, err := uuid.Parse(r.PathValue("claimID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 0 {
		page = 0
	}
	tab := ParseClaimTab(r.URL.Query().Get("navTab"))

	claim, err := h.client.GetClaim(r.Context(), submissionID, claimID)
	if err != nil {
		ErrorResponse(w, r, h.renderer, h.logger, err)
		return
	}

	data := map[string]any{
		"Title":        "View claim",
		"SubmissionID": submissionID,
		"Claim":        claim,
		"Row":          service.BuildClaimRow(*claim),
		"NavTab":       tab,
	}

	if tab == TabClaimMessages {
		summary, err := h.messages.Build(r.Context(), service.MessageQuery{
			SubmissionID: submissionID,
			ClaimID:      &claimID,
			Page:         page,
			Size:         h.defaultPageSize,
		})
		if err != nil {
			ErrorResponse(w, r, h.renderer, h.logger, err)
			return
		}
		data["Messages"] = summary
		data["PageRange"] = PageRange(summary.Pagination.CurrentPage(), summary.Pagination.TotalPages)
	}

	h.renderer.RenderHTTP(w, "view-claim", data)
}
