// Package handler contains the HTTP layer: it parses requests, invokes the
// aggregation services and renders page templates.
//
// This file implements the submission search pages.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/laa-civil/bulkclaim/internal/domain"
	"github.com/laa-civil/bulkclaim/internal/metrics"
	"github.com/laa-civil/bulkclaim/internal/search"
	"github.com/laa-civil/bulkclaim/internal/service"
)

// SearchHandler serves the submission search form and results listing.
type SearchHandler struct {
	summaries service.SummaryService
	validator *search.Validator
	renderer  *Renderer
	logger    *slog.Logger

	offices         []string
	minimumPeriod   domain.Period
	defaultPageSize int
	now             func() time.Time
}

// SearchHandlerConfig holds dependencies for the search handler.
type SearchHandlerConfig struct {
	Summaries       service.SummaryService
	Validator       *search.Validator
	Renderer        *Renderer
	Logger          *slog.Logger
	Offices         []string
	MinimumPeriod   domain.Period
	DefaultPageSize int

	// Now is the clock used to derive selectable periods; defaults to
	// time.Now. Injected so the cut-off month is testable.
	Now func() time.Time
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(cfg SearchHandlerConfig) *SearchHandler {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &SearchHandler{
		summaries:       cfg.Summaries,
		validator:       cfg.Validator,
		renderer:        cfg.Renderer,
		logger:          cfg.Logger,
		offices:         cfg.Offices,
		minimumPeriod:   cfg.MinimumPeriod,
		defaultPageSize: cfg.DefaultPageSize,
		now:             now,
	}
}

// ShowForm handles GET /submissions/search.
func (h *SearchHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	available := domain.AvailablePeriods(h.minimumPeriod, h.now())

	h.renderer.RenderHTTP(w, "submissions-search", map[string]any{
		"Title":    "Search submissions",
		"Periods":  available.Periods(),
		"Areas":    domain.AreasOfLaw(),
		"Statuses": domain.SubmissionStatuses(),
		"Form":     search.Form{},
	})
}

// Results handles GET /submissions/search/results. Filter values arrive as
// query parameters so result pages are linkable and the pagination controls
// are plain anchors.
func (h *SearchHandler) Results(w http.ResponseWriter, r *http.Request) {
	form := h.parseForm(r)
	available := domain.AvailablePeriods(h.minimumPeriod, h.now())

	if failures := h.validator.Validate(form, available); len(failures) > 0 {
		h.logger.Info("search rejected",
			"failures", len(failures),
			"period", form.SubmissionPeriod,
		)
		w.WriteHeader(http.StatusBadRequest)
		h.renderer.RenderHTTP(w, "submissions-search", map[string]any{
			"Title":    "Search submissions",
			"Periods":  available.Periods(),
			"Areas":    domain.AreasOfLaw(),
			"Statuses": domain.SubmissionStatuses(),
			"Form":     form,
			"Errors":   failures,
		})
		return
	}

	listing, err := h.summaries.Search(r.Context(), form)
	if err != nil {
		ErrorResponse(w, r, h.renderer, h.logger, err)
		return
	}

	metrics.SubmissionSearchesTotal.Inc()

	h.renderer.RenderHTTP(w, "submissions-search-results", map[string]any{
		"Title":      "Submissions",
		"Form":       form,
		"Rows":       listing.Rows,
		"Pagination": listing.Pagination,
		"PageRange":  PageRange(listing.Pagination.CurrentPage(), listing.Pagination.TotalPages),
	})
}

// parseForm extracts the search filter from query parameters. Values are
// passed to the validator as-is; only paging gets defaults here.
func (h *SearchHandler) parseForm(r *http.Request) search.Form {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 0 {
		page = 0
	}
	size, err := strconv.Atoi(q.Get("size"))
	if err != nil || size <= 0 {
		size = h.defaultPageSize
	}

	return search.Form{
		Offices:          h.offices,
		SubmissionPeriod: strings.TrimSpace(q.Get("submissionPeriod")),
		AreaOfLaw:        strings.TrimSpace(q.Get("areaOfLaw")),
		Status:           strings.TrimSpace(q.Get("status")),
		Page:             page,
		Size:             size,
		Sort:             strings.TrimSpace(q.Get("sort")),
	}
}
