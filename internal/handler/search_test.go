package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laa-civil/bulkclaim/internal/domain"
	"github.com/laa-civil/bulkclaim/internal/search"
	"github.com/laa-civil/bulkclaim/internal/service"
)

type stubSummaries struct {
	search func(ctx context.Context, form search.Form) (*service.SubmissionListing, error)
}

func (s *stubSummaries) Search(ctx context.Context, form search.Form) (*service.SubmissionListing, error) {
	return s.search(ctx, form)
}

func newSearchHandler(t *testing.T, summaries service.SummaryService) *SearchHandler {
	t.Helper()

	renderer := testRenderer(t, map[string]string{
		"submissions-search":         `form:{{len .Periods}} periods{{range .Errors}} [{{.Code}}]{{end}}`,
		"submissions-search-results": `results:{{len .Rows}} of {{.Pagination.TotalElements}}`,
		"error":                      `{{.Title}}`,
	})

	return NewSearchHandler(SearchHandlerConfig{
		Summaries:       summaries,
		Validator:       search.NewValidator(),
		Renderer:        renderer,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		Offices:         []string{"0X111X"},
		MinimumPeriod:   domain.Period{Year: 2025, Month: time.January},
		DefaultPageSize: 10,
		Now: func() time.Time {
			return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
		},
	})
}

func TestSearchHandlerShowForm(t *testing.T) {
	h := newSearchHandler(t, &stubSummaries{})

	req := httptest.NewRequest("GET", "/submissions/search", nil)
	rec := httptest.NewRecorder()

	h.ShowForm(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	// January through May 2025 are selectable in June.
	assert.Contains(t, rec.Body.String(), "form:5 periods")
}

func TestSearchHandlerResults(t *testing.T) {
	t.Run("valid filter runs the search", func(t *testing.T) {
		var captured search.Form
		h := newSearchHandler(t, &stubSummaries{
			search: func(_ context.Context, form search.Form) (*service.SubmissionListing, error) {
				captured = form
				return &service.SubmissionListing{
					Rows:       []service.SubmissionSummaryRow{{}},
					Pagination: domain.Pagination{Number: 0, Size: 10, TotalElements: 1, TotalPages: 1},
				}, nil
			},
		})

		req := httptest.NewRequest("GET", "/submissions/search/results?submissionPeriod=FEB-2025&areaOfLaw=LEGAL_HELP&status=VALIDATION_FAILED", nil)
		rec := httptest.NewRecorder()

		h.Results(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "results:1 of 1")
		assert.Equal(t, []string{"0X111X"}, captured.Offices)
		assert.Equal(t, "FEB-2025", captured.SubmissionPeriod)
		assert.Equal(t, 10, captured.Size)
	})

	t.Run("invalid period re-renders the form with 400", func(t *testing.T) {
		h := newSearchHandler(t, &stubSummaries{
			search: func(_ context.Context, _ search.Form) (*service.SubmissionListing, error) {
				t.Fatal("search must not run for invalid filters")
				return nil, nil
			},
		})

		req := httptest.NewRequest("GET", "/submissions/search/results?submissionPeriod=DEC-2030", nil)
		rec := httptest.NewRecorder()

		h.Results(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), search.InvalidSubmissionPeriod)
	})

	t.Run("upstream failure renders the error page", func(t *testing.T) {
		h := newSearchHandler(t, &stubSummaries{
			search: func(_ context.Context, _ search.Form) (*service.SubmissionListing, error) {
				return nil, domain.Upstream(nil, "claims.search_submissions", 503)
			},
		})

		req := httptest.NewRequest("GET", "/submissions/search/results", nil)
		rec := httptest.NewRecorder()

		h.Results(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("page and size defaults applied", func(t *testing.T) {
		var captured search.Form
		h := newSearchHandler(t, &stubSummaries{
			search: func(_ context.Context, form search.Form) (*service.SubmissionListing, error) {
				captured = form
				return &service.SubmissionListing{Rows: []service.SubmissionSummaryRow{}}, nil
			},
		})

		req := httptest.NewRequest("GET", "/submissions/search/results?page=-3&size=0", nil)
		rec := httptest.NewRecorder()

		h.Results(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0, captured.Page)
		assert.Equal(t, 10, captured.Size)
	})
}
