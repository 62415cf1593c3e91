// Package service contains the aggregation layer: it turns paginated,
// loosely-structured Claims API responses into the immutable view models
// the presentation layer renders.
//
// This file implements the submission summary aggregator backing the
// search results listing.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/laa-civil/bulkclaim/internal/claims"
	"github.com/laa-civil/bulkclaim/internal/domain"
	"github.com/laa-civil/bulkclaim/internal/search"
)

// =============================================================================
// View Models
// =============================================================================

// SubmissionSummaryRow is one listing row projected from a submission.
type SubmissionSummaryRow struct {
	Reference     uuid.UUID
	Status        domain.SubmissionStatus
	PeriodLabel   string
	OfficeAccount string
	AreaOfLaw     domain.AreaOfLaw
	Submitted     time.Time
	TotalValue    decimal.Decimal
}

// SubmissionListing is the full search results view model: projected rows
// plus the upstream pagination metadata, passed through unchanged.
type SubmissionListing struct {
	Rows       []SubmissionSummaryRow
	Pagination domain.Pagination
}

// =============================================================================
// Interface Definition
// =============================================================================

// SummaryService defines the submission search/listing operations.
type SummaryService interface {
	// Search queries the Claims API with the given filter and reshapes the
	// returned page into a listing. The filter must already have passed
	// search.Validator; offices must be the caller's authorized set.
	Search(ctx context.Context, form search.Form) (*SubmissionListing, error)
}

// =============================================================================
// Implementation
// =============================================================================

type summaryService struct {
	client claims.Client
	logger *slog.Logger
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(client claims.Client, logger *slog.Logger) SummaryService {
	return &summaryService{
		client: client,
		logger: logger,
	}
}

// Search queries one page of submissions and projects each record.
func (s *summaryService) Search(ctx context.Context, form search.Form) (*SubmissionListing, error) {
	const op = "summary.search"

	if len(form.Offices) == 0 {
		return nil, domain.Invalid(op, "at least one office is required")
	}

	params := claims.SearchParams{
		Offices:          form.Offices,
		SubmissionPeriod: form.SubmissionPeriod,
		AreaOfLaw:        form.AreaOfLaw,
		Page:             form.Page,
		Size:             form.Size,
		Sort:             form.Sort,
	}
	if form.Status != "" {
		params.Statuses = []string{form.Status}
	}

	page, err := s.client.SearchSubmissions(ctx, params)
	if err != nil {
		return nil, err
	}

	listing := BuildSubmissionListing(page)

	s.logger.Debug("submission search",
		"op", op,
		"rows", len(listing.Rows),
		"total", listing.Pagination.TotalElements,
	)

	return listing, nil
}

// BuildSubmissionListing reshapes one upstream page into listing rows.
// Row order is the upstream order; no re-sorting or re-pagination happens
// here. An empty page yields an empty (non-nil) row slice.
func BuildSubmissionListing(page domain.Page[domain.Submission]) *SubmissionListing {
	rows := make([]SubmissionSummaryRow, 0, len(page.Items))
	for _, submission := range page.Items {
		rows = append(rows, SubmissionSummaryRow{
			Reference:     submission.ID,
			Status:        submission.Status,
			PeriodLabel:   submission.PeriodLabel(),
			OfficeAccount: submission.OfficeAccount,
			AreaOfLaw:     submission.AreaOfLaw,
			Submitted:     submission.Submitted,
			TotalValue:    submission.TotalValue,
		})
	}

	return &SubmissionListing{
		Rows:       rows,
		Pagination: page.Meta(),
	}
}
