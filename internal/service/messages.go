// Package service contains the aggregation layer.
//
// This file implements the validation-message summary aggregator: it
// merges submission-level and claim-level messages into one listing with
// error and claims-with-errors counts.
package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/laa-civil/bulkclaim/internal/claims"
	"github.com/laa-civil/bulkclaim/internal/domain"
)

// =============================================================================
// View Models
// =============================================================================

// MessageRow is one validation message prepared for display. Claim-scoped
// rows carry the claim's file/client identifiers; submission-scoped rows
// leave them blank.
type MessageRow struct {
	SubmissionID uuid.UUID
	ClaimID      *uuid.UUID
	UFN          string
	UCN          string
	Client       string
	Message      string
	Type         string
	IsError      bool
}

// MessagesSummary is the messages tab view model.
type MessagesSummary struct {
	Rows []MessageRow

	// TotalMessageCount counts the rows classified as errors. Warnings and
	// other non-error types appear in Rows but are excluded here.
	TotalMessageCount int

	// TotalClaimsWithErrors counts distinct claim references among the
	// error rows. Submission-scoped messages never contribute.
	TotalClaimsWithErrors int

	Pagination domain.Pagination
}

// ContainsErrors reports whether any message on this page classified as an
// error. Derived from the filtered count, not the raw page length, so a
// page of warnings reports false.
func (s *MessagesSummary) ContainsErrors() bool {
	return s.TotalMessageCount > 0
}

// =============================================================================
// Interface Definition
// =============================================================================

// MessageQuery scopes a validation-message listing. A nil ClaimID requests
// submission-scoped messages; Type and Source pass through to the API.
type MessageQuery struct {
	SubmissionID uuid.UUID
	ClaimID      *uuid.UUID
	Type         string
	Source       string
	Page         int
	Size         int
}

// MessagesService builds validation message summaries.
type MessagesService interface {
	// Build fetches one page of validation messages and reconciles them
	// into a summary. Claim-scoped rows are enriched with the referenced
	// claim's identifiers.
	Build(ctx context.Context, query MessageQuery) (*MessagesSummary, error)

	// BuildErrors is Build narrowed to error-type messages.
	BuildErrors(ctx context.Context, submissionID uuid.UUID, page, size int) (*MessagesSummary, error)
}

// =============================================================================
// Implementation
// =============================================================================

type messagesService struct {
	client claims.Client
	logger *slog.Logger
}

// NewMessagesService creates a new MessagesService.
func NewMessagesService(client claims.Client, logger *slog.Logger) MessagesService {
	return &messagesService{
		client: client,
		logger: logger,
	}
}

func (s *messagesService) BuildErrors(ctx context.Context, submissionID uuid.UUID, page, size int) (*MessagesSummary, error) {
	return s.Build(ctx, MessageQuery{
		SubmissionID: submissionID,
		Type:         domain.MessageTypeError,
		Page:         page,
		Size:         size,
	})
}

func (s *messagesService) Build(ctx context.Context, query MessageQuery) (*MessagesSummary, error) {
	const op = "messages.build"

	page, err := s.client.GetValidationMessages(ctx, claims.MessageParams{
		SubmissionID: query.SubmissionID,
		ClaimID:      query.ClaimID,
		Type:         query.Type,
		Source:       query.Source,
		Page:         query.Page,
		Size:         query.Size,
	})
	if err != nil {
		return nil, err
	}

	summary := BuildMessagesSummary(page, s.lookupClaims(ctx, query.SubmissionID, page.Items))

	s.logger.Debug("messages summarised",
		"op", op,
		"submission_id", query.SubmissionID,
		"rows", len(summary.Rows),
		"errors", summary.TotalMessageCount,
	)

	return summary, nil
}

// lookupClaims fetches each distinct claim referenced on the page, once.
// An individual claim that cannot be fetched degrades to blank identifier
// fields rather than failing the listing.
func (s *messagesService) lookupClaims(ctx context.Context, submissionID uuid.UUID, messages []domain.ValidationMessage) map[uuid.UUID]*domain.Claim {
	lookup := make(map[uuid.UUID]*domain.Claim)
	for _, message := range messages {
		if message.ClaimID == nil {
			continue
		}
		id := *message.ClaimID
		if _, seen := lookup[id]; seen {
			continue
		}

		claim, err := s.client.GetClaim(ctx, submissionID, id)
		if err != nil {
			s.logger.Warn("claim lookup for message row failed",
				"submission_id", submissionID,
				"claim_id", id,
				"error", err,
			)
			lookup[id] = nil
			continue
		}
		lookup[id] = claim
	}
	return lookup
}

// BuildMessagesSummary reconciles one page of messages into a summary.
// Every message on the page appears as a row; the counts consider only the
// rows classified as errors.
func BuildMessagesSummary(page domain.Page[domain.ValidationMessage], lookup map[uuid.UUID]*domain.Claim) *MessagesSummary {
	rows := make([]MessageRow, 0, len(page.Items))
	errorCount := 0
	claimsWithErrors := make(map[uuid.UUID]struct{})

	for _, message := range page.Items {
		row := MessageRow{
			SubmissionID: message.SubmissionID,
			ClaimID:      message.ClaimID,
			Message:      message.DisplayMessage,
			Type:         message.Type,
			IsError:      message.IsError(),
		}

		if message.ClaimID != nil {
			if claim := lookup[*message.ClaimID]; claim != nil {
				row.UFN = claim.UniqueFileNumber
				row.UCN = claim.UniqueClientNumber
				row.Client = claim.ClientName()
			}
		}

		if row.IsError {
			errorCount++
			if message.ClaimID != nil {
				claimsWithErrors[*message.ClaimID] = struct{}{}
			}
		}

		rows = append(rows, row)
	}

	return &MessagesSummary{
		Rows:                  rows,
		TotalMessageCount:     errorCount,
		TotalClaimsWithErrors: len(claimsWithErrors),
		Pagination:            page.Meta(),
	}
}
