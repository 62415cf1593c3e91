// Package claims provides the typed client for the downstream Claims API.
//
// The rest of the application only ever sees domain types and structured
// errors from this package; transport details (URLs, JSON shapes, paging
// parameters) stay here.
package claims

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/laa-civil/bulkclaim/internal/domain"
)

// DefaultClaimSort is the only claim ordering the views use: line number
// ascending, matching the numbering the API assigned at intake.
const DefaultClaimSort = "lineNumber,asc"

// Client is the Claims API contract consumed by the aggregation services.
//
// Timeouts and retries are this collaborator's responsibility; callers get
// a response page or a structured failure and never retry themselves.
type Client interface {
	// Upload posts a bulk claim file for intake.
	// Returns EUPSTREAM for any non-2xx response.
	Upload(ctx context.Context, file io.Reader, filename, userID string, offices []string) (*UploadResult, error)

	// SearchSubmissions returns one page of submissions matching the filter.
	SearchSubmissions(ctx context.Context, params SearchParams) (domain.Page[domain.Submission], error)

	// GetSubmission fetches one submission by ID.
	// Returns ENOTFOUND if the submission does not exist.
	GetSubmission(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, error)

	// GetClaims returns one page of a submission's claims, ordered by
	// line number ascending.
	GetClaims(ctx context.Context, officeCode string, submissionID uuid.UUID, page, size int) (domain.Page[domain.Claim], error)

	// GetClaim fetches a single claim within a submission.
	// Returns ENOTFOUND if either the submission or claim does not exist.
	GetClaim(ctx context.Context, submissionID, claimID uuid.UUID) (*domain.Claim, error)

	// GetMatterStarts returns every matter start for a submission as a
	// single unpaged collection.
	GetMatterStarts(ctx context.Context, submissionID uuid.UUID) ([]domain.MatterStart, error)

	// GetMatterStart fetches a single matter start within a submission.
	GetMatterStart(ctx context.Context, submissionID, matterStartID uuid.UUID) (*domain.MatterStart, error)

	// GetValidationMessages returns one page of validation messages for a
	// submission, optionally narrowed to a claim, type, or source.
	GetValidationMessages(ctx context.Context, params MessageParams) (domain.Page[domain.ValidationMessage], error)
}

// UploadResult identifies an accepted bulk upload.
type UploadResult struct {
	BulkSubmissionID uuid.UUID
	SubmissionID     uuid.UUID
}

// SearchParams narrows a submission search. Offices must be non-empty and
// pre-filtered by the caller to the authenticated user's authorized set.
type SearchParams struct {
	Offices          []string
	SubmissionPeriod string // Optional MMM-YYYY token
	AreaOfLaw        string // Optional
	Statuses         []string
	Page             int
	Size             int
	Sort             string // Optional; server order when empty
}

// MessageParams narrows a validation message query. A nil ClaimID requests
// submission-scoped results; Type and Source are optional filters.
type MessageParams struct {
	SubmissionID uuid.UUID
	ClaimID      *uuid.UUID
	Type         string
	Source       string
	Page         int
	Size         int
}
