package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/laa-civil/bulkclaim/internal/claims"
	"github.com/laa-civil/bulkclaim/internal/domain"
)

// stubClient implements claims.Client with canned responses per call. Tests
// set only the funcs they expect to be hit; anything else panics loudly.
type stubClient struct {
	upload                func(ctx context.Context, file io.Reader, filename, userID string, offices []string) (*claims.UploadResult, error)
	searchSubmissions     func(ctx context.Context, params claims.SearchParams) (domain.Page[domain.Submission], error)
	getSubmission         func(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, error)
	getClaims             func(ctx context.Context, officeCode string, submissionID uuid.UUID, page, size int) (domain.Page[domain.Claim], error)
	getClaim              func(ctx context.Context, submissionID, claimID uuid.UUID) (*domain.Claim, error)
	getMatterStarts       func(ctx context.Context, submissionID uuid.UUID) ([]domain.MatterStart, error)
	getMatterStart        func(ctx context.Context, submissionID, matterStartID uuid.UUID) (*domain.MatterStart, error)
	getValidationMessages func(ctx context.Context, params claims.MessageParams) (domain.Page[domain.ValidationMessage], error)
}

func (s *stubClient) Upload(ctx context.Context, file io.Reader, filename, userID string, offices []string) (*claims.UploadResult, error) {
	return s.upload(ctx, file, filename, userID, offices)
}

func (s *stubClient) SearchSubmissions(ctx context.Context, params claims.SearchParams) (domain.Page[domain.Submission], error) {
	return s.searchSubmissions(ctx, params)
}

func (s *stubClient) GetSubmission(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, error) {
	return s.getSubmission(ctx, submissionID)
}

func (s *stubClient) GetClaims(ctx context.Context, officeCode string, submissionID uuid.UUID, page, size int) (domain.Page[domain.Claim], error) {
	return s.getClaims(ctx, officeCode, submissionID, page, size)
}

func (s *stubClient) GetClaim(ctx context.Context, submissionID, claimID uuid.UUID) (*domain.Claim, error) {
	return s.getClaim(ctx, submissionID, claimID)
}

func (s *stubClient) GetMatterStarts(ctx context.Context, submissionID uuid.UUID) ([]domain.MatterStart, error) {
	return s.getMatterStarts(ctx, submissionID)
}

func (s *stubClient) GetMatterStart(ctx context.Context, submissionID, matterStartID uuid.UUID) (*domain.MatterStart, error) {
	return s.getMatterStart(ctx, submissionID, matterStartID)
}

func (s *stubClient) GetValidationMessages(ctx context.Context, params claims.MessageParams) (domain.Page[domain.ValidationMessage], error) {
	return s.getValidationMessages(ctx, params)
}
