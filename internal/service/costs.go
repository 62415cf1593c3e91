// Package service contains the aggregation layer.
//
// This file implements the claim cost and row aggregator: per-claim rows
// for the claim details table plus the submission-level cost summary.
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/laa-civil/bulkclaim/internal/claims"
	"github.com/laa-civil/bulkclaim/internal/domain"
)

// =============================================================================
// View Models
// =============================================================================

// ClaimRow is one claim projected for the claim details table. Money values
// are recomputed from the claim's components, never taken from the API.
type ClaimRow struct {
	ID                 uuid.UUID
	LineNumber         int // Page-local, exactly as assigned upstream
	UFN                string
	UCN                string
	Client             string
	Category           string
	Matter             string
	ConcludedOrClaimed time.Time
	FeeType            string
	FeeCode            string

	ProfitCosts        decimal.Decimal
	Disbursements      decimal.Decimal
	AdditionalPayments decimal.Decimal
	Value              decimal.Decimal
}

// CostsSummary aggregates the cost components across every claim row on the
// current page. FixedFee is separately sourced and passed through.
type CostsSummary struct {
	ProfitCosts        decimal.Decimal
	Disbursements      decimal.Decimal
	AdditionalPayments decimal.Decimal
	FixedFee           decimal.Decimal
	SubmissionValue    decimal.Decimal
}

// ClaimsDetails is the claim details tab view model.
type ClaimsDetails struct {
	Rows       []ClaimRow
	Costs      CostsSummary
	Pagination domain.Pagination
}

// =============================================================================
// Interface Definition
// =============================================================================

// CostsService builds the claim details view for one submission.
type CostsService interface {
	// BuildClaimDetails fetches one page of the submission's claims and
	// aggregates rows and cost totals. The fixed fee figure comes from the
	// submission record, not from the claim rows.
	BuildClaimDetails(ctx context.Context, officeCode string, submission *domain.Submission, page, size int) (*ClaimsDetails, error)
}

// =============================================================================
// Implementation
// =============================================================================

type costsService struct {
	client claims.Client
	logger *slog.Logger
}

// NewCostsService creates a new CostsService.
func NewCostsService(client claims.Client, logger *slog.Logger) CostsService {
	return &costsService{
		client: client,
		logger: logger,
	}
}

func (s *costsService) BuildClaimDetails(ctx context.Context, officeCode string, submission *domain.Submission, page, size int) (*ClaimsDetails, error) {
	const op = "costs.build_claim_details"

	claimsPage, err := s.client.GetClaims(ctx, officeCode, submission.ID, page, size)
	if err != nil {
		return nil, err
	}

	details := BuildClaimsDetails(claimsPage, submission.FixedFeeTotal)

	s.logger.Debug("claim details built",
		"op", op,
		"submission_id", submission.ID,
		"rows", len(details.Rows),
	)

	return details, nil
}

// BuildClaimsDetails aggregates one page of claims into rows and a cost
// summary. All sums are decimal; an empty page yields an all-zero summary
// apart from the pass-through fixed fee.
func BuildClaimsDetails(page domain.Page[domain.Claim], fixedFee decimal.Decimal) *ClaimsDetails {
	rows := make([]ClaimRow, 0, len(page.Items))

	profitCosts := decimal.Zero
	disbursements := decimal.Zero
	additionalPayments := decimal.Zero

	for _, claim := range page.Items {
		row := BuildClaimRow(claim)
		rows = append(rows, row)

		profitCosts = profitCosts.Add(claim.Costs.NetProfitCosts)
		disbursements = disbursements.Add(claim.Costs.Disbursements())
		additionalPayments = additionalPayments.Add(claim.Costs.AdditionalPayments())
	}

	return &ClaimsDetails{
		Rows: rows,
		Costs: CostsSummary{
			ProfitCosts:        profitCosts,
			Disbursements:      disbursements,
			AdditionalPayments: additionalPayments,
			FixedFee:           fixedFee,
			SubmissionValue:    profitCosts.Add(disbursements).Add(additionalPayments).Add(fixedFee),
		},
		Pagination: page.Meta(),
	}
}

// BuildClaimRow projects one claim into a table row. The displayed value is
// the recomputed component sum.
func BuildClaimRow(claim domain.Claim) ClaimRow {
	return ClaimRow{
		ID:                 claim.ID,
		LineNumber:         claim.LineNumber,
		UFN:                claim.UniqueFileNumber,
		UCN:                claim.UniqueClientNumber,
		Client:             claim.ClientName(),
		Category:           claim.CategoryCode,
		Matter:             claim.MatterTypeCode,
		ConcludedOrClaimed: claim.ConcludedOrClaimedDate,
		FeeType:            FeeTypeLabel(claim.FeeType),
		FeeCode:            claim.FeeCode,
		ProfitCosts:        claim.Costs.NetProfitCosts,
		Disbursements:      claim.Costs.Disbursements(),
		AdditionalPayments: claim.Costs.AdditionalPayments(),
		Value:              claim.Costs.TotalValue(),
	}
}

var feeTypeLower = cases.Lower(language.BritishEnglish)

// FeeTypeLabel converts an upstream fee type code to sentence case for
// display, e.g. "FIXED_FEE" -> "Fixed fee".
func FeeTypeLabel(feeType string) string {
	if feeType == "" {
		return ""
	}
	label := feeTypeLower.String(strings.ReplaceAll(feeType, "_", " "))
	return strings.ToUpper(label[:1]) + label[1:]
}
