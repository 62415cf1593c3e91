package claims

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/laa-civil/bulkclaim/internal/domain"
)

// Wire shapes for the Claims API. Money fields decode through
// decimal.Decimal so an unparseable amount fails the decode (and therefore
// the whole page) instead of silently zeroing a component.

type uploadResponse struct {
	BulkSubmissionID uuid.UUID `json:"bulk_submission_id"`
	SubmissionID     uuid.UUID `json:"submission_id"`
}

type submissionsResultSet struct {
	Content       []submissionFields `json:"content"`
	Number        int                `json:"number"`
	Size          int                `json:"size"`
	TotalElements int                `json:"total_elements"`
	TotalPages    int                `json:"total_pages"`
}

type submissionFields struct {
	SubmissionID        uuid.UUID       `json:"submission_id"`
	Status              string          `json:"status"`
	SubmissionPeriod    string          `json:"submission_period"`
	OfficeAccountNumber string          `json:"office_account_number"`
	AreaOfLaw           string          `json:"area_of_law"`
	Submitted           time.Time       `json:"submitted"`
	SubmissionValue     decimal.Decimal `json:"submission_value"`
	NumberOfClaims      int             `json:"number_of_claims"`
	FixedFeeTotal       decimal.Decimal `json:"fixed_fee_total"`
	ClaimIDs            []uuid.UUID     `json:"claim_ids,omitempty"`
}

func (f submissionFields) toDomain() domain.Submission {
	return domain.Submission{
		ID:             f.SubmissionID,
		Status:         domain.SubmissionStatus(f.Status),
		Period:         f.SubmissionPeriod,
		OfficeAccount:  f.OfficeAccountNumber,
		AreaOfLaw:      domain.AreaOfLaw(f.AreaOfLaw),
		Submitted:      f.Submitted,
		TotalValue:     f.SubmissionValue,
		NumberOfClaims: f.NumberOfClaims,
		FixedFeeTotal:  f.FixedFeeTotal,
		ClaimIDs:       f.ClaimIDs,
	}
}

type claimsResultSet struct {
	Content       []claimFields `json:"content"`
	Number        int           `json:"number"`
	Size          int           `json:"size"`
	TotalElements int           `json:"total_elements"`
	TotalPages    int           `json:"total_pages"`
}

type claimFields struct {
	ClaimID            uuid.UUID       `json:"claim_id"`
	SubmissionID       uuid.UUID       `json:"submission_id"`
	LineNumber         int             `json:"line_number"`
	UniqueFileNumber   string          `json:"unique_file_number"`
	UniqueClientNumber string          `json:"unique_client_number"`
	ClientForename     string          `json:"client_forename"`
	ClientSurname      string          `json:"client_surname"`
	Client2Forename    string          `json:"client_2_forename"`
	Client2Surname     string          `json:"client_2_surname"`
	MatterTypeCode     string          `json:"matter_type_code"`
	CategoryCode       string          `json:"category_code"`
	FeeType            string          `json:"fee_type"`
	FeeCode            string          `json:"fee_code"`
	CaseConcludedDate  time.Time       `json:"case_concluded_date"`
	NetProfitCosts     decimal.Decimal `json:"net_profit_costs_amount"`
	NetDisbursement    decimal.Decimal `json:"net_disbursement_amount"`
	DisbursementVAT    decimal.Decimal `json:"disbursements_vat_amount"`
	NetCounselCosts    decimal.Decimal `json:"net_counsel_costs_amount"`
	TravelWaitingCosts decimal.Decimal `json:"travel_waiting_costs_amount"`
	NetWaitingCosts    decimal.Decimal `json:"net_waiting_costs_amount"`
}

func (f claimFields) toDomain() domain.Claim {
	return domain.Claim{
		ID:                     f.ClaimID,
		SubmissionID:           f.SubmissionID,
		LineNumber:             f.LineNumber,
		UniqueFileNumber:       f.UniqueFileNumber,
		UniqueClientNumber:     f.UniqueClientNumber,
		ClientForename:         f.ClientForename,
		ClientSurname:          f.ClientSurname,
		Client2Forename:        f.Client2Forename,
		Client2Surname:         f.Client2Surname,
		MatterTypeCode:         f.MatterTypeCode,
		CategoryCode:           f.CategoryCode,
		FeeType:                f.FeeType,
		FeeCode:                f.FeeCode,
		ConcludedOrClaimedDate: f.CaseConcludedDate,
		Costs: domain.ClaimCosts{
			NetProfitCosts:     f.NetProfitCosts,
			NetDisbursement:    f.NetDisbursement,
			DisbursementVAT:    f.DisbursementVAT,
			NetCounselCosts:    f.NetCounselCosts,
			TravelWaitingCosts: f.TravelWaitingCosts,
			NetWaitingCosts:    f.NetWaitingCosts,
		},
	}
}

type matterStartResultSet struct {
	MatterStarts []matterStartFields `json:"matter_starts"`
}

type matterStartFields struct {
	MatterStartID uuid.UUID `json:"matter_start_id"`
	SubmissionID  uuid.UUID `json:"submission_id"`
	Description   string    `json:"description"`
	CategoryCode  string    `json:"category_code"`
}

func (f matterStartFields) toDomain() domain.MatterStart {
	return domain.MatterStart{
		ID:           f.MatterStartID,
		SubmissionID: f.SubmissionID,
		Description:  f.Description,
		CategoryCode: f.CategoryCode,
	}
}

type validationMessagesResponse struct {
	Content       []validationMessageFields `json:"content"`
	Number        int                       `json:"number"`
	Size          int                       `json:"size"`
	TotalElements int                       `json:"total_elements"`
	TotalPages    int                       `json:"total_pages"`
}

type validationMessageFields struct {
	SubmissionID     uuid.UUID  `json:"submission_id"`
	ClaimID          *uuid.UUID `json:"claim_id,omitempty"`
	Type             string     `json:"type"`
	Source           string     `json:"source"`
	DisplayMessage   string     `json:"display_message"`
	TechnicalMessage string     `json:"technical_message"`
}

func (f validationMessageFields) toDomain() domain.ValidationMessage {
	return domain.ValidationMessage{
		SubmissionID:     f.SubmissionID,
		ClaimID:          f.ClaimID,
		Type:             f.Type,
		Source:           domain.MessageSource(f.Source),
		DisplayMessage:   f.DisplayMessage,
		TechnicalMessage: f.TechnicalMessage,
	}
}

type apiError struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}
