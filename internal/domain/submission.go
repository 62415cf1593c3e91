// Package domain contains core business types and interfaces.
//
// This file defines the Submission domain type: one bulk-claim intake batch
// fetched from the Claims API, together with its status and area-of-law
// classifications.
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Submission Status
// =============================================================================

// SubmissionStatus represents the validation lifecycle state of a submission
// as reported by the Claims API.
type SubmissionStatus string

const (
	// SubmissionStatusCreated indicates the bulk file has been accepted but
	// not yet queued for validation.
	SubmissionStatusCreated SubmissionStatus = "CREATED"

	// SubmissionStatusReadyForValidation indicates the submission is queued.
	SubmissionStatusReadyForValidation SubmissionStatus = "READY_FOR_VALIDATION"

	// SubmissionStatusValidationInProgress indicates validation is running.
	SubmissionStatusValidationInProgress SubmissionStatus = "VALIDATION_IN_PROGRESS"

	// SubmissionStatusValidationSucceeded indicates every claim passed.
	SubmissionStatusValidationSucceeded SubmissionStatus = "VALIDATION_SUCCEEDED"

	// SubmissionStatusValidationFailed indicates at least one claim failed.
	SubmissionStatusValidationFailed SubmissionStatus = "VALIDATION_FAILED"
)

// String returns the string representation of the status.
func (s SubmissionStatus) String() string {
	return string(s)
}

// IsValid returns true if the status is a recognized value.
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionStatusCreated, SubmissionStatusReadyForValidation,
		SubmissionStatusValidationInProgress, SubmissionStatusValidationSucceeded,
		SubmissionStatusValidationFailed:
		return true
	}
	return false
}

// IsSettled returns true once validation has finished, successfully or not.
func (s SubmissionStatus) IsSettled() bool {
	return s == SubmissionStatusValidationSucceeded || s == SubmissionStatusValidationFailed
}

// SubmissionStatuses returns every recognized status, in lifecycle order.
func SubmissionStatuses() []SubmissionStatus {
	return []SubmissionStatus{
		SubmissionStatusCreated,
		SubmissionStatusReadyForValidation,
		SubmissionStatusValidationInProgress,
		SubmissionStatusValidationSucceeded,
		SubmissionStatusValidationFailed,
	}
}

// =============================================================================
// Area of Law
// =============================================================================

// AreaOfLaw is the closed-set classification of the legal domain a
// submission belongs to.
type AreaOfLaw string

const (
	AreaOfLawLegalHelp  AreaOfLaw = "LEGAL_HELP"
	AreaOfLawCrimeLower AreaOfLaw = "CRIME_LOWER"
	AreaOfLawMediation  AreaOfLaw = "MEDIATION"
)

// String returns the string representation of the area of law.
func (a AreaOfLaw) String() string {
	return string(a)
}

// IsValid returns true if the area of law is a recognized value.
func (a AreaOfLaw) IsValid() bool {
	switch a {
	case AreaOfLawLegalHelp, AreaOfLawCrimeLower, AreaOfLawMediation:
		return true
	}
	return false
}

// AreasOfLaw returns every recognized area of law.
func AreasOfLaw() []AreaOfLaw {
	return []AreaOfLaw{AreaOfLawLegalHelp, AreaOfLawCrimeLower, AreaOfLawMediation}
}

// =============================================================================
// Submission Domain Type
// =============================================================================

// Submission is a read-only projection of one bulk-claim intake batch.
// Constructed fresh per request from the Claims API and discarded once the
// view model is produced; there is no cross-request caching.
type Submission struct {
	ID            uuid.UUID
	Status        SubmissionStatus
	Period        string // MMM-YYYY token as supplied by the API
	OfficeAccount string
	AreaOfLaw     AreaOfLaw
	Submitted     time.Time
	TotalValue    decimal.Decimal

	// Totals reported alongside the submission, used by the detail views
	NumberOfClaims int
	FixedFeeTotal  decimal.Decimal // Separately sourced, never derived from claims

	// Claim references attached to the submission detail response
	ClaimIDs []uuid.UUID
}

// PeriodLabel returns the human-readable reporting month, or the raw token
// if it does not parse. Listings must never fail over a display label.
func (s *Submission) PeriodLabel() string {
	p, err := ParsePeriod(s.Period)
	if err != nil {
		return s.Period
	}
	return p.Label()
}

// PeriodSortKey returns the sortable YYYYMM integer for the submission's
// period, or 0 if the period token is malformed.
func (s *Submission) PeriodSortKey() int {
	p, err := ParsePeriod(s.Period)
	if err != nil {
		return 0
	}
	return p.SortKey()
}
