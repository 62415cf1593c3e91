// Package search validates submission search filters before they reach the
// Claims API. Malformed input produces field-scoped failures, never an
// error or panic.
package search

import (
	"fmt"
	"strings"

	"github.com/laa-civil/bulkclaim/internal/domain"
)

// Failure kinds reported by the validator.
const (
	InvalidSubmissionPeriod = "invalid_submission_period"
	InvalidAreaOfLaw        = "invalid_area_of_law"
	InvalidSubmissionStatus = "invalid_submission_status"
)

// Field names used in failure reports, matching the form inputs.
const (
	FieldSubmissionPeriod = "submissionPeriod"
	FieldAreaOfLaw        = "areaOfLaw"
	FieldStatus           = "status"
)

// Form holds the raw submission search filter values as posted. Offices are
// pre-filtered by the caller to the authenticated user's authorized set;
// office authorization is never re-derived here.
type Form struct {
	Offices          []string
	SubmissionPeriod string
	AreaOfLaw        string
	Status           string
	Page             int
	Size             int
	Sort             string
}

// FieldError is one field-scoped validation failure.
type FieldError struct {
	Field   string
	Code    string
	Message string
}

// Validator checks search filter values against their allowed sets.
type Validator struct{}

// NewValidator creates a search filter validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate returns every field failure found in the form. Blank filters are
// always accepted; a present value must match its allowed set. The returned
// slice is empty (never nil-checked by callers) when the form is valid.
func (v *Validator) Validate(form Form, available *domain.PeriodSet) []FieldError {
	var failures []FieldError

	if period := strings.TrimSpace(form.SubmissionPeriod); period != "" {
		if !available.Contains(period) {
			failures = append(failures, FieldError{
				Field:   FieldSubmissionPeriod,
				Code:    InvalidSubmissionPeriod,
				Message: fmt.Sprintf("Submission period %q is not available for selection", period),
			})
		}
	}

	if area := strings.TrimSpace(form.AreaOfLaw); area != "" {
		if !domain.AreaOfLaw(area).IsValid() {
			failures = append(failures, FieldError{
				Field:   FieldAreaOfLaw,
				Code:    InvalidAreaOfLaw,
				Message: fmt.Sprintf("%q is not a recognised area of law", area),
			})
		}
	}

	if status := strings.TrimSpace(form.Status); status != "" {
		if !domain.SubmissionStatus(status).IsValid() {
			failures = append(failures, FieldError{
				Field:   FieldStatus,
				Code:    InvalidSubmissionStatus,
				Message: fmt.Sprintf("%q is not a recognised submission status", status),
			})
		}
	}

	return failures
}
