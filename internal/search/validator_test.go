package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/laa-civil/bulkclaim/internal/domain"
)

func availablePeriods() *domain.PeriodSet {
	return domain.AvailablePeriods(
		domain.Period{Year: 2025, Month: time.January},
		time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
	)
}

func TestValidate(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name      string
		form      Form
		wantCodes []string
	}{
		{
			name: "empty filters are valid",
			form: Form{},
		},
		{
			name: "all filters valid",
			form: Form{
				SubmissionPeriod: "MAR-2025",
				AreaOfLaw:        "LEGAL_HELP",
				Status:           "VALIDATION_SUCCEEDED",
			},
		},
		{
			name: "lower case period accepted",
			form: Form{SubmissionPeriod: "mar-2025"},
		},
		{
			name:      "period outside available range",
			form:      Form{SubmissionPeriod: "JUN-2025"},
			wantCodes: []string{InvalidSubmissionPeriod},
		},
		{
			name:      "garbage period",
			form:      Form{SubmissionPeriod: "not-a-period"},
			wantCodes: []string{InvalidSubmissionPeriod},
		},
		{
			name:      "unknown area of law",
			form:      Form{AreaOfLaw: "CONVEYANCING"},
			wantCodes: []string{InvalidAreaOfLaw},
		},
		{
			name:      "unknown status",
			form:      Form{Status: "PENDING"},
			wantCodes: []string{InvalidSubmissionStatus},
		},
		{
			name: "multiple failures reported together",
			form: Form{
				SubmissionPeriod: "DEC-2030",
				AreaOfLaw:        "nope",
				Status:           "nope",
			},
			wantCodes: []string{InvalidSubmissionPeriod, InvalidAreaOfLaw, InvalidSubmissionStatus},
		},
		{
			name: "whitespace-only filters are treated as blank",
			form: Form{
				SubmissionPeriod: "   ",
				AreaOfLaw:        " ",
				Status:           "\t",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failures := validator.Validate(tt.form, availablePeriods())

			var codes []string
			for _, f := range failures {
				codes = append(codes, f.Code)
			}
			assert.Equal(t, tt.wantCodes, codes)
		})
	}
}

func TestValidateFieldNames(t *testing.T) {
	validator := NewValidator()

	failures := validator.Validate(Form{
		SubmissionPeriod: "DEC-2030",
		AreaOfLaw:        "nope",
		Status:           "nope",
	}, availablePeriods())

	assert.Len(t, failures, 3)
	assert.Equal(t, FieldSubmissionPeriod, failures[0].Field)
	assert.Equal(t, FieldAreaOfLaw, failures[1].Field)
	assert.Equal(t, FieldStatus, failures[2].Field)
}
