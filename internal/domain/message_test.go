package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidationMessageIsError(t *testing.T) {
	tests := []struct {
		name        string
		messageType string
		want        bool
	}{
		{"upper case error", "ERROR", true},
		{"lower case error", "error", true},
		{"mixed case error", "Error", true},
		{"warning", "WARNING", false},
		{"info", "INFO", false},
		{"empty type", "", false},
		{"error with suffix", "ERROR_FATAL", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message := ValidationMessage{Type: tt.messageType}
			assert.Equal(t, tt.want, message.IsError())
		})
	}
}

func TestValidationMessageIsSubmissionScoped(t *testing.T) {
	claimID := uuid.New()

	scoped := ValidationMessage{ClaimID: nil}
	assert.True(t, scoped.IsSubmissionScoped())

	claimLevel := ValidationMessage{ClaimID: &claimID}
	assert.False(t, claimLevel.IsSubmissionScoped())
}
