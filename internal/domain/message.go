// Package domain contains core business types and interfaces.
//
// This file defines validation messages: system- or rule-generated notes
// attached to a submission or to a specific claim within it.
package domain

import (
	"strings"

	"github.com/google/uuid"
)

// =============================================================================
// Message Source
// =============================================================================

// MessageSource identifies whether messages were requested at submission or
// claim scope. The source is part of the query, never inferred from content.
type MessageSource string

const (
	MessageSourceSubmission MessageSource = "SUBMISSION"
	MessageSourceClaim      MessageSource = "CLAIM"
)

// String returns the string representation of the source.
func (s MessageSource) String() string {
	return string(s)
}

// =============================================================================
// Message Type
// =============================================================================

// Message types recognised for query parameters. The wire value is an open
// string; severity classification happens through IsError, not this set.
const (
	MessageTypeError   = "ERROR"
	MessageTypeWarning = "WARNING"
)

// =============================================================================
// Validation Message
// =============================================================================

// ValidationMessage is a read-only projection of one upstream validation
// message. ClaimID is nil for submission-level messages.
type ValidationMessage struct {
	SubmissionID     uuid.UUID
	ClaimID          *uuid.UUID
	Type             string // Open string, compared loosely against "error"
	Source           MessageSource
	DisplayMessage   string
	TechnicalMessage string
}

// IsError classifies the message's severity. The upstream type field is a
// free string, so the comparison is case-insensitive against "error";
// anything else (warnings included) is non-error.
func (m *ValidationMessage) IsError() bool {
	return strings.EqualFold(m.Type, MessageTypeError)
}

// IsSubmissionScoped returns true for messages with no claim reference.
func (m *ValidationMessage) IsSubmissionScoped() bool {
	return m.ClaimID == nil
}
