package domain

import "github.com/google/uuid"

// MatterStart records the initiation of one legal matter within a
// submission. Each record contributes a count of one toward the tally for
// its description/category pair.
type MatterStart struct {
	ID           uuid.UUID
	SubmissionID uuid.UUID
	Description  string
	CategoryCode string
}
