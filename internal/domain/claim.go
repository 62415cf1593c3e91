// Package domain contains core business types and interfaces.
//
// This file defines the Claim domain type: a single billable item within a
// submission, carrying the monetary component fields the cost aggregation
// is built from.
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Claim is a read-only projection of one billable item in a submission.
type Claim struct {
	ID           uuid.UUID
	SubmissionID uuid.UUID
	LineNumber   int // Page-local display sequence assigned upstream

	UniqueFileNumber   string
	UniqueClientNumber string
	ClientForename     string
	ClientSurname      string
	Client2Forename    string
	Client2Surname     string

	MatterTypeCode         string
	CategoryCode           string
	FeeType                string
	FeeCode                string
	ConcludedOrClaimedDate time.Time

	Costs ClaimCosts
}

// ClaimCosts holds the monetary components of a claim. All arithmetic on
// these fields is decimal; binary floating point never touches money.
type ClaimCosts struct {
	NetProfitCosts     decimal.Decimal
	NetDisbursement    decimal.Decimal
	DisbursementVAT    decimal.Decimal
	NetCounselCosts    decimal.Decimal
	TravelWaitingCosts decimal.Decimal
	NetWaitingCosts    decimal.Decimal
}

// AdditionalPayments returns counsel + travel/waiting + waiting costs.
// Profit and disbursement amounts are excluded.
func (c ClaimCosts) AdditionalPayments() decimal.Decimal {
	return c.NetCounselCosts.Add(c.TravelWaitingCosts).Add(c.NetWaitingCosts)
}

// Disbursements returns the net disbursement amount including VAT.
func (c ClaimCosts) Disbursements() decimal.Decimal {
	return c.NetDisbursement.Add(c.DisbursementVAT)
}

// TotalValue recomputes the claim's value from its components. A total
// supplied by the API is never trusted over this sum.
func (c ClaimCosts) TotalValue() decimal.Decimal {
	return c.NetProfitCosts.
		Add(c.NetDisbursement).
		Add(c.DisbursementVAT).
		Add(c.NetCounselCosts).
		Add(c.TravelWaitingCosts).
		Add(c.NetWaitingCosts)
}

// ClientName returns the display name for the claim's client, preferring
// the primary client and falling back to the second named client.
func (cl *Claim) ClientName() string {
	forename, surname := cl.ClientForename, cl.ClientSurname
	if forename == "" && surname == "" {
		forename, surname = cl.Client2Forename, cl.Client2Surname
	}
	if forename == "" && surname == "" {
		return ""
	}
	if forename == "" {
		return surname
	}
	if surname == "" {
		return forename
	}
	return forename + " " + surname
}
