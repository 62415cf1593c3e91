package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestClaimCostsAdditionalPayments(t *testing.T) {
	costs := ClaimCosts{
		NetProfitCosts:     money("100.00"),
		NetDisbursement:    money("50.00"),
		DisbursementVAT:    money("10.00"),
		NetCounselCosts:    money("25.50"),
		TravelWaitingCosts: money("10.25"),
		NetWaitingCosts:    money("4.25"),
	}

	// Profit and disbursement figures never contribute.
	assert.True(t, money("40.00").Equal(costs.AdditionalPayments()))
}

func TestClaimCostsDisbursements(t *testing.T) {
	costs := ClaimCosts{
		NetDisbursement: money("50.00"),
		DisbursementVAT: money("10.50"),
	}

	assert.True(t, money("60.50").Equal(costs.Disbursements()))
}

func TestClaimCostsTotalValue(t *testing.T) {
	tests := []struct {
		name  string
		costs ClaimCosts
		want  string
	}{
		{
			name:  "zero components",
			costs: ClaimCosts{},
			want:  "0",
		},
		{
			name: "all components",
			costs: ClaimCosts{
				NetProfitCosts:     money("100.10"),
				NetDisbursement:    money("20.20"),
				DisbursementVAT:    money("4.04"),
				NetCounselCosts:    money("30.30"),
				TravelWaitingCosts: money("5.05"),
				NetWaitingCosts:    money("1.01"),
			},
			want: "160.70",
		},
		{
			name: "pennies stay exact",
			costs: ClaimCosts{
				NetProfitCosts:  money("0.10"),
				NetDisbursement: money("0.20"),
			},
			want: "0.30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, money(tt.want).Equal(tt.costs.TotalValue()),
				"got %s", tt.costs.TotalValue())
		})
	}
}

func TestClaimClientName(t *testing.T) {
	tests := []struct {
		name  string
		claim Claim
		want  string
	}{
		{
			name:  "primary client full name",
			claim: Claim{ClientForename: "Jane", ClientSurname: "Doe"},
			want:  "Jane Doe",
		},
		{
			name:  "primary client surname only",
			claim: Claim{ClientSurname: "Doe"},
			want:  "Doe",
		},
		{
			name:  "primary client forename only",
			claim: Claim{ClientForename: "Jane"},
			want:  "Jane",
		},
		{
			name:  "falls back to second client",
			claim: Claim{Client2Forename: "Sam", Client2Surname: "Smith"},
			want:  "Sam Smith",
		},
		{
			name: "primary client wins over second client",
			claim: Claim{
				ClientForename:  "Jane",
				ClientSurname:   "Doe",
				Client2Forename: "Sam",
				Client2Surname:  "Smith",
			},
			want: "Jane Doe",
		},
		{
			name:  "no client names",
			claim: Claim{},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.claim.ClientName())
		})
	}
}
