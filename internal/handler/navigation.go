package handler

// =============================================================================
// View Submission Tabs
// =============================================================================

// ViewSubmissionTab selects which panel the submission detail page shows.
// Tab state is stateless per request, carried in the navTab query parameter.
type ViewSubmissionTab string

const (
	TabClaimErrors  ViewSubmissionTab = "CLAIM_ERRORS"
	TabClaimDetails ViewSubmissionTab = "CLAIM_DETAILS"
	TabMatterStarts ViewSubmissionTab = "MATTER_STARTS"
)

// IsValid returns true if the tab is a recognized value.
func (t ViewSubmissionTab) IsValid() bool {
	switch t {
	case TabClaimErrors, TabClaimDetails, TabMatterStarts:
		return true
	}
	return false
}

// ParseSubmissionTab returns the requested tab, defaulting to claim details
// for blank or unrecognized values.
func ParseSubmissionTab(raw string) ViewSubmissionTab {
	tab := ViewSubmissionTab(raw)
	if !tab.IsValid() {
		return TabClaimDetails
	}
	return tab
}

// =============================================================================
// View Claim Tabs
// =============================================================================

// ViewClaimTab selects which panel the claim detail page shows.
type ViewClaimTab string

const (
	TabFeeCalculation ViewClaimTab = "FEE_CALCULATION"
	TabClaimMessages  ViewClaimTab = "CLAIM_MESSAGES"
)

// IsValid returns true if the tab is a recognized value.
func (t ViewClaimTab) IsValid() bool {
	switch t {
	case TabFeeCalculation, TabClaimMessages:
		return true
	}
	return false
}

// ParseClaimTab returns the requested tab, defaulting to the fee
// calculation view for blank or unrecognized values.
func ParseClaimTab(raw string) ViewClaimTab {
	tab := ViewClaimTab(raw)
	if !tab.IsValid() {
		return TabFeeCalculation
	}
	return tab
}
