package campaigns

// SheetNewCampaigns holds one row per campaign to create.
const SheetNewCampaigns = "NewCampaigns"

// NewCampaigns columns. Positional and 0-indexed; this layout is a wire
// contract with the spreadsheet template and must not be reordered.
const (
	colStatus          = 0
	colCustomerName    = 1
	colCampaignName    = 2
	colBudget          = 3
	colDeliveryMethod  = 4
	colCampaignStatus  = 5
	colBiddingStrategy = 6
	colTargetROAS      = 7
	colTargetCPA       = 8
	colStartDate       = 9
	colEndDate         = 10
	colError           = 11
)

// Defaults applied when the optional columns are blank.
const (
	defaultDeliveryMethod = "STANDARD"
	defaultCampaignStatus = "PAUSED"
)
