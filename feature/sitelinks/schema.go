package sitelinks

// SheetSitelinks holds one row per sitelink to attach to a campaign.
const SheetSitelinks = "Sitelinks"

// Sitelinks columns. Positional and 0-indexed; this layout is a wire
// contract with the spreadsheet template and must not be reordered.
const (
	colStatus       = 0
	colDelete       = 1
	colCustomerName = 2
	colCampaignName = 3
	colLinkText     = 4
	colFinalURL     = 5
	colDescription1 = 6
	colDescription2 = 7
	colError        = 8
	colResource     = 9
)
