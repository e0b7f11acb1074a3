package campaigns

import (
	"fmt"
	"strconv"

	"github.com/google-marketing-solutions/madpmax-sub000/core/ads"
	"github.com/google-marketing-solutions/madpmax-sub000/core/bulk"
	"github.com/google-marketing-solutions/madpmax-sub000/core/sheets"
	"github.com/google-marketing-solutions/madpmax-sub000/core/utils"
)

// record is one decoded NewCampaigns row, with money already in micros and
// dates in the YYYYMMDD wire form.
type record struct {
	row             int
	customerName    string
	campaignName    string
	budgetMicros    int64
	deliveryMethod  string
	status          string
	biddingStrategy string
	targetROAS      float64
	targetCPAMicros int64
	startDate       string
	endDate         string
}

// alias is the composite key correlating this campaign across sheets.
func (r *record) alias() string {
	return sheets.Alias(r.customerName, r.campaignName)
}

// decodeRow parses one NewCampaigns row. It returns (nil, nil) when the row
// was already uploaded and must be skipped on this run.
func decodeRow(row sheets.Row, index int) (*record, error) {
	if row.Get(colStatus) == bulk.StatusUploaded {
		return nil, nil
	}

	rec := &record{
		row:             index,
		customerName:    row.Get(colCustomerName),
		campaignName:    row.Get(colCampaignName),
		deliveryMethod:  row.Get(colDeliveryMethod),
		status:          row.Get(colCampaignStatus),
		biddingStrategy: row.Get(colBiddingStrategy),
	}

	if rec.customerName == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if rec.campaignName == "" {
		return nil, fmt.Errorf("campaign name is required")
	}
	if rec.deliveryMethod == "" {
		rec.deliveryMethod = defaultDeliveryMethod
	}
	if rec.status == "" {
		rec.status = defaultCampaignStatus
	}

	budget, err := utils.ToMicros(row.Get(colBudget))
	if err != nil {
		return nil, fmt.Errorf("budget: %w", err)
	}
	rec.budgetMicros = budget

	switch rec.biddingStrategy {
	case ads.BiddingMaximizeConversions:
		if row.IsBlank(colTargetCPA) {
			return nil, fmt.Errorf("target cpa is required for %s", ads.BiddingMaximizeConversions)
		}
		cpa, err := utils.ToMicros(row.Get(colTargetCPA))
		if err != nil {
			return nil, fmt.Errorf("target cpa: %w", err)
		}
		rec.targetCPAMicros = cpa
	case ads.BiddingMaximizeConversionValue:
		if row.IsBlank(colTargetROAS) {
			return nil, fmt.Errorf("target roas is required for %s", ads.BiddingMaximizeConversionValue)
		}
		roas, err := strconv.ParseFloat(row.Get(colTargetROAS), 64)
		if err != nil {
			return nil, fmt.Errorf("target roas: invalid value %q", row.Get(colTargetROAS))
		}
		rec.targetROAS = roas
	case "":
		return nil, fmt.Errorf("bidding strategy is required")
	default:
		return nil, fmt.Errorf("unknown bidding strategy %q", rec.biddingStrategy)
	}

	start, err := utils.FormatDate(row.Get(colStartDate))
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}
	rec.startDate = start

	end, err := utils.FormatDate(row.Get(colEndDate))
	if err != nil {
		return nil, fmt.Errorf("end date: %w", err)
	}
	rec.endDate = end

	return rec, nil
}
