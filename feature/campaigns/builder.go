package campaigns

import (
	"github.com/google-marketing-solutions/madpmax-sub000/core/ads"
	"github.com/google-marketing-solutions/madpmax-sub000/core/bulk"
)

// buildOperations turns one decoded row into its budget and campaign create
// operations, wired together by temporary ids. Both resources map back to
// the originating row so either failing flags it.
func buildOperations(rec *record, customerID string, alloc *bulk.Allocator, mapping *bulk.RowMapping) []ads.Operation {
	budgetResource := ads.BudgetName(customerID, alloc.Next(bulk.KindBudget))
	campaignResource := ads.CampaignName(customerID, alloc.Next(bulk.KindCampaign))

	ref := bulk.RowRef{Sheet: SheetNewCampaigns, Row: rec.row}
	mapping.Add(budgetResource, ref)
	mapping.Add(campaignResource, ref)

	return []ads.Operation{
		ads.CreateBudgetOp{
			Resource:       budgetResource,
			Name:           rec.campaignName + " budget",
			AmountMicros:   rec.budgetMicros,
			DeliveryMethod: rec.deliveryMethod,
		},
		ads.CreateCampaignOp{
			Resource:        campaignResource,
			Name:            rec.campaignName,
			Budget:          budgetResource,
			Status:          rec.status,
			BiddingStrategy: rec.biddingStrategy,
			TargetCPAMicros: rec.targetCPAMicros,
			TargetROAS:      rec.targetROAS,
			StartDate:       rec.startDate,
			EndDate:         rec.endDate,
		},
	}
}
