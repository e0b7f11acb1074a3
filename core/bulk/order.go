package bulk

import (
	"sort"

	"github.com/google-marketing-solutions/madpmax-sub000/core/ads"
)

// Operation ranks. Creates that others depend on come first; for a new asset
// group the platform checks the minimum-asset requirement while processing
// later operations of the same batch, so headline and description assets
// must precede every other asset link.
const (
	rankBudget      = 0
	rankCampaign    = 1
	rankAssetGroup  = 2
	rankHeadline    = 3
	rankDescription = 4
	rankOtherAsset  = 5
	rankRemoval     = 6
)

func fieldRank(ft ads.AssetFieldType) int {
	switch ft {
	case ads.FieldHeadline:
		return rankHeadline
	case ads.FieldDescription:
		return rankDescription
	default:
		return rankOtherAsset
	}
}

func operationRank(op ads.Operation) int {
	switch v := op.(type) {
	case ads.CreateBudgetOp:
		return rankBudget
	case ads.CreateCampaignOp:
		return rankCampaign
	case ads.CreateAssetGroupOp:
		return rankAssetGroup
	case ads.CreateAssetOp:
		return fieldRank(v.FieldType)
	case ads.LinkAssetOp:
		return fieldRank(v.FieldType)
	case ads.RemoveAssetLinkOp, ads.RemoveSitelinkOp:
		return rankRemoval
	default:
		return rankOtherAsset
	}
}

// Order arranges a batch into valid submission order: budget, campaign,
// asset-group creates, then headline assets, then description assets, then
// everything else, with removals last. The sort is stable, so an asset's
// create operation stays immediately before its link operation and rows keep
// their relative order within a rank.
func Order(ops []ads.Operation) []ads.Operation {
	ordered := make([]ads.Operation, len(ops))
	copy(ordered, ops)
	sort.SliceStable(ordered, func(i, j int) bool {
		return operationRank(ordered[i]) < operationRank(ordered[j])
	})
	return ordered
}
