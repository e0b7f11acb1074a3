package bulk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google-marketing-solutions/madpmax-sub000/core/ads"
)

func assetPair(id string, ft ads.AssetFieldType) []ads.Operation {
	asset := "customers/1/assets/" + id
	return []ads.Operation{
		ads.CreateAssetOp{Resource: asset, FieldType: ft, Data: ads.TextAsset{Text: id}},
		ads.LinkAssetOp{AssetGroup: "customers/1/assetGroups/-3000", Asset: asset, FieldType: ft},
	}
}

// A new asset group batch must open with the group create, followed by the
// three headline and two description assets before any other asset link.
func TestOrder_NewAssetGroupBatch(t *testing.T) {
	var ops []ads.Operation

	// Deliberately interleaved insertion order.
	ops = append(ops, assetPair("-4000", ads.FieldLongHeadline)...)
	ops = append(ops, assetPair("-4001", ads.FieldHeadline)...)
	ops = append(ops, assetPair("-4002", ads.FieldDescription)...)
	ops = append(ops, assetPair("-4003", ads.FieldBusinessName)...)
	ops = append(ops, ads.CreateAssetGroupOp{
		Resource: "customers/1/assetGroups/-3000",
		Name:     "Spring",
		Campaign: "customers/1/campaigns/10",
	})
	ops = append(ops, assetPair("-4004", ads.FieldHeadline)...)
	ops = append(ops, assetPair("-4005", ads.FieldDescription)...)
	ops = append(ops, assetPair("-4006", ads.FieldHeadline)...)

	ordered := Order(ops)
	require.Len(t, ordered, len(ops))

	// Group create leads the batch.
	_, ok := ordered[0].(ads.CreateAssetGroupOp)
	assert.True(t, ok, "expected asset group create first, got %T", ordered[0])

	// Link operations follow in headline, description, other order.
	var linkFields []ads.AssetFieldType
	for _, op := range ordered {
		if link, ok := op.(ads.LinkAssetOp); ok {
			linkFields = append(linkFields, link.FieldType)
		}
	}
	assert.Equal(t, []ads.AssetFieldType{
		ads.FieldHeadline, ads.FieldHeadline, ads.FieldHeadline,
		ads.FieldDescription, ads.FieldDescription,
		ads.FieldLongHeadline, ads.FieldBusinessName,
	}, linkFields)

	// Every create stays immediately before its link.
	for i, op := range ordered {
		if create, ok := op.(ads.CreateAssetOp); ok {
			require.Less(t, i+1, len(ordered))
			link, ok := ordered[i+1].(ads.LinkAssetOp)
			require.True(t, ok, "create at %d not followed by link", i)
			assert.Equal(t, create.Resource, link.Asset)
		}
	}
}

func TestOrder_DependencyChain(t *testing.T) {
	ops := []ads.Operation{
		ads.CreateCampaignOp{Resource: "customers/1/campaigns/-2000", Budget: "customers/1/campaignBudgets/-1000"},
		ads.CreateBudgetOp{Resource: "customers/1/campaignBudgets/-1000"},
	}

	ordered := Order(ops)
	_, ok := ordered[0].(ads.CreateBudgetOp)
	assert.True(t, ok, "budget must precede the campaign referencing it")
}

func TestOrder_StableWithinRank(t *testing.T) {
	ops := []ads.Operation{
		ads.RemoveAssetLinkOp{Resource: "customers/1/assetGroupAssets/a"},
		ads.RemoveAssetLinkOp{Resource: "customers/1/assetGroupAssets/b"},
		ads.RemoveAssetLinkOp{Resource: "customers/1/assetGroupAssets/c"},
	}

	ordered := Order(ops)
	assert.Equal(t, ops, ordered)
}
