package assetgroups

import (
	"strings"

	"github.com/google-marketing-solutions/madpmax-sub000/core/ads"
	"github.com/google-marketing-solutions/madpmax-sub000/core/bulk"
)

// buildGroupCreate turns a decoded NewAssetGroups row into its create
// operation and returns the group's temporary resource name.
func buildGroupCreate(rec *groupRecord, customerID, campaignResource string, alloc *bulk.Allocator, mapping *bulk.RowMapping) (ads.Operation, string) {
	groupResource := ads.AssetGroupName(customerID, alloc.Next(bulk.KindAssetGroup))
	mapping.Add(groupResource, bulk.RowRef{Sheet: SheetNewAssetGroups, Row: rec.row})

	var mobileURLs []string
	if rec.mobileURL != "" {
		mobileURLs = []string{rec.mobileURL}
	}

	return ads.CreateAssetGroupOp{
		Resource:        groupResource,
		Name:            rec.name,
		Campaign:        campaignResource,
		FinalURLs:       []string{rec.finalURL},
		FinalMobileURLs: mobileURLs,
		Path1:           rec.path1,
		Path2:           rec.path2,
		Status:          rec.status,
	}, groupResource
}

// buildAssetPair turns one asset payload into its create operation and the
// link binding it to the asset group. The asset resource maps to the asset's
// own row; the group resource already maps to the group's row(s), so a link
// failure can flag both sides.
func buildAssetPair(rec *assetRecord, data ads.AssetData, fieldType ads.AssetFieldType, customerID, groupResource string, alloc *bulk.Allocator, mapping *bulk.RowMapping) []ads.Operation {
	assetResource := ads.AssetName(customerID, alloc.Next(bulk.KindAsset))
	mapping.Add(assetResource, bulk.RowRef{Sheet: SheetAssets, Row: rec.row})

	return []ads.Operation{
		ads.CreateAssetOp{
			Resource:  assetResource,
			FieldType: fieldType,
			Data:      data,
		},
		ads.LinkAssetOp{
			AssetGroup: groupResource,
			Asset:      assetResource,
			FieldType:  fieldType,
		},
	}
}

// buildRemoval turns a delete-flagged asset row into the removal of its
// recorded asset-group-asset link.
func buildRemoval(rec *assetRecord, mapping *bulk.RowMapping) ads.Operation {
	mapping.Add(rec.resource, bulk.RowRef{Sheet: SheetAssets, Row: rec.row})
	return ads.RemoveAssetLinkOp{Resource: rec.resource}
}

// customerIDFromResource extracts the customer id out of a resource name of
// the form customers/<id>/....
func customerIDFromResource(resource string) string {
	parts := strings.Split(resource, "/")
	if len(parts) < 2 || parts[0] != "customers" {
		return ""
	}
	return parts[1]
}
