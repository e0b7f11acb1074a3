package sitelinks

import (
	"strings"

	"github.com/google-marketing-solutions/madpmax-sub000/core/ads"
	"github.com/google-marketing-solutions/madpmax-sub000/core/bulk"
)

// buildOperations turns one decoded row into its sitelink asset create and
// the campaign link binding it. The asset resource maps to the row; the
// campaign side of the link carries no row of its own.
func buildOperations(rec *record, customerID, campaignResource string, alloc *bulk.Allocator, mapping *bulk.RowMapping) []ads.Operation {
	assetResource := ads.AssetName(customerID, alloc.Next(bulk.KindSitelink))
	mapping.Add(assetResource, bulk.RowRef{Sheet: SheetSitelinks, Row: rec.row})

	return []ads.Operation{
		ads.CreateAssetOp{
			Resource:  assetResource,
			FieldType: ads.FieldSitelink,
			Data: ads.SitelinkAsset{
				LinkText:     rec.linkText,
				Description1: rec.description1,
				Description2: rec.description2,
				FinalURL:     rec.finalURL,
			},
		},
		ads.LinkSitelinkOp{
			Campaign: campaignResource,
			Asset:    assetResource,
		},
	}
}

// buildRemoval turns a delete-flagged row into the removal of its recorded
// campaign-asset link.
func buildRemoval(rec *record, mapping *bulk.RowMapping) ads.Operation {
	mapping.Add(rec.resource, bulk.RowRef{Sheet: SheetSitelinks, Row: rec.row})
	return ads.RemoveSitelinkOp{Resource: rec.resource}
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
