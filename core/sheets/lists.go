package sheets

import "context"

// List sheets map spreadsheet names to remote identifiers. They are appended
// to by the upload flows when new entities are created, so later runs (and
// other sheets) can reference them by name instead of by resource name.
const (
	// SheetCustomerList maps customer name (col 0) to customer id (col 1).
	SheetCustomerList = "CustomerList"
	// SheetCampaignList maps campaign alias (col 0) to campaign resource
	// name (col 1).
	SheetCampaignList = "CampaignList"
	// SheetAssetGroupList maps asset-group alias (col 0) to group name
	// (col 1) and resource name (col 2).
	SheetAssetGroupList = "AssetGroupList"
)

// loadKeyed reads a list sheet into a key→value map. Rows with a blank key
// or value are skipped; on duplicate keys the first row wins, matching how a
// human would resolve the list by scanning top down.
func loadKeyed(ctx context.Context, c Client, sheetName string, keyCol, valueCol int) (map[string]string, error) {
	rows, err := c.ReadRows(ctx, sheetName)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(rows))
	for _, row := range rows {
		key := row.Get(keyCol)
		value := row.Get(valueCol)
		if key == "" || value == "" {
			continue
		}
		if _, ok := out[key]; ok {
			continue
		}
		out[key] = value
	}
	return out, nil
}

// CustomerIDs returns the customer name → customer id map.
func CustomerIDs(ctx context.Context, c Client) (map[string]string, error) {
	return loadKeyed(ctx, c, SheetCustomerList, 0, 1)
}

// CampaignResources returns the campaign alias → campaign resource map.
func CampaignResources(ctx context.Context, c Client) (map[string]string, error) {
	return loadKeyed(ctx, c, SheetCampaignList, 0, 1)
}

// AssetGroupResources returns the asset-group alias → group resource map.
func AssetGroupResources(ctx context.Context, c Client) (map[string]string, error) {
	return loadKeyed(ctx, c, SheetAssetGroupList, 0, 2)
}
