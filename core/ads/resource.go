package ads

import "fmt"

// Resource name builders. Temporary (negative) ids produce provisional names
// that the API resolves once the creating operation in the same batch
// succeeds.

// BudgetName returns the resource name for a campaign budget.
func BudgetName(customerID string, id int64) string {
	return fmt.Sprintf("customers/%s/campaignBudgets/%d", customerID, id)
}

// CampaignName returns the resource name for a campaign.
func CampaignName(customerID string, id int64) string {
	return fmt.Sprintf("customers/%s/campaigns/%d", customerID, id)
}

// AssetGroupName returns the resource name for an asset group.
func AssetGroupName(customerID string, id int64) string {
	return fmt.Sprintf("customers/%s/assetGroups/%d", customerID, id)
}

// AssetName returns the resource name for an asset.
func AssetName(customerID string, id int64) string {
	return fmt.Sprintf("customers/%s/assets/%d", customerID, id)
}
