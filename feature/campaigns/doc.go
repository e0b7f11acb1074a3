// Package campaigns uploads Performance Max campaigns from the NewCampaigns
// sheet.
//
// Each pending row becomes a campaign budget and a campaign create operation
// wired together by temporary ids, batched per customer account. After the
// mutate call the per-row status is written back to the sheet and freshly
// created campaigns are appended to the CampaignList sheet so asset-group and
// sitelink rows can reference them by name.
//
// Rows whose status cell already reads UPLOADED are skipped, which makes
// re-running the flow after a partial failure safe.
package campaigns
