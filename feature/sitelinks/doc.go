// Package sitelinks uploads sitelink assets and links them to campaigns.
//
// Each pending Sitelinks row becomes a sitelink asset create plus a
// campaign-asset link, wired by a temporary id and batched per customer
// account. Delete-flagged rows remove the recorded campaign-asset link
// instead. Campaigns are resolved by name through the CampaignList sheet.
//
// Rows whose status cell already reads UPLOADED are skipped unless
// delete-flagged.
package sitelinks
