// Package assetgroups uploads asset groups and their creative assets.
//
// Two flows share one service. New asset groups come from the NewAssetGroups
// sheet: each pending row is joined by alias with its Assets rows and
// submitted as one batch, with the group create first and the headline and
// description links right behind it, because the platform checks the
// minimum-asset requirement while processing later operations of the same
// batch. Assets for existing groups resolve their group through the
// AssetGroupList sheet and are batched per alias; delete-flagged rows remove
// the recorded asset-group-asset link instead.
//
// Image and logo rows are fetched through the media fetcher and classified by
// orientation to pick the exact asset field type. Rows whose status cell
// already reads UPLOADED are skipped unless delete-flagged.
package assetgroups
