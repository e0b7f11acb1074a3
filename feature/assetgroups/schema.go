package assetgroups

// Sheet names for the asset-group flow.
const (
	// SheetNewAssetGroups holds one row per asset group to create.
	SheetNewAssetGroups = "NewAssetGroups"
	// SheetAssets holds one row per creative asset, for both new and
	// existing asset groups.
	SheetAssets = "Assets"
)

// Assets columns. Positional and 0-indexed; this layout is a wire contract
// with the spreadsheet template and must not be reordered.
const (
	assetColStatus       = 0
	assetColDelete       = 1
	assetColCustomerName = 2
	assetColCampaignName = 3
	assetColGroupName    = 4
	assetColType         = 5
	assetColText         = 6
	assetColCallToAction = 7
	assetColURL          = 8
	assetColThumbnail    = 9
	assetColError        = 10
	assetColResource     = 11
)

// NewAssetGroups columns.
const (
	groupColAlias          = 0
	groupColCampaignAlias  = 1
	groupColStatus         = 2
	groupColAssetCheck     = 3
	groupColName           = 4
	groupColFinalURL       = 5
	groupColMobileURL      = 6
	groupColPath1          = 7
	groupColPath2          = 8
	groupColCampaignStatus = 9
	groupColMessage        = 10
)

// Asset type literals as written in the Assets sheet.
const (
	typeHeadline     = "HEADLINE"
	typeDescription  = "DESCRIPTION"
	typeLongHeadline = "LONG_HEADLINE"
	typeBusinessName = "BUSINESS_NAME"
	typeImage        = "IMAGE"
	typeLogo         = "LOGO"
	typeVideo        = "YOUTUBE_VIDEO"
	typeCallToAction = "CALL_TO_ACTION"
)

const defaultGroupStatus = "PAUSED"
