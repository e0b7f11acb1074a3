package ads

// AssetFieldType identifies the placement of an asset within an asset group
// or campaign. Values match the Ads API enum names.
type AssetFieldType string

const (
	FieldHeadline               AssetFieldType = "HEADLINE"
	FieldDescription            AssetFieldType = "DESCRIPTION"
	FieldLongHeadline           AssetFieldType = "LONG_HEADLINE"
	FieldBusinessName           AssetFieldType = "BUSINESS_NAME"
	FieldMarketingImage         AssetFieldType = "MARKETING_IMAGE"
	FieldSquareMarketingImage   AssetFieldType = "SQUARE_MARKETING_IMAGE"
	FieldPortraitMarketingImage AssetFieldType = "PORTRAIT_MARKETING_IMAGE"
	FieldLogo                   AssetFieldType = "LOGO"
	FieldLandscapeLogo          AssetFieldType = "LANDSCAPE_LOGO"
	FieldYouTubeVideo           AssetFieldType = "YOUTUBE_VIDEO"
	FieldCallToAction           AssetFieldType = "CALL_TO_ACTION_SELECTION"
	FieldSitelink               AssetFieldType = "SITELINK"
)

// Bidding strategy selectors as written in the NewCampaigns sheet.
const (
	BiddingMaximizeConversions     = "MaximizeConversions"
	BiddingMaximizeConversionValue = "MaximizeConversionValue"
)

// Operation is the tagged union over all mutate operation kinds. Exactly one
// concrete type exists per kind; consumers switch on the variant instead of
// probing optional sub-fields.
type Operation interface {
	// Kind returns a short name for the operation variant, used in logs.
	Kind() string

	isOperation()
}

// CreateBudgetOp creates a campaign budget.
type CreateBudgetOp struct {
	// Resource is the (temporary) resource name assigned to the budget.
	Resource string
	// Name is the display name of the budget.
	Name string
	// AmountMicros is the daily budget in micro-currency units.
	AmountMicros int64
	// DeliveryMethod is STANDARD or ACCELERATED.
	DeliveryMethod string
}

func (CreateBudgetOp) Kind() string { return "campaign_budget" }
func (CreateBudgetOp) isOperation() {}

// CreateCampaignOp creates a Performance Max campaign referencing a budget
// (usually by temporary resource name within the same batch).
type CreateCampaignOp struct {
	Resource string
	Name     string
	// Budget is the resource name of the campaign budget.
	Budget string
	// Status is PAUSED or ENABLED.
	Status string
	// BiddingStrategy selects between MaximizeConversions and
	// MaximizeConversionValue.
	BiddingStrategy string
	// TargetCPAMicros is set for MaximizeConversions.
	TargetCPAMicros int64
	// TargetROAS is set for MaximizeConversionValue.
	TargetROAS float64
	// StartDate and EndDate are YYYYMMDD.
	StartDate string
	EndDate   string
}

func (CreateCampaignOp) Kind() string { return "campaign" }
func (CreateCampaignOp) isOperation() {}

// CreateAssetGroupOp creates an asset group under an existing (or
// temp-referenced) campaign.
type CreateAssetGroupOp struct {
	Resource        string
	Name            string
	Campaign        string
	FinalURLs       []string
	FinalMobileURLs []string
	Path1           string
	Path2           string
	Status          string
}

func (CreateAssetGroupOp) Kind() string { return "asset_group" }
func (CreateAssetGroupOp) isOperation() {}

// AssetData is the tagged union over asset payload kinds.
type AssetData interface {
	isAssetData()
}

// TextAsset is a headline, description, long headline or business name.
type TextAsset struct {
	Text string
}

func (TextAsset) isAssetData() {}

// ImageAsset carries raw image bytes fetched from the media collaborator.
type ImageAsset struct {
	Name string
	Data []byte
}

func (ImageAsset) isAssetData() {}

// YouTubeVideoAsset references a video by its platform id.
type YouTubeVideoAsset struct {
	Name    string
	VideoID string
}

func (YouTubeVideoAsset) isAssetData() {}

// CallToActionAsset selects a call-to-action type (normalized enum value).
type CallToActionAsset struct {
	Selection string
}

func (CallToActionAsset) isAssetData() {}

// SitelinkAsset is a sitelink with its link text, descriptions and final URL.
type SitelinkAsset struct {
	LinkText     string
	Description1 string
	Description2 string
	FinalURL     string
}

func (SitelinkAsset) isAssetData() {}

// CreateAssetOp creates an asset of any payload kind. FieldType records where
// the asset will be linked; it drives batch ordering and reporting but is not
// part of the asset itself on the wire.
type CreateAssetOp struct {
	Resource  string
	FieldType AssetFieldType
	Data      AssetData
}

func (CreateAssetOp) Kind() string { return "asset" }
func (CreateAssetOp) isOperation() {}

// LinkAssetOp links an asset to an asset group under a field type.
type LinkAssetOp struct {
	AssetGroup string
	Asset      string
	FieldType  AssetFieldType
}

func (LinkAssetOp) Kind() string { return "asset_group_asset" }
func (LinkAssetOp) isOperation() {}

// RemoveAssetLinkOp removes an asset-group-asset link by its resource name.
type RemoveAssetLinkOp struct {
	Resource string
}

func (RemoveAssetLinkOp) Kind() string { return "asset_group_asset_removal" }
func (RemoveAssetLinkOp) isOperation() {}

// LinkSitelinkOp links a sitelink asset to a campaign.
type LinkSitelinkOp struct {
	Campaign string
	Asset    string
}

func (LinkSitelinkOp) Kind() string { return "campaign_asset" }
func (LinkSitelinkOp) isOperation() {}

// RemoveSitelinkOp removes a campaign-asset link by its resource name.
type RemoveSitelinkOp struct {
	Resource string
}

func (RemoveSitelinkOp) Kind() string { return "campaign_asset_removal" }
func (RemoveSitelinkOp) isOperation() {}
