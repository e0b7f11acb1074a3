package assetgroups

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google-marketing-solutions/madpmax-sub000/core/ads"
	"github.com/google-marketing-solutions/madpmax-sub000/core/media"
)

// ErrUnsupportedAssetShape marks an image whose orientation has no matching
// asset field type, currently only portrait logos.
var ErrUnsupportedAssetShape = errors.New("unsupported image shape")

// callToActionTypes are the selections accepted by the platform, after
// normalization.
var callToActionTypes = map[string]bool{
	"LEARN_MORE": true,
	"GET_QUOTE":  true,
	"APPLY_NOW":  true,
	"SIGN_UP":    true,
	"CONTACT_US": true,
	"SUBSCRIBE":  true,
	"DOWNLOAD":   true,
	"BOOK_NOW":   true,
	"SHOP_NOW":   true,
	"BUY_NOW":    true,
	"DONATE_NOW": true,
	"ORDER_NOW":  true,
	"PLAY_NOW":   true,
	"SEE_MORE":   true,
	"START_NOW":  true,
	"VISIT_SITE": true,
	"WATCH_NOW":  true,
}

// textFieldTypes maps the text asset type literals onto their field type.
var textFieldTypes = map[string]ads.AssetFieldType{
	typeHeadline:     ads.FieldHeadline,
	typeDescription:  ads.FieldDescription,
	typeLongHeadline: ads.FieldLongHeadline,
	typeBusinessName: ads.FieldBusinessName,
}

// buildAssetData resolves an Assets row into its payload and the field type
// the asset links under. Image and logo rows fetch their bytes through the
// media fetcher and classify orientation to pick the sub-type.
func buildAssetData(ctx context.Context, fetcher media.Fetcher, rec *assetRecord) (ads.AssetData, ads.AssetFieldType, error) {
	if fieldType, ok := textFieldTypes[rec.assetType]; ok {
		if rec.text == "" {
			return nil, "", fmt.Errorf("%s asset requires text", strings.ToLower(rec.assetType))
		}
		return ads.TextAsset{Text: rec.text}, fieldType, nil
	}

	switch rec.assetType {
	case typeImage, typeLogo:
		if rec.url == "" {
			return nil, "", fmt.Errorf("%s asset requires a url", strings.ToLower(rec.assetType))
		}
		data, err := fetcher.Fetch(ctx, rec.url)
		if err != nil {
			return nil, "", err
		}
		orientation, err := media.Classify(data)
		if err != nil {
			return nil, "", err
		}
		fieldType, err := imageFieldType(rec.assetType, orientation)
		if err != nil {
			return nil, "", err
		}
		return ads.ImageAsset{Name: assetName(rec), Data: data}, fieldType, nil

	case typeVideo:
		if rec.url == "" {
			return nil, "", fmt.Errorf("video asset requires a url")
		}
		videoID, err := media.ExtractVideoID(rec.url)
		if err != nil {
			return nil, "", err
		}
		return ads.YouTubeVideoAsset{Name: assetName(rec), VideoID: videoID}, ads.FieldYouTubeVideo, nil

	case typeCallToAction:
		selection := normalizeCallToAction(rec.callToAction)
		if selection == "" {
			return nil, "", fmt.Errorf("call to action selection is required")
		}
		if !callToActionTypes[selection] {
			return nil, "", fmt.Errorf("unknown call to action %q", rec.callToAction)
		}
		return ads.CallToActionAsset{Selection: selection}, ads.FieldCallToAction, nil

	default:
		return nil, "", fmt.Errorf("unknown asset type %q", rec.assetType)
	}
}

// imageFieldType selects the orientation-specific field type. The LOGO family
// has no portrait variant.
func imageFieldType(assetType string, orientation media.Orientation) (ads.AssetFieldType, error) {
	if assetType == typeLogo {
		switch orientation {
		case media.OrientationSquare:
			return ads.FieldLogo, nil
		case media.OrientationLandscape:
			return ads.FieldLandscapeLogo, nil
		default:
			return "", fmt.Errorf("%w: portrait image for logo", ErrUnsupportedAssetShape)
		}
	}

	switch orientation {
	case media.OrientationSquare:
		return ads.FieldSquareMarketingImage, nil
	case media.OrientationPortrait:
		return ads.FieldPortraitMarketingImage, nil
	default:
		return ads.FieldMarketingImage, nil
	}
}

// normalizeCallToAction uppercases the selection and replaces spaces with
// underscores, so "Learn more" and "LEARN_MORE" are the same selection.
func normalizeCallToAction(selection string) string {
	normalized := strings.ToUpper(strings.TrimSpace(selection))
	return strings.ReplaceAll(normalized, " ", "_")
}

// assetName derives a display name for assets that carry one.
func assetName(rec *assetRecord) string {
	if rec.text != "" {
		return rec.text
	}
	return fmt.Sprintf("%s asset row %d", rec.groupName, rec.row+1)
}
