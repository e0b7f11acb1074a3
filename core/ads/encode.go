package ads

import (
	"encoding/base64"
	"fmt"
	"strconv"
)

// channelType is fixed: this tool only manages Performance Max campaigns.
const channelType = "PERFORMANCE_MAX"

// encodeOperation renders one operation variant into its REST mutate shape.
// int64 micro amounts are encoded as strings per proto3 JSON rules.
func encodeOperation(op Operation) (map[string]any, error) {
	switch v := op.(type) {
	case CreateBudgetOp:
		create := map[string]any{
			"resourceName": v.Resource,
			"name":         v.Name,
			"amountMicros": strconv.FormatInt(v.AmountMicros, 10),
		}
		if v.DeliveryMethod != "" {
			create["deliveryMethod"] = v.DeliveryMethod
		}
		return map[string]any{
			"campaignBudgetOperation": map[string]any{"create": create},
		}, nil

	case CreateCampaignOp:
		create := map[string]any{
			"resourceName":           v.Resource,
			"name":                   v.Name,
			"campaignBudget":         v.Budget,
			"status":                 v.Status,
			"advertisingChannelType": channelType,
		}
		if v.StartDate != "" {
			create["startDate"] = v.StartDate
		}
		if v.EndDate != "" {
			create["endDate"] = v.EndDate
		}
		switch v.BiddingStrategy {
		case BiddingMaximizeConversions:
			strategy := map[string]any{}
			if v.TargetCPAMicros > 0 {
				strategy["targetCpaMicros"] = strconv.FormatInt(v.TargetCPAMicros, 10)
			}
			create["maximizeConversions"] = strategy
		case BiddingMaximizeConversionValue:
			strategy := map[string]any{}
			if v.TargetROAS > 0 {
				strategy["targetRoas"] = v.TargetROAS
			}
			create["maximizeConversionValue"] = strategy
		default:
			return nil, fmt.Errorf("unknown bidding strategy %q", v.BiddingStrategy)
		}
		return map[string]any{
			"campaignOperation": map[string]any{"create": create},
		}, nil

	case CreateAssetGroupOp:
		create := map[string]any{
			"resourceName": v.Resource,
			"name":         v.Name,
			"campaign":     v.Campaign,
			"finalUrls":    v.FinalURLs,
			"status":       v.Status,
		}
		if len(v.FinalMobileURLs) > 0 {
			create["finalMobileUrls"] = v.FinalMobileURLs
		}
		if v.Path1 != "" {
			create["path1"] = v.Path1
		}
		if v.Path2 != "" {
			create["path2"] = v.Path2
		}
		return map[string]any{
			"assetGroupOperation": map[string]any{"create": create},
		}, nil

	case CreateAssetOp:
		create := map[string]any{
			"resourceName": v.Resource,
		}
		switch data := v.Data.(type) {
		case TextAsset:
			create["textAsset"] = map[string]any{"text": data.Text}
		case ImageAsset:
			create["name"] = data.Name
			create["imageAsset"] = map[string]any{
				"data": base64.StdEncoding.EncodeToString(data.Data),
			}
		case YouTubeVideoAsset:
			create["youtubeVideoAsset"] = map[string]any{
				"youtubeVideoId":    data.VideoID,
				"youtubeVideoTitle": data.Name,
			}
		case CallToActionAsset:
			create["callToActionAsset"] = map[string]any{
				"callToAction": data.Selection,
			}
		case SitelinkAsset:
			create["finalUrls"] = []string{data.FinalURL}
			create["sitelinkAsset"] = map[string]any{
				"linkText":     data.LinkText,
				"description1": data.Description1,
				"description2": data.Description2,
			}
		default:
			return nil, fmt.Errorf("unknown asset data %T", v.Data)
		}
		return map[string]any{
			"assetOperation": map[string]any{"create": create},
		}, nil

	case LinkAssetOp:
		return map[string]any{
			"assetGroupAssetOperation": map[string]any{
				"create": map[string]any{
					"assetGroup": v.AssetGroup,
					"asset":      v.Asset,
					"fieldType":  string(v.FieldType),
				},
			},
		}, nil

	case RemoveAssetLinkOp:
		return map[string]any{
			"assetGroupAssetOperation": map[string]any{"remove": v.Resource},
		}, nil

	case LinkSitelinkOp:
		return map[string]any{
			"campaignAssetOperation": map[string]any{
				"create": map[string]any{
					"campaign":  v.Campaign,
					"asset":     v.Asset,
					"fieldType": string(FieldSitelink),
				},
			},
		}, nil

	case RemoveSitelinkOp:
		return map[string]any{
			"campaignAssetOperation": map[string]any{"remove": v.Resource},
		}, nil

	default:
		return nil, fmt.Errorf("unknown operation %T", op)
	}
}
