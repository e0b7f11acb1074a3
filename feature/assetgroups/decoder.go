package assetgroups

import (
	"fmt"
	"strings"

	"github.com/google-marketing-solutions/madpmax-sub000/core/bulk"
	"github.com/google-marketing-solutions/madpmax-sub000/core/sheets"
)

// assetRecord is one decoded Assets row.
type assetRecord struct {
	row          int
	deleteFlag   bool
	customerName string
	campaignName string
	groupName    string
	assetType    string
	text         string
	callToAction string
	url          string
	resource     string
}

// alias correlates the asset with its asset group across sheets.
func (r *assetRecord) alias() string {
	return sheets.Alias(r.customerName, r.campaignName, r.groupName)
}

// decodeAssetRow parses one Assets row. It returns (nil, nil) when the row
// was already uploaded and must be skipped on this run.
func decodeAssetRow(row sheets.Row, index int) (*assetRecord, error) {
	if row.Get(assetColStatus) == bulk.StatusUploaded && !isTrue(row.Get(assetColDelete)) {
		return nil, nil
	}

	rec := &assetRecord{
		row:          index,
		deleteFlag:   isTrue(row.Get(assetColDelete)),
		customerName: row.Get(assetColCustomerName),
		campaignName: row.Get(assetColCampaignName),
		groupName:    row.Get(assetColGroupName),
		assetType:    strings.ToUpper(row.Get(assetColType)),
		text:         row.Get(assetColText),
		callToAction: row.Get(assetColCallToAction),
		url:          row.Get(assetColURL),
		resource:     row.Get(assetColResource),
	}

	if rec.customerName == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if rec.campaignName == "" {
		return nil, fmt.Errorf("campaign name is required")
	}
	if rec.groupName == "" {
		return nil, fmt.Errorf("asset group name is required")
	}

	if rec.deleteFlag {
		if rec.resource == "" {
			return nil, fmt.Errorf("no recorded asset link resource to delete")
		}
		return rec, nil
	}

	if rec.assetType == "" {
		return nil, fmt.Errorf("asset type is required")
	}
	return rec, nil
}

// groupRecord is one decoded NewAssetGroups row.
type groupRecord struct {
	row           int
	alias         string
	campaignAlias string
	name          string
	finalURL      string
	mobileURL     string
	path1         string
	path2         string
	status        string
	assetCheck    bool
}

// decodeGroupRow parses one NewAssetGroups row. It returns (nil, nil) when
// the row was already uploaded and must be skipped on this run.
func decodeGroupRow(row sheets.Row, index int) (*groupRecord, error) {
	if row.Get(groupColStatus) == bulk.StatusUploaded {
		return nil, nil
	}

	rec := &groupRecord{
		row:           index,
		alias:         row.Get(groupColAlias),
		campaignAlias: row.Get(groupColCampaignAlias),
		name:          row.Get(groupColName),
		finalURL:      row.Get(groupColFinalURL),
		mobileURL:     row.Get(groupColMobileURL),
		path1:         row.Get(groupColPath1),
		path2:         row.Get(groupColPath2),
		status:        row.Get(groupColCampaignStatus),
		assetCheck:    isTrue(row.Get(groupColAssetCheck)),
	}

	if rec.alias == "" {
		return nil, fmt.Errorf("asset group alias is required")
	}
	if rec.campaignAlias == "" {
		return nil, fmt.Errorf("campaign alias is required")
	}
	if rec.name == "" {
		return nil, fmt.Errorf("asset group name is required")
	}
	if rec.finalURL == "" {
		return nil, fmt.Errorf("final url is required")
	}
	if rec.status == "" {
		rec.status = defaultGroupStatus
	}

	return rec, nil
}

func isTrue(cell string) bool {
	return strings.EqualFold(cell, "TRUE")
}
