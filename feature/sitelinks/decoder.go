package sitelinks

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google-marketing-solutions/madpmax-sub000/core/bulk"
	"github.com/google-marketing-solutions/madpmax-sub000/core/sheets"
)

// record is one decoded Sitelinks row.
type record struct {
	row          int
	deleteFlag   bool
	customerName string
	campaignName string
	linkText     string
	finalURL     string
	description1 string
	description2 string
	resource     string
}

// campaignAlias correlates the row with its campaign in the CampaignList.
func (r *record) campaignAlias() string {
	return sheets.Alias(r.customerName, r.campaignName)
}

// decodeRow parses one Sitelinks row. It returns (nil, nil) when the row was
// already uploaded and must be skipped on this run.
func decodeRow(row sheets.Row, index int) (*record, error) {
	deleteFlag := strings.EqualFold(row.Get(colDelete), "TRUE")
	if row.Get(colStatus) == bulk.StatusUploaded && !deleteFlag {
		return nil, nil
	}

	rec := &record{
		row:          index,
		deleteFlag:   deleteFlag,
		customerName: row.Get(colCustomerName),
		campaignName: row.Get(colCampaignName),
		linkText:     row.Get(colLinkText),
		finalURL:     row.Get(colFinalURL),
		description1: row.Get(colDescription1),
		description2: row.Get(colDescription2),
		resource:     row.Get(colResource),
	}

	if rec.customerName == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if rec.campaignName == "" {
		return nil, fmt.Errorf("campaign name is required")
	}

	if rec.deleteFlag {
		if rec.resource == "" {
			return nil, fmt.Errorf("no recorded sitelink resource to delete")
		}
		return rec, nil
	}

	// Every field of a sitelink is required; the errors name the blank field
	// so the sheet message is actionable.
	if rec.linkText == "" {
		return nil, fmt.Errorf("link text is required")
	}
	if rec.finalURL == "" {
		return nil, fmt.Errorf("final url is required")
	}
	if parsed, err := url.ParseRequestURI(rec.finalURL); err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("invalid final url %q", rec.finalURL)
	}
	if rec.description1 == "" {
		return nil, fmt.Errorf("description 1 is required")
	}
	if rec.description2 == "" {
		return nil, fmt.Errorf("description 2 is required")
	}

	return rec, nil
}
