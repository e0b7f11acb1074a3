package sitelinks

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/google-marketing-solutions/madpmax-sub000/core/ads"
	"github.com/google-marketing-solutions/madpmax-sub000/core/bulk"
	"github.com/google-marketing-solutions/madpmax-sub000/core/sheets"
	"github.com/google-marketing-solutions/madpmax-sub000/feature/history"
)

const flowName = "sitelinks"

// Service runs the sitelink upload flow: create sitelink assets and link
// them to their campaigns, or remove delete-flagged links, batched per
// customer account.
type Service struct {
	sheets sheets.Client
	ads    ads.Client
	store  *history.Store
	logger *zap.Logger
}

// NewService creates a new sitelink upload service.
func NewService(sheetsClient sheets.Client, adsClient ads.Client, store *history.Store, logger *zap.Logger) *Service {
	return &Service{
		sheets: sheetsClient,
		ads:    adsClient,
		store:  store,
		logger: logger,
	}
}

// Run executes one upload pass over the Sitelinks sheet.
func (s *Service) Run(ctx context.Context) (*bulk.Summary, error) {
	started := time.Now()
	runID := uuid.NewString()
	log := s.logger.With(zap.String("run_id", runID), zap.String("flow", flowName))

	campaignResources, err := sheets.CampaignResources(ctx, s.sheets)
	if err != nil {
		return nil, fmt.Errorf("failed to load campaign list: %w", err)
	}

	rows, err := s.sheets.ReadRows(ctx, SheetSitelinks)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", SheetSitelinks, err)
	}

	results := bulk.NewResultSet()
	skipped := 0

	type pending struct {
		rec      *record
		campaign string
	}
	byCustomer := map[string][]pending{}
	byRow := map[int]*record{}

	for i, row := range rows {
		if row.IsBlank(colCustomerName) && row.IsBlank(colCampaignName) {
			continue
		}

		ref := bulk.RowRef{Sheet: SheetSitelinks, Row: i}
		rec, err := decodeRow(row, i)
		if err != nil {
			results.MarkError(ref, err.Error())
			continue
		}
		if rec == nil {
			skipped++
			continue
		}

		campaignResource, ok := campaignResources[rec.campaignAlias()]
		if !ok {
			results.MarkError(ref, fmt.Sprintf("unknown campaign %q", rec.campaignAlias()))
			continue
		}
		customerID := customerIDFromResource(campaignResource)
		if customerID == "" {
			results.MarkError(ref, fmt.Sprintf("malformed campaign resource %q", campaignResource))
			continue
		}

		results.Init(ref)
		byCustomer[customerID] = append(byCustomer[customerID], pending{rec: rec, campaign: campaignResource})
		byRow[i] = rec
	}

	customerIDs := make([]string, 0, len(byCustomer))
	for id := range byCustomer {
		customerIDs = append(customerIDs, id)
	}
	sort.Strings(customerIDs)

	for _, customerID := range customerIDs {
		alloc := bulk.NewAllocator()
		mapping := bulk.NewRowMapping()

		var ops []ads.Operation
		for _, p := range byCustomer[customerID] {
			if p.rec.deleteFlag {
				ops = append(ops, buildRemoval(p.rec, mapping))
				continue
			}
			ops = append(ops, buildOperations(p.rec, customerID, p.campaign, alloc, mapping)...)
		}
		ops = bulk.Order(ops)

		log.Info("Submitting sitelink batch",
			zap.String("customer_id", customerID),
			zap.Int("operations", len(ops)))

		resp, callErr := s.ads.Mutate(ctx, customerID, ops)
		bulk.Reconcile(ops, resp, callErr, mapping, results)
	}

	var writeErrs *multierror.Error
	outcomes := make([]history.RowOutcome, 0)

	for _, ref := range results.Refs() {
		res, _ := results.Get(ref)
		if res.Status == "" {
			continue
		}

		outcomes = append(outcomes, history.RowOutcome{
			Sheet:    ref.Sheet,
			RowIndex: ref.Row,
			Status:   res.Status,
			Message:  res.Message,
			Resource: res.ResourceName,
		})

		if err := sheets.WriteStatus(ctx, s.sheets, ref.Sheet, ref.Row, colStatus, res.Status, colError, res.Message); err != nil {
			writeErrs = multierror.Append(writeErrs, err)
			continue
		}
		if res.Status != bulk.StatusUploaded {
			continue
		}

		if rec := byRow[ref.Row]; rec != nil && rec.deleteFlag {
			// The link is gone: clear the flag and resource so the row stays
			// inert on later runs.
			if err := s.sheets.UpdateCell(ctx, ref.Sheet, ref.Row, colDelete, ""); err != nil {
				writeErrs = multierror.Append(writeErrs, err)
			}
			if err := s.sheets.UpdateCell(ctx, ref.Sheet, ref.Row, colResource, ""); err != nil {
				writeErrs = multierror.Append(writeErrs, err)
			}
			continue
		}
		if res.ResourceName != "" {
			// The campaign-asset resource makes the row removable later.
			if err := s.sheets.UpdateCell(ctx, ref.Sheet, ref.Row, colResource, res.ResourceName); err != nil {
				writeErrs = multierror.Append(writeErrs, err)
			}
		}
	}

	uploaded, failed := results.Counts()
	summary := &bulk.Summary{
		RunID:    runID,
		Flow:     flowName,
		Uploaded: uploaded,
		Failed:   failed,
		Skipped:  skipped,
	}

	run := &history.UploadRun{
		ID:         runID,
		Flow:       flowName,
		Uploaded:   uploaded,
		Failed:     failed,
		Skipped:    skipped,
		StartedAt:  started,
		FinishedAt: time.Now(),
	}
	if err := s.store.Record(ctx, run, outcomes); err != nil {
		log.Warn("Failed to record upload run", zap.Error(err))
	}

	log.Info("Sitelink upload finished",
		zap.Int("uploaded", uploaded),
		zap.Int("failed", failed),
		zap.Int("skipped", skipped))

	return summary, writeErrs.ErrorOrNil()
}
