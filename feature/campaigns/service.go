package campaigns

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

const flowName = "campaigns"

// Service runs the campaign upload flow: decode NewCampaigns rows, submit
// one budget+campaign batch per customer, reconcile and write back.
type Service struct {
	sheets sheets.Client
	ads    ads.Client
	store  *history.Store
	logger *zap.Logger
}

// NewService creates a new campaign upload service.
func NewService(sheetsClient sheets.Client, adsClient ads.Client, store *history.Store, logger *zap.Logger) *Service {
	return &Service{
		sheets: sheetsClient,
		ads:    adsClient,
		store:  store,
		logger: logger,
	}
}

// Run executes one upload pass over the NewCampaigns sheet.
func (s *Service) Run(ctx context.Context) (*bulk.Summary, error) {
	started := time.Now()
	runID := uuid.NewString()
	log := s.logger.With(zap.String("run_id", runID), zap.String("flow", flowName))

	customers, err := sheets.CustomerIDs(ctx, s.sheets)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer list: %w", err)
	}

	rows, err := s.sheets.ReadRows(ctx, SheetNewCampaigns)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", SheetNewCampaigns, err)
	}

	results := bulk.NewResultSet()
	byCustomer := map[string][]*record{}
	byRow := map[int]*record{}
	skipped := 0

	for i, row := range rows {
		if row.IsBlank(colCustomerName) && row.IsBlank(colCampaignName) {
			continue
		}

		ref := bulk.RowRef{Sheet: SheetNewCampaigns, Row: i}
		rec, err := decodeRow(row, i)
		if err != nil {
			// Validation failures are terminal for the row, no remote call.
			results.MarkError(ref, err.Error())
			continue
		}
		if rec == nil {
			skipped++
			continue
		}

		customerID, ok := customers[rec.customerName]
		if !ok {
			results.MarkError(ref, fmt.Sprintf("unknown customer %q", rec.customerName))
			continue
		}

		results.Init(ref)
		byCustomer[customerID] = append(byCustomer[customerID], rec)
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
		for _, rec := range byCustomer[customerID] {
			ops = append(ops, buildOperations(rec, customerID, alloc, mapping)...)
		}
		ops = bulk.Order(ops)

		log.Info("Submitting campaign batch",
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

		if res.Status == bulk.StatusUploaded {
			rec := byRow[ref.Row]
			if rec == nil {
				continue
			}
			// Register the new campaign so asset-group and sitelink rows can
			// reference it by name on later runs.
			if err := s.sheets.AppendRow(ctx, sheets.SheetCampaignList, []string{rec.alias(), res.ResourceName}); err != nil {
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

	log.Info("Campaign upload finished",
		zap.Int("uploaded", uploaded),
		zap.Int("failed", failed),
		zap.Int("skipped", skipped))

	return summary, writeErrs.ErrorOrNil()
}
