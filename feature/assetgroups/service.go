package assetgroups

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
	"github.com/google-marketing-solutions/madpmax-sub000/core/media"
	"github.com/google-marketing-solutions/madpmax-sub000/core/sheets"
	"github.com/google-marketing-solutions/madpmax-sub000/feature/history"
)

const flowName = "assetgroups"

// Service runs the asset-group upload flow. It creates new asset groups from
// NewAssetGroups rows joined with their Assets rows, and uploads or removes
// assets on existing groups, one batch per asset-group alias so a partial
// failure stays contained to its group.
type Service struct {
	sheets  sheets.Client
	ads     ads.Client
	fetcher media.Fetcher
	store   *history.Store
	logger  *zap.Logger
}

// NewService creates a new asset-group upload service.
func NewService(sheetsClient sheets.Client, adsClient ads.Client, fetcher media.Fetcher, store *history.Store, logger *zap.Logger) *Service {
	return &Service{
		sheets:  sheetsClient,
		ads:     adsClient,
		fetcher: fetcher,
		store:   store,
		logger:  logger,
	}
}

// Run executes one upload pass over the NewAssetGroups and Assets sheets.
func (s *Service) Run(ctx context.Context) (*bulk.Summary, error) {
	started := time.Now()
	runID := uuid.NewString()
	log := s.logger.With(zap.String("run_id", runID), zap.String("flow", flowName))

	campaignResources, err := sheets.CampaignResources(ctx, s.sheets)
	if err != nil {
		return nil, fmt.Errorf("failed to load campaign list: %w", err)
	}
	groupResources, err := sheets.AssetGroupResources(ctx, s.sheets)
	if err != nil {
		return nil, fmt.Errorf("failed to load asset group list: %w", err)
	}

	groupRows, err := s.sheets.ReadRows(ctx, SheetNewAssetGroups)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", SheetNewAssetGroups, err)
	}
	assetRows, err := s.sheets.ReadRows(ctx, SheetAssets)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", SheetAssets, err)
	}

	results := bulk.NewResultSet()
	skipped := 0

	pendingGroups := map[string]*groupRecord{}
	groupByRow := map[int]*groupRecord{}

	for i, row := range groupRows {
		if row.IsBlank(groupColAlias) && row.IsBlank(groupColName) {
			continue
		}

		ref := bulk.RowRef{Sheet: SheetNewAssetGroups, Row: i}
		rec, err := decodeGroupRow(row, i)
		if err != nil {
			results.MarkError(ref, err.Error())
			continue
		}
		if rec == nil {
			skipped++
			continue
		}
		if !rec.assetCheck {
			// The sheet precomputes whether the group's asset rows satisfy
			// the platform's minimum-asset requirement; without it the create
			// would be rejected remotely anyway.
			results.MarkError(ref, "minimum asset requirements not met for new asset group")
			continue
		}
		if _, ok := campaignResources[rec.campaignAlias]; !ok {
			results.MarkError(ref, fmt.Sprintf("unknown campaign %q", rec.campaignAlias))
			continue
		}

		results.Init(ref)
		pendingGroups[rec.alias] = rec
		groupByRow[i] = rec
	}

	newGroupAssets := map[string][]*assetRecord{}
	existingAssets := map[string][]*assetRecord{}
	assetByRow := map[int]*assetRecord{}

	for i, row := range assetRows {
		if row.IsBlank(assetColCustomerName) && row.IsBlank(assetColGroupName) {
			continue
		}

		ref := bulk.RowRef{Sheet: SheetAssets, Row: i}
		rec, err := decodeAssetRow(row, i)
		if err != nil {
			results.MarkError(ref, err.Error())
			continue
		}
		if rec == nil {
			skipped++
			continue
		}

		alias := rec.alias()
		switch {
		case pendingGroups[alias] != nil:
			results.Init(ref)
			newGroupAssets[alias] = append(newGroupAssets[alias], rec)
			assetByRow[i] = rec
		case groupResources[alias] != "":
			results.Init(ref)
			existingAssets[alias] = append(existingAssets[alias], rec)
			assetByRow[i] = rec
		default:
			results.MarkError(ref, fmt.Sprintf("unknown asset group %q", alias))
		}
	}

	for _, alias := range sortedKeys(pendingGroups) {
		grp := pendingGroups[alias]
		groupRef := bulk.RowRef{Sheet: SheetNewAssetGroups, Row: grp.row}

		campaignResource := campaignResources[grp.campaignAlias]
		customerID := customerIDFromResource(campaignResource)
		if customerID == "" {
			results.MarkError(groupRef, fmt.Sprintf("malformed campaign resource %q", campaignResource))
			continue
		}

		alloc := bulk.NewAllocator()
		mapping := bulk.NewRowMapping()

		createOp, groupResource := buildGroupCreate(grp, customerID, campaignResource, alloc, mapping)
		ops := []ads.Operation{createOp}
		for _, rec := range newGroupAssets[alias] {
			data, fieldType, err := buildAssetData(ctx, s.fetcher, rec)
			if err != nil {
				results.MarkError(bulk.RowRef{Sheet: SheetAssets, Row: rec.row}, err.Error())
				continue
			}
			ops = append(ops, buildAssetPair(rec, data, fieldType, customerID, groupResource, alloc, mapping)...)
		}
		ops = bulk.Order(ops)

		log.Info("Submitting new asset group batch",
			zap.String("alias", alias),
			zap.Int("operations", len(ops)))

		resp, callErr := s.ads.Mutate(ctx, customerID, ops)
		bulk.Reconcile(ops, resp, callErr, mapping, results)
	}

	for _, alias := range sortedKeys(existingAssets) {
		groupResource := groupResources[alias]
		customerID := customerIDFromResource(groupResource)
		if customerID == "" {
			for _, rec := range existingAssets[alias] {
				results.MarkError(bulk.RowRef{Sheet: SheetAssets, Row: rec.row},
					fmt.Sprintf("malformed asset group resource %q", groupResource))
			}
			continue
		}

		alloc := bulk.NewAllocator()
		mapping := bulk.NewRowMapping()

		var ops []ads.Operation
		for _, rec := range existingAssets[alias] {
			if rec.deleteFlag {
				ops = append(ops, buildRemoval(rec, mapping))
				continue
			}
			data, fieldType, err := buildAssetData(ctx, s.fetcher, rec)
			if err != nil {
				results.MarkError(bulk.RowRef{Sheet: SheetAssets, Row: rec.row}, err.Error())
				continue
			}
			ops = append(ops, buildAssetPair(rec, data, fieldType, customerID, groupResource, alloc, mapping)...)
		}
		if len(ops) == 0 {
			continue
		}
		ops = bulk.Order(ops)

		log.Info("Submitting asset batch",
			zap.String("alias", alias),
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

		switch ref.Sheet {
		case SheetNewAssetGroups:
			if err := sheets.WriteStatus(ctx, s.sheets, ref.Sheet, ref.Row, groupColStatus, res.Status, groupColMessage, res.Message); err != nil {
				writeErrs = multierror.Append(writeErrs, err)
				continue
			}
			if res.Status == bulk.StatusUploaded {
				grp := groupByRow[ref.Row]
				if grp == nil {
					continue
				}
				// Register the new group so later runs can add assets to it.
				if err := s.sheets.AppendRow(ctx, sheets.SheetAssetGroupList, []string{grp.alias, grp.name, res.ResourceName}); err != nil {
					writeErrs = multierror.Append(writeErrs, err)
				}
			}

		case SheetAssets:
			if err := sheets.WriteStatus(ctx, s.sheets, ref.Sheet, ref.Row, assetColStatus, res.Status, assetColError, res.Message); err != nil {
				writeErrs = multierror.Append(writeErrs, err)
				continue
			}
			if res.Status != bulk.StatusUploaded {
				continue
			}
			if rec := assetByRow[ref.Row]; rec != nil && rec.deleteFlag {
				// The link is gone: clear the flag and resource so the row
				// stays inert on later runs.
				if err := s.sheets.UpdateCell(ctx, ref.Sheet, ref.Row, assetColDelete, ""); err != nil {
					writeErrs = multierror.Append(writeErrs, err)
				}
				if err := s.sheets.UpdateCell(ctx, ref.Sheet, ref.Row, assetColResource, ""); err != nil {
					writeErrs = multierror.Append(writeErrs, err)
				}
				continue
			}
			if res.ResourceName != "" {
				// The asset-group-asset resource makes the row removable later.
				if err := s.sheets.UpdateCell(ctx, ref.Sheet, ref.Row, assetColResource, res.ResourceName); err != nil {
					writeErrs = multierror.Append(writeErrs, err)
				}
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

	log.Info("Asset group upload finished",
		zap.Int("uploaded", uploaded),
		zap.Int("failed", failed),
		zap.Int("skipped", skipped))

	return summary, writeErrs.ErrorOrNil()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
