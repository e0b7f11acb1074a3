package bulk

import (
	"fmt"
	"strings"

	"github.com/google-marketing-solutions/madpmax-sub000/core/ads"
)

// Reconcile maps the outcome of one batch back onto the originating rows.
//
// A non-nil callErr means the whole call failed (transport, auth) and no
// per-operation detail exists: every row the batch touched is marked ERROR
// with the transport text. Otherwise the per-operation results are walked in
// submission order; failed indices (decoded from the partial-failure status)
// mark their rows ERROR, successful operations whose resource is known to
// the mapping mark their rows UPLOADED and record the server-assigned
// resource name. Successes not present in the mapping are ignored. Rows
// never referenced by any operation keep their neutral result.
func Reconcile(ops []ads.Operation, resp *ads.MutateResponse, callErr error, mapping *RowMapping, results *ResultSet) {
	if callErr != nil {
		markAll(ops, callErr.Error(), mapping, results)
		return
	}
	if resp == nil {
		markAll(ops, "mutate call returned no response", mapping, results)
		return
	}
	if len(resp.Results) != len(ops) {
		// The response no longer lines up with what was submitted; indexes
		// cannot be trusted, so no per-operation attribution is possible.
		markAll(ops, fmt.Sprintf("response carried %d results for %d operations", len(resp.Results), len(ops)), mapping, results)
		return
	}

	failures := map[int][]ads.ErrorDetail{}
	if resp.PartialFailure.IsPartialFailure() {
		failures = resp.PartialFailure.OperationErrors()
	}

	for i, op := range ops {
		if details, failed := failures[i]; failed {
			message := describeAll(details)
			for _, resource := range failureResources(ops, i) {
				for _, ref := range mapping.Rows(resource) {
					results.MarkError(ref, message)
				}
			}
			continue
		}

		resource := successResource(op)
		if resource == "" || !mapping.Has(resource) {
			// An auxiliary operation with no direct row of its own.
			continue
		}
		discovered := resp.Results[i].ResourceName
		if discovered == "" {
			discovered = resource
		}
		for _, ref := range mapping.Rows(resource) {
			results.MarkUploaded(ref, discovered)
		}
	}
}

// markAll fans one error out to every row associated with the batch.
func markAll(ops []ads.Operation, message string, mapping *RowMapping, results *ResultSet) {
	for i := range ops {
		for _, resource := range failureResources(ops, i) {
			for _, ref := range mapping.Rows(resource) {
				results.MarkError(ref, message)
			}
		}
	}
}

func describeAll(details []ads.ErrorDetail) string {
	parts := make([]string, 0, len(details))
	for _, d := range details {
		parts = append(parts, d.Describe())
	}
	return strings.Join(parts, "; ")
}

// successResource returns the resource name a successful operation should be
// attributed through: its own resource for creates and removals, the linked
// asset for link operations (whose result is the link resource recorded on
// the asset's row).
func successResource(op ads.Operation) string {
	switch v := op.(type) {
	case ads.CreateBudgetOp:
		return v.Resource
	case ads.CreateCampaignOp:
		return v.Resource
	case ads.CreateAssetGroupOp:
		return v.Resource
	case ads.CreateAssetOp:
		return v.Resource
	case ads.LinkAssetOp:
		return v.Asset
	case ads.LinkSitelinkOp:
		return v.Asset
	case ads.RemoveAssetLinkOp:
		return v.Resource
	case ads.RemoveSitelinkOp:
		return v.Resource
	default:
		return ""
	}
}

// failureResources returns the resources whose rows should be flagged when
// the operation at index i fails. Link operations flag both sides, since
// either contributing row could have caused the failure. A link whose own
// asset reference is empty recovers the asset resource from the immediately
// adjacent operation (the create that precedes it, or the one that follows).
func failureResources(ops []ads.Operation, i int) []string {
	switch v := ops[i].(type) {
	case ads.LinkAssetOp:
		asset := v.Asset
		if asset == "" {
			asset = adjacentResource(ops, i)
		}
		return nonEmpty(asset, v.AssetGroup)
	case ads.LinkSitelinkOp:
		asset := v.Asset
		if asset == "" {
			asset = adjacentResource(ops, i)
		}
		return nonEmpty(asset, v.Campaign)
	default:
		resource := successResource(ops[i])
		if resource == "" {
			resource = adjacentResource(ops, i)
		}
		return nonEmpty(resource)
	}
}

// adjacentResource resolves the asset resource of the operation next to
// index i, preceding first.
func adjacentResource(ops []ads.Operation, i int) string {
	if i > 0 {
		if r := successResource(ops[i-1]); r != "" {
			return r
		}
	}
	if i+1 < len(ops) {
		return successResource(ops[i+1])
	}
	return ""
}

func nonEmpty(resources ...string) []string {
	out := resources[:0:0]
	for _, r := range resources {
		if r != "" {
			out = append(out, r)
		}
	}
	return out
}
