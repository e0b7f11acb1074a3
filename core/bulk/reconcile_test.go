package bulk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google-marketing-solutions/madpmax-sub000/core/ads"
)

func opIndex(i int64) *int64 { return &i }

func partialFailure(failedIndex int64, message string) *ads.Status {
	return &ads.Status{
		Code:    3,
		Message: "partial failure",
		Details: []ads.FailureDetail{{
			Errors: []ads.ErrorDetail{{
				Message: message,
				Location: &ads.ErrorLocation{
					FieldPathElements: []ads.FieldPathElement{
						{FieldName: "mutate_operations", Index: opIndex(failedIndex)},
					},
				},
			}},
		}},
	}
}

func TestReconcile_AllSucceeded(t *testing.T) {
	asset := "customers/1/assets/-4000"
	group := "customers/1/assetGroups/-3000"
	ops := []ads.Operation{
		ads.CreateAssetGroupOp{Resource: group},
		ads.CreateAssetOp{Resource: asset, FieldType: ads.FieldHeadline, Data: ads.TextAsset{Text: "hi"}},
		ads.LinkAssetOp{AssetGroup: group, Asset: asset, FieldType: ads.FieldHeadline},
	}

	groupRef := RowRef{Sheet: "NewAssetGroups", Row: 0}
	assetRef := RowRef{Sheet: "Assets", Row: 4}

	mapping := NewRowMapping()
	mapping.Add(group, groupRef)
	mapping.Add(asset, assetRef)

	results := NewResultSet()
	results.Init(groupRef)
	results.Init(assetRef)

	resp := &ads.MutateResponse{Results: []ads.MutateResult{
		{ResourceName: "customers/1/assetGroups/777"},
		{ResourceName: "customers/1/assets/888"},
		{ResourceName: "customers/1/assetGroupAssets/777~888~HEADLINE"},
	}}

	Reconcile(ops, resp, nil, mapping, results)

	groupResult, _ := results.Get(groupRef)
	assert.Equal(t, StatusUploaded, groupResult.Status)
	assert.Equal(t, "customers/1/assetGroups/777", groupResult.ResourceName)

	// The asset row records the link resource (written into the
	// asset-group-asset column), discovered by the later link result.
	assetResult, _ := results.Get(assetRef)
	assert.Equal(t, StatusUploaded, assetResult.Status)
	assert.Equal(t, "customers/1/assetGroupAssets/777~888~HEADLINE", assetResult.ResourceName)
}

// A failing link whose own asset field is empty must resolve the responsible
// resource through the adjacent operation, marking the right row.
func TestReconcile_AdjacencyRule(t *testing.T) {
	assetA := "customers/1/assets/-4000"
	assetB := "customers/1/assets/-4001"
	group := "customers/1/assetGroups/10"

	ops := []ads.Operation{
		ads.CreateAssetOp{Resource: assetA, FieldType: ads.FieldHeadline, Data: ads.TextAsset{Text: "a"}},
		ads.CreateAssetOp{Resource: assetB, FieldType: ads.FieldHeadline, Data: ads.TextAsset{Text: "b"}},
		// Link at index 2 carries no asset reference of its own.
		ads.LinkAssetOp{AssetGroup: group, FieldType: ads.FieldHeadline},
	}

	refA := RowRef{Sheet: "Assets", Row: 0}
	refB := RowRef{Sheet: "Assets", Row: 1}

	mapping := NewRowMapping()
	mapping.Add(assetA, refA)
	mapping.Add(assetB, refB)

	results := NewResultSet()
	results.Init(refA)
	results.Init(refB)

	resp := &ads.MutateResponse{
		Results: []ads.MutateResult{
			{ResourceName: "customers/1/assets/100"},
			{ResourceName: "customers/1/assets/101"},
			{},
		},
		PartialFailure: partialFailure(2, "asset group not eligible"),
	}

	Reconcile(ops, resp, nil, mapping, results)

	// Index 1 is the adjacent operation: its row takes the error.
	resultB, _ := results.Get(refB)
	assert.Equal(t, StatusError, resultB.Status)
	assert.Contains(t, resultB.Message, "asset group not eligible")

	// The unrelated row stays UPLOADED.
	resultA, _ := results.Get(refA)
	assert.Equal(t, StatusUploaded, resultA.Status)
}

// A failing link flags both contributing rows: the asset's and the group's.
func TestReconcile_LinkFailureFlagsBothSides(t *testing.T) {
	asset := "customers/1/assets/-4000"
	group := "customers/1/assetGroups/-3000"

	ops := []ads.Operation{
		ads.CreateAssetGroupOp{Resource: group},
		ads.CreateAssetOp{Resource: asset, FieldType: ads.FieldLogo, Data: ads.ImageAsset{Name: "logo"}},
		ads.LinkAssetOp{AssetGroup: group, Asset: asset, FieldType: ads.FieldLogo},
	}

	groupRef := RowRef{Sheet: "NewAssetGroups", Row: 2}
	assetRef := RowRef{Sheet: "Assets", Row: 7}

	mapping := NewRowMapping()
	mapping.Add(group, groupRef)
	mapping.Add(asset, assetRef)

	results := NewResultSet()
	results.Init(groupRef)
	results.Init(assetRef)

	resp := &ads.MutateResponse{
		Results:        []ads.MutateResult{{ResourceName: "customers/1/assetGroups/55"}, {ResourceName: "customers/1/assets/66"}, {}},
		PartialFailure: partialFailure(2, "image too small"),
	}

	Reconcile(ops, resp, nil, mapping, results)

	assetResult, _ := results.Get(assetRef)
	assert.Equal(t, StatusError, assetResult.Status)

	groupResult, _ := results.Get(groupRef)
	assert.Equal(t, StatusError, groupResult.Status)
	assert.Contains(t, groupResult.Message, "image too small")
}

func TestReconcile_TransportFailure(t *testing.T) {
	budget := "customers/1/campaignBudgets/-1000"
	campaign := "customers/1/campaigns/-2000"
	ops := []ads.Operation{
		ads.CreateBudgetOp{Resource: budget},
		ads.CreateCampaignOp{Resource: campaign, Budget: budget, BiddingStrategy: ads.BiddingMaximizeConversions},
	}

	ref := RowRef{Sheet: "NewCampaigns", Row: 0}
	mapping := NewRowMapping()
	mapping.Add(budget, ref)
	mapping.Add(campaign, ref)

	results := NewResultSet()
	results.Init(ref)

	Reconcile(ops, nil, errors.New("deadline exceeded"), mapping, results)

	r, _ := results.Get(ref)
	assert.Equal(t, StatusError, r.Status)
	assert.Equal(t, "deadline exceeded", r.Message)
}

func TestReconcile_ResultCountMismatch(t *testing.T) {
	asset := "customers/1/assets/-4000"
	ops := []ads.Operation{
		ads.CreateAssetOp{Resource: asset, FieldType: ads.FieldHeadline, Data: ads.TextAsset{Text: "hi"}},
	}

	ref := RowRef{Sheet: "Assets", Row: 0}
	mapping := NewRowMapping()
	mapping.Add(asset, ref)
	results := NewResultSet()
	results.Init(ref)

	Reconcile(ops, &ads.MutateResponse{}, nil, mapping, results)

	r, _ := results.Get(ref)
	assert.Equal(t, StatusError, r.Status)
	assert.Contains(t, r.Message, "0 results for 1 operations")
}

// Rows whose resources never appear in any operation keep the neutral
// pre-set state.
func TestReconcile_UntouchedRowStaysNeutral(t *testing.T) {
	asset := "customers/1/assets/-4000"
	ops := []ads.Operation{
		ads.CreateAssetOp{Resource: asset, FieldType: ads.FieldHeadline, Data: ads.TextAsset{Text: "hi"}},
	}

	processed := RowRef{Sheet: "Assets", Row: 0}
	bystander := RowRef{Sheet: "Assets", Row: 9}

	mapping := NewRowMapping()
	mapping.Add(asset, processed)

	results := NewResultSet()
	results.Init(processed)
	results.Init(bystander)

	resp := &ads.MutateResponse{Results: []ads.MutateResult{{ResourceName: "customers/1/assets/1"}}}
	Reconcile(ops, resp, nil, mapping, results)

	r, ok := results.Get(bystander)
	require.True(t, ok)
	assert.Empty(t, r.Status)
	assert.Empty(t, r.Message)
}

// Successful operations with no mapped row are simply not reported.
func TestReconcile_UnattributableSuccessIgnored(t *testing.T) {
	ops := []ads.Operation{
		ads.LinkAssetOp{AssetGroup: "customers/1/assetGroups/10", Asset: "customers/1/assets/11", FieldType: ads.FieldHeadline},
	}

	mapping := NewRowMapping()
	results := NewResultSet()

	resp := &ads.MutateResponse{Results: []ads.MutateResult{{ResourceName: "customers/1/assetGroupAssets/10~11~HEADLINE"}}}
	Reconcile(ops, resp, nil, mapping, results)

	assert.Empty(t, results.Refs())
}
