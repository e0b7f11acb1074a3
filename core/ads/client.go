package ads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// Client is the interface consumed by the upload flows. One call submits one
// batch; partial failures are always requested so that a single bad operation
// does not sink its siblings.
type Client interface {
	// Mutate submits the operations as a single batch for the given customer.
	// A non-nil error means the whole call failed (transport, auth) and no
	// per-operation detail is available. Partial failures are reported inside
	// the response, not as an error.
	Mutate(ctx context.Context, customerID string, ops []Operation) (*MutateResponse, error)
}

type restClient struct {
	httpClient *http.Client
	cfg        Config
}

// NewClient creates an Ads REST client authenticated by the token source.
func NewClient(cfg Config, ts oauth2.TokenSource) Client {
	httpClient := oauth2.NewClient(context.Background(), ts)

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}
	httpClient.Timeout = time.Duration(timeout) * time.Second

	return &restClient{
		httpClient: httpClient,
		cfg:        cfg,
	}
}

// mutateRequest is the wire shape of a batched googleAds:mutate call.
type mutateRequest struct {
	MutateOperations []map[string]any `json:"mutateOperations"`
	PartialFailure   bool             `json:"partialFailure"`
}

// mutateWireResponse is the wire shape of the mutate response. Each entry of
// MutateOperationResponses carries exactly one populated *Result field.
type mutateWireResponse struct {
	MutateOperationResponses []wireOperationResponse `json:"mutateOperationResponses"`
	PartialFailureError      *Status                 `json:"partialFailureError"`
}

type wireOperationResponse struct {
	CampaignBudgetResult  *MutateResult `json:"campaignBudgetResult"`
	CampaignResult        *MutateResult `json:"campaignResult"`
	AssetGroupResult      *MutateResult `json:"assetGroupResult"`
	AssetResult           *MutateResult `json:"assetResult"`
	AssetGroupAssetResult *MutateResult `json:"assetGroupAssetResult"`
	CampaignAssetResult   *MutateResult `json:"campaignAssetResult"`
}

// result flattens the populated result field; an entry with no populated
// field represents an operation that failed inside a partial failure.
func (r wireOperationResponse) result() MutateResult {
	for _, candidate := range []*MutateResult{
		r.CampaignBudgetResult,
		r.CampaignResult,
		r.AssetGroupResult,
		r.AssetResult,
		r.AssetGroupAssetResult,
		r.CampaignAssetResult,
	} {
		if candidate != nil {
			return *candidate
		}
	}
	return MutateResult{}
}

func (c *restClient) Mutate(ctx context.Context, customerID string, ops []Operation) (*MutateResponse, error) {
	if len(ops) == 0 {
		return &MutateResponse{}, nil
	}

	reqBody := mutateRequest{
		MutateOperations: make([]map[string]any, 0, len(ops)),
		PartialFailure:   true,
	}
	for _, op := range ops {
		encoded, err := encodeOperation(op)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s operation: %w", op.Kind(), err)
		}
		reqBody.MutateOperations = append(reqBody.MutateOperations, encoded)
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal mutate request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/customers/%s/googleAds:mutate", c.cfg.Endpoint, c.cfg.Version, customerID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build mutate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", c.cfg.DeveloperToken)
	if c.cfg.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", c.cfg.LoginCustomerID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mutate call failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read mutate response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Whole-call failure. The body usually carries a google.rpc.Status;
		// surface its message when present, the raw body otherwise.
		var wrapper struct {
			Error *Status `json:"error"`
		}
		if err := json.Unmarshal(body, &wrapper); err == nil && wrapper.Error != nil && wrapper.Error.Message != "" {
			return nil, fmt.Errorf("mutate rejected (%d): %s", resp.StatusCode, wrapper.Error.Message)
		}
		return nil, fmt.Errorf("mutate rejected (%d): %s", resp.StatusCode, string(body))
	}

	var wire mutateWireResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("failed to decode mutate response: %w", err)
	}

	out := &MutateResponse{
		Results:        make([]MutateResult, 0, len(wire.MutateOperationResponses)),
		PartialFailure: wire.PartialFailureError,
	}
	for _, r := range wire.MutateOperationResponses {
		out.Results = append(out.Results, r.result())
	}
	return out, nil
}
