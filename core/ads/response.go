package ads

import "fmt"

// MutateResult is the per-operation outcome inside a batch response. For an
// operation that failed as part of a partial failure the resource name is
// empty.
type MutateResult struct {
	ResourceName string `json:"resourceName"`
}

// MutateResponse is the structured outcome of one batch mutate call.
// Results holds exactly one entry per submitted operation, in submission
// order. A non-nil PartialFailure with a non-zero code is the only reliable
// signal that some individual operations failed; the call itself succeeding
// does not imply every contained operation succeeded.
type MutateResponse struct {
	Results        []MutateResult
	PartialFailure *Status
}

// Status mirrors the google.rpc.Status carried as partial_failure_error.
type Status struct {
	Code    int32           `json:"code"`
	Message string          `json:"message"`
	Details []FailureDetail `json:"details"`
}

// FailureDetail is one GoogleAdsFailure entry within a Status.
type FailureDetail struct {
	Type   string        `json:"@type"`
	Errors []ErrorDetail `json:"errors"`
}

// ErrorDetail describes a single failed operation within a partial failure.
type ErrorDetail struct {
	ErrorCode map[string]string `json:"errorCode"`
	Message   string            `json:"message"`
	Trigger   *ErrorTrigger     `json:"trigger"`
	Location  *ErrorLocation    `json:"location"`
}

// ErrorTrigger carries the value that triggered the error.
type ErrorTrigger struct {
	StringValue string `json:"stringValue"`
}

// ErrorLocation points at the failed operation via field path elements.
type ErrorLocation struct {
	FieldPathElements []FieldPathElement `json:"fieldPathElements"`
}

// FieldPathElement is one step of the field path; for batched mutates the
// element for the operations field carries the 0-based operation index.
type FieldPathElement struct {
	FieldName string `json:"fieldName"`
	Index     *int64 `json:"index"`
}

// IsPartialFailure reports whether the status marks a partial failure.
// A nil status or a zero code means all operations succeeded.
func (s *Status) IsPartialFailure() bool {
	return s != nil && s.Code != 0
}

// CodeName returns the first enum value of the error code union, e.g.
// "RESOURCE_NAME_MALFORMED".
func (e ErrorDetail) CodeName() string {
	for _, v := range e.ErrorCode {
		return v
	}
	return ""
}

// Describe renders the error as the text written into the sheet's error
// message column.
func (e ErrorDetail) Describe() string {
	msg := e.Message
	if code := e.CodeName(); code != "" {
		msg = fmt.Sprintf("%s: %s", code, msg)
	}
	if e.Trigger != nil && e.Trigger.StringValue != "" {
		msg = fmt.Sprintf("%s (trigger: %s)", msg, e.Trigger.StringValue)
	}
	return msg
}

// OperationIndex extracts the index of the failed operation from the error
// location. Returns -1 when the location does not identify an operation.
func (e ErrorDetail) OperationIndex() int {
	if e.Location == nil {
		return -1
	}
	for _, elem := range e.Location.FieldPathElements {
		if elem.Index != nil {
			return int(*elem.Index)
		}
	}
	return -1
}

// OperationErrors decodes every failure detail into a map keyed by the index
// of the operation that failed. Errors without an identifiable operation
// index are dropped; they cannot be attributed to a row.
func (s *Status) OperationErrors() map[int][]ErrorDetail {
	failures := make(map[int][]ErrorDetail)
	if s == nil {
		return failures
	}
	for _, detail := range s.Details {
		for _, e := range detail.Errors {
			idx := e.OperationIndex()
			if idx < 0 {
				continue
			}
			failures[idx] = append(failures[idx], e)
		}
	}
	return failures
}
