package bulk

import "sort"

// Canonical status vocabulary written back into the sheet. The string
// literals are a wire contract: idempotent re-runs skip rows whose status
// cell equals StatusUploaded exactly.
const (
	StatusUploaded = "UPLOADED"
	StatusError    = "ERROR"
)

// RowResult is the per-row outcome of a batch. A zero Status means the row
// was selected for processing but no operation touching it has been
// reconciled yet (the neutral pre-set state).
type RowResult struct {
	Status       string
	Message      string
	ResourceName string
}

// ResultSet holds the per-row outcomes for one batch-processing invocation.
type ResultSet struct {
	rows map[RowRef]*RowResult
}

// NewResultSet returns an empty result set.
func NewResultSet() *ResultSet {
	return &ResultSet{rows: make(map[RowRef]*RowResult)}
}

// Init pre-sets the neutral result for a row selected for processing. Rows
// never referenced by any operation keep this neutral state and must not be
// written back as either UPLOADED or ERROR.
func (s *ResultSet) Init(ref RowRef) {
	if _, ok := s.rows[ref]; !ok {
		s.rows[ref] = &RowResult{}
	}
}

// MarkError sets the row to ERROR, appending to any message already
// recorded: a row can be touched by more than one failing operation.
func (s *ResultSet) MarkError(ref RowRef, message string) {
	s.Init(ref)
	r := s.rows[ref]
	r.Status = StatusError
	if r.Message == "" {
		r.Message = message
	} else if message != "" {
		r.Message = r.Message + "; " + message
	}
}

// MarkUploaded sets the row to UPLOADED and records the discovered resource
// name. It never downgrades a row already marked ERROR, and keeps the last
// recorded resource name if the new one is empty.
func (s *ResultSet) MarkUploaded(ref RowRef, resource string) {
	s.Init(ref)
	r := s.rows[ref]
	if r.Status == StatusError {
		return
	}
	r.Status = StatusUploaded
	r.Message = ""
	if resource != "" {
		r.ResourceName = resource
	}
}

// Counts returns how many rows ended up UPLOADED and ERROR. Neutral rows are
// counted by neither.
func (s *ResultSet) Counts() (uploaded, failed int) {
	for _, r := range s.rows {
		switch r.Status {
		case StatusUploaded:
			uploaded++
		case StatusError:
			failed++
		}
	}
	return uploaded, failed
}

// Get returns the result for a row and whether the row was ever selected.
func (s *ResultSet) Get(ref RowRef) (RowResult, bool) {
	r, ok := s.rows[ref]
	if !ok {
		return RowResult{}, false
	}
	return *r, true
}

// Refs returns all selected rows ordered by sheet then row index, for
// deterministic write-back.
func (s *ResultSet) Refs() []RowRef {
	refs := make([]RowRef, 0, len(s.rows))
	for ref := range s.rows {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Sheet != refs[j].Sheet {
			return refs[i].Sheet < refs[j].Sheet
		}
		return refs[i].Row < refs[j].Row
	})
	return refs
}
