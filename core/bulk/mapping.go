package bulk

// RowRef identifies a spreadsheet row by sheet name and 0-based index within
// the data region. One batch can touch rows from several sheets (a new asset
// group joins a NewAssetGroups row with its Assets rows).
type RowRef struct {
	Sheet string
	Row   int
}

// RowMapping maps a resource name (provisional or final) to the row(s) it
// originated from. Every operation that can independently fail must be
// represented here, otherwise its failure cannot be attributed. A link
// between two temp-id resources is represented through both sides, since
// either row could have caused the failure.
type RowMapping struct {
	refs map[string][]RowRef
}

// NewRowMapping returns an empty mapping.
func NewRowMapping() *RowMapping {
	return &RowMapping{refs: make(map[string][]RowRef)}
}

// Add associates a resource name with an originating row. Duplicate
// associations are ignored so a row is not reported twice for one resource.
func (m *RowMapping) Add(resource string, ref RowRef) {
	if resource == "" {
		return
	}
	for _, existing := range m.refs[resource] {
		if existing == ref {
			return
		}
	}
	m.refs[resource] = append(m.refs[resource], ref)
}

// Rows returns the rows associated with a resource name, in insertion order.
func (m *RowMapping) Rows(resource string) []RowRef {
	return m.refs[resource]
}

// Has reports whether a resource name has any associated row.
func (m *RowMapping) Has(resource string) bool {
	return len(m.refs[resource]) > 0
}
