package sheets

import "strings"

// AliasSeparator joins the identity columns of a row into its entity alias.
const AliasSeparator = ";"

// Row is one spreadsheet row: an ordered sequence of cell strings. Rows may
// be shorter than their schema when trailing optional cells were omitted, so
// all access is bounds-checked.
type Row []string

// Get returns the trimmed cell at the column index, or "" when the row is
// too short.
func (r Row) Get(col int) string {
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// IsBlank reports whether the cell at the column index is empty or missing.
func (r Row) IsBlank(col int) bool {
	return r.Get(col) == ""
}

// Alias builds the composite entity alias from identity column values.
// If any part is blank there is no alias: the row cannot participate in
// alias-keyed grouping.
func Alias(parts ...string) string {
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return ""
		}
	}
	return strings.Join(parts, AliasSeparator)
}
