package bulk

// Summary aggregates the outcome of one upload run for reporting, both as
// the HTTP trigger response and in the run history.
type Summary struct {
	RunID    string `json:"run_id"`
	Flow     string `json:"flow"`
	Uploaded int    `json:"uploaded"`
	Failed   int    `json:"failed"`
	Skipped  int    `json:"skipped"`
}
