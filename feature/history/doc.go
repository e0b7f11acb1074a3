// Package history persists an audit trail of upload runs.
//
// Each run of an upload flow is recorded as an UploadRun row together with a
// RowOutcome row per processed sheet row. The sheet itself already carries
// the latest status per row; the history keeps what the sheet cannot, which
// is how each run went over time.
//
// Persistence is optional. A nil *Store is a valid no-op, so flows record
// unconditionally and lose only the audit trail when no database is
// configured.
package history
