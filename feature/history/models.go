package history

import "time"

// UploadRun is one execution of an upload flow.
type UploadRun struct {
	// ID is a uuid assigned when the run starts.
	ID string `gorm:"primaryKey;size:36"`
	// Flow names the feature that ran (campaigns, assetgroups, sitelinks).
	Flow string `gorm:"size:32;index"`
	// Uploaded and Failed count the rows written back with each status.
	Uploaded int
	Failed   int
	// Skipped counts rows excluded up front (already uploaded).
	Skipped    int
	StartedAt  time.Time
	FinishedAt time.Time
}

// TableName sets the table name for GORM.
func (UploadRun) TableName() string {
	return "upload_runs"
}

// RowOutcome is the recorded status of one sheet row within a run.
type RowOutcome struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	RunID    string `gorm:"size:36;index"`
	Sheet    string `gorm:"size:64"`
	RowIndex int
	Status   string `gorm:"size:16"`
	Message  string `gorm:"type:text"`
	Resource string `gorm:"size:255"`
}

// TableName sets the table name for GORM.
func (RowOutcome) TableName() string {
	return "row_outcomes"
}
