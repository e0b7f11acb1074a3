package history

import (
	"context"

	"gorm.io/gorm"
)

// Store persists upload runs and their per-row outcomes. A nil *Store is a
// valid no-op store, so flows never need to branch on whether history is
// configured.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over the given database, or nil when no database
// is configured.
func NewStore(db *gorm.DB) *Store {
	if db == nil {
		return nil
	}
	return &Store{db: db}
}

// Migrate creates or updates the history tables.
func (s *Store) Migrate() error {
	if s == nil {
		return nil
	}
	return s.db.AutoMigrate(&UploadRun{}, &RowOutcome{})
}

// Record persists a finished run together with its row outcomes in one
// transaction.
func (s *Store) Record(ctx context.Context, run *UploadRun, outcomes []RowOutcome) error {
	if s == nil {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(run).Error; err != nil {
			return err
		}
		for i := range outcomes {
			outcomes[i].RunID = run.ID
		}
		if len(outcomes) == 0 {
			return nil
		}
		return tx.Create(&outcomes).Error
	})
}

// Runs returns the most recent runs for a flow, newest first.
func (s *Store) Runs(ctx context.Context, flow string, limit int) ([]UploadRun, error) {
	if s == nil {
		return nil, nil
	}

	var runs []UploadRun
	err := s.db.WithContext(ctx).
		Where("flow = ?", flow).
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	return runs, err
}
