package activityrepo

import (
	"context"
	"fmt"

	"orderdesk/internal/core/domain/model/activity"

	"gorm.io/gorm"
)

// GormActivityRepository implements ports.ActivityJournal.
type GormActivityRepository struct {
	db *gorm.DB
}

func NewGormActivityRepository(db *gorm.DB) *GormActivityRepository {
	return &GormActivityRepository{db: db}
}

// Migrate creates or updates the activity_entries table.
func (r *GormActivityRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&ActivityEntryDTO{}); err != nil {
		return fmt.Errorf("migrate activity journal: %w", err)
	}
	return nil
}

// Add inserts one entry.
func (r *GormActivityRepository) Add(ctx context.Context, entry *activity.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}
