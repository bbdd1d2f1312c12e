// Package activityrepo persists the dashboard's activity journal with GORM.
// The journal is append-only: entries are inserted once and read back by the
// activity query.
package activityrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ActivityEntryDTO is the row layout of activity_entries. Lookups are by
// order and by time, newest first.
type ActivityEntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Operation  string    `gorm:"size:32;not null"`
	OrderID    string    `gorm:"size:64;index"`
	FromStatus string    `gorm:"size:32"`
	ToStatus   string    `gorm:"size:32"`
	Outcome    string    `gorm:"size:16;not null"`
	Message    string    `gorm:"type:text"`
	OccurredAt time.Time `gorm:"not null;index"`
}

func (ActivityEntryDTO) TableName() string {
	return "activity_entries"
}

func fromDomain(e *activity.Entry) ActivityEntryDTO {
	return ActivityEntryDTO{
		ID:         e.ID().Bytes(),
		Operation:  string(e.Operation),
		OrderID:    e.OrderID,
		FromStatus: e.FromStatus,
		ToStatus:   e.ToStatus,
		Outcome:    string(e.Outcome),
		Message:    e.Message,
		OccurredAt: e.OccurredAt.UTC(),
	}
}

// ToDomain rebuilds an entry from its row.
func ToDomain(dto ActivityEntryDTO) (*activity.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return activity.RestoreEntry(id, activity.Attempt{
		Operation:  activity.Operation(dto.Operation),
		OrderID:    dto.OrderID,
		FromStatus: dto.FromStatus,
		ToStatus:   dto.ToStatus,
		Outcome:    activity.Outcome(dto.Outcome),
		Message:    dto.Message,
		OccurredAt: dto.OccurredAt,
	})
}
