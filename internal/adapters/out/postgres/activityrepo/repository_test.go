package activityrepo_test

import (
	"testing"
	"time"

	"orderdesk/internal/adapters/out/postgres/activityrepo"
	"orderdesk/internal/core/domain/model/activity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestGormActivityRepository_AddAndReadBack(t *testing.T) {
	ctx := t.Context()
	db := openSQLite(t)
	repo := activityrepo.NewGormActivityRepository(db)
	require.NoError(t, repo.Migrate(ctx))

	at := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	entry, err := activity.NewEntry(activity.Attempt{
		Operation:  activity.OperationTransition,
		OrderID:    "1001",
		FromStatus: "new",
		ToStatus:   "confirmed",
		Outcome:    activity.OutcomeSucceeded,
		OccurredAt: at,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Add(ctx, entry))

	var rows []activityrepo.ActivityEntryDTO
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)

	restored, err := activityrepo.ToDomain(rows[0])
	require.NoError(t, err)
	assert.True(t, entry.ID().IsEqual(restored.ID()))
	assert.Equal(t, activity.OperationTransition, restored.Operation)
	assert.Equal(t, "1001", restored.OrderID)
	assert.Equal(t, "new", restored.FromStatus)
	assert.Equal(t, "confirmed", restored.ToStatus)
	assert.Equal(t, activity.OutcomeSucceeded, restored.Outcome)
	assert.True(t, at.Equal(restored.OccurredAt))
}

func TestGormActivityRepository_AddRejectsUnconstructedEntry(t *testing.T) {
	ctx := t.Context()
	repo := activityrepo.NewGormActivityRepository(openSQLite(t))
	require.NoError(t, repo.Migrate(ctx))

	err := repo.Add(ctx, &activity.Entry{})

	assert.ErrorIs(t, err, activity.ErrEntryIsNotConstructed)
}

func TestToDomain_RejectsCorruptRow(t *testing.T) {
	_, err := activityrepo.ToDomain(activityrepo.ActivityEntryDTO{
		Operation:  "teleport",
		Outcome:    "succeeded",
		OccurredAt: time.Now(),
	})

	require.Error(t, err)
}
