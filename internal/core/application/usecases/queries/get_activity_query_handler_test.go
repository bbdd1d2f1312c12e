package queries_test

import (
	"testing"
	"time"

	"orderdesk/internal/adapters/out/postgres/activityrepo"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func journalDB(t *testing.T) (*gorm.DB, *activityrepo.GormActivityRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	repo := activityrepo.NewGormActivityRepository(db)
	require.NoError(t, repo.Migrate(t.Context()))
	return db, repo
}

func addEntry(t *testing.T, repo *activityrepo.GormActivityRepository, orderID string, at time.Time) {
	t.Helper()
	e, err := activity.NewEntry(activity.Attempt{
		Operation:  activity.OperationTransition,
		OrderID:    orderID,
		FromStatus: "new",
		ToStatus:   "confirmed",
		Outcome:    activity.OutcomeSucceeded,
		OccurredAt: at,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Add(t.Context(), e))
}

func TestNewGetActivityQuery(t *testing.T) {
	q, err := queries.NewGetActivityQuery("", 0)
	require.NoError(t, err)
	assert.Nil(t, q.OrderID())
	assert.Equal(t, queries.DefaultActivityLimit, q.Limit())

	q, err = queries.NewGetActivityQuery("1001", 10)
	require.NoError(t, err)
	require.NotNil(t, q.OrderID())
	assert.Equal(t, "1001", q.OrderID().String())

	_, err = queries.NewGetActivityQuery("", queries.MaxActivityLimit+1)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewGetActivityQuery("", -1)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestGetActivityQueryHandler_Handle_NewestFirst(t *testing.T) {
	db, repo := journalDB(t)
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	addEntry(t, repo, "1001", base)
	addEntry(t, repo, "1002", base.Add(time.Minute))
	addEntry(t, repo, "1001", base.Add(2*time.Minute))

	q, err := queries.NewGetActivityQuery("", 0)
	require.NoError(t, err)

	entries, err := queries.NewGetActivityQueryHandler(db).Handle(t.Context(), q)

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.True(t, entries[0].OccurredAt.Equal(base.Add(2*time.Minute)))
	assert.True(t, entries[2].OccurredAt.Equal(base))
	assert.Equal(t, "transition", entries[0].Operation)
	assert.NoError(t, entries[0].ID.Validate())
}

func TestGetActivityQueryHandler_Handle_FilterAndLimit(t *testing.T) {
	db, repo := journalDB(t)
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	addEntry(t, repo, "1001", base)
	addEntry(t, repo, "1002", base.Add(time.Minute))
	addEntry(t, repo, "1001", base.Add(2*time.Minute))

	q, err := queries.NewGetActivityQuery("1001", 1)
	require.NoError(t, err)

	entries, err := queries.NewGetActivityQueryHandler(db).Handle(t.Context(), q)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "1001", entries[0].OrderID)
	assert.True(t, entries[0].OccurredAt.Equal(base.Add(2*time.Minute)))
}

func TestGetActivityQueryHandler_Handle_DisabledJournal(t *testing.T) {
	q, err := queries.NewGetActivityQuery("", 0)
	require.NoError(t, err)

	entries, err := queries.NewGetActivityQueryHandler(nil).Handle(t.Context(), q)

	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
