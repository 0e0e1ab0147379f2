package postgres

import (
	"context"
	"testing"
	"time"

	"silentblock/internal/domain/entity"
	appErrors "silentblock/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestInsert_GeneratesIDAndTimestamp(t *testing.T) {
	db := newTestDB(t)
	repo := NewScheduleTriggerRepository(db)

	trigger := &entity.ScheduleTrigger{
		MongoID:       "65a1b2c3d4e5f60718293a4b",
		UserID:        "u1",
		ScheduledTime: "2024-01-01T10:00:00Z",
	}
	require.NoError(t, repo.Insert(context.Background(), trigger))

	_, err := uuid.Parse(trigger.ID)
	assert.NoError(t, err, "row id must be a uuid")
	assert.False(t, trigger.CreatedAt.IsZero())

	var stored entity.ScheduleTrigger
	require.NoError(t, db.First(&stored, "mongo_id = ?", "65a1b2c3d4e5f60718293a4b").Error)
	assert.Equal(t, "u1", stored.UserID)
	assert.Equal(t, "2024-01-01T10:00:00Z", stored.ScheduledTime)
}

func TestInsert_DuplicatesAllowed(t *testing.T) {
	db := newTestDB(t)
	repo := NewScheduleTriggerRepository(db)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		err := repo.Insert(ctx, &entity.ScheduleTrigger{
			MongoID:       "65a1b2c3d4e5f60718293a4b",
			UserID:        "u1",
			ScheduledTime: "2024-01-01T10:00:00Z",
			CreatedAt:     time.Now().UTC(),
		})
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&entity.ScheduleTrigger{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestInsert_UnavailableStore(t *testing.T) {
	repo := NewScheduleTriggerRepository(nil)

	err := repo.Insert(context.Background(), &entity.ScheduleTrigger{MongoID: "x"})
	assert.ErrorIs(t, err, appErrors.ErrTriggerStore)
}
