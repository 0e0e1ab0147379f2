package postgres

import (
	"context"
	"fmt"
	"time"

	"silentblock/internal/domain/entity"
	"silentblock/internal/domain/repository"
	appErrors "silentblock/internal/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type scheduleTriggerRepository struct {
	db *gorm.DB
}

// NewScheduleTriggerRepository creates a new instance of
// ScheduleTriggerRepository. A nil db yields a repository whose inserts fail
// with ErrTriggerStore, so callers keep their best-effort contract even when
// the store was never reachable.
func NewScheduleTriggerRepository(db *gorm.DB) repository.ScheduleTriggerRepository {
	return &scheduleTriggerRepository{db: db}
}

// Insert writes a new trigger row. Row ids are generated client-side; the
// Supabase table carries uuid primary keys.
func (r *scheduleTriggerRepository) Insert(ctx context.Context, trigger *entity.ScheduleTrigger) error {
	if r.db == nil {
		return appErrors.ErrTriggerStore
	}
	if trigger.ID == "" {
		trigger.ID = uuid.NewString()
	}
	if trigger.CreatedAt.IsZero() {
		trigger.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(trigger).Error; err != nil {
		return fmt.Errorf("failed to insert trigger for block %s: %w", trigger.MongoID, err)
	}
	return nil
}
