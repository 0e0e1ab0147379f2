package repository

import (
	"context"

	"silentblock/internal/domain/entity"
)

// ScheduleTriggerRepository defines the interface for the relational trigger
// store. Inserts are best-effort; callers decide whether a failure matters.
type ScheduleTriggerRepository interface {
	// Insert writes a new trigger row.
	Insert(ctx context.Context, trigger *entity.ScheduleTrigger) error
}
