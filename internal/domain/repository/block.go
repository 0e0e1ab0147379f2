package repository

import (
	"context"
	"time"

	"silentblock/internal/domain/entity"
)

// BlockRepository defines the interface for block data operations.
type BlockRepository interface {
	// Create persists a new block and returns its generated identifier.
	Create(ctx context.Context, block *entity.Block) (string, error)
	// FindByID retrieves a block by its identifier.
	FindByID(ctx context.Context, id string) (*entity.Block, error)
	// FindByUserID retrieves all blocks for a user, ordered by start time ascending.
	FindByUserID(ctx context.Context, userID string) ([]*entity.Block, error)
	// FindDue retrieves un-notified blocks whose start time is at or before the given time.
	FindDue(ctx context.Context, before time.Time) ([]*entity.Block, error)
	// MarkNotified flags a block as notified.
	MarkNotified(ctx context.Context, id string) error
}
