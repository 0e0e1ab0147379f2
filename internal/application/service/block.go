package service

import (
	"context"

	"silentblock/internal/application/dto"
	"silentblock/internal/domain/entity"
)

// BlockService defines the interface for block-related business logic.
type BlockService interface {
	// CreateBlock persists a new block for the principal and fans out the
	// notification side effects. It returns the ID of the new block.
	CreateBlock(ctx context.Context, principal *entity.Principal, req dto.CreateBlockRequest) (string, error)
	// ListBlocks retrieves a user's blocks ordered by start time ascending.
	ListBlocks(ctx context.Context, userID string) ([]dto.BlockResponse, error)
}

// Dispatcher launches the notification-delivery process for a block.
// Implementations must not block and must not surface launch failures.
type Dispatcher interface {
	Dispatch(blockID string)
}
