package dto

import (
	"time"

	"silentblock/internal/domain/entity"
)

// CreateBlockRequest is the DTO for creating a new silent block.
// start_time is required; title and end_time are optional.
type CreateBlockRequest struct {
	Title     string `json:"title"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// CreateBlockResponse is returned on successful creation.
type CreateBlockResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

// BlockResponse is the DTO for sending block information to the client.
type BlockResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	UserEmail string     `json:"user_email"`
	Title     string     `json:"title"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Notified  bool       `json:"notified"`
	CreatedAt time.Time  `json:"created_at"`
}

// ListBlocksResponse wraps the blocks returned by the listing operation.
type ListBlocksResponse struct {
	Blocks []BlockResponse `json:"blocks"`
}

// ErrorResponse is the shape of every non-2xx body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ToBlockResponse converts an entity.Block to a BlockResponse DTO.
func ToBlockResponse(b *entity.Block) BlockResponse {
	return BlockResponse{
		ID:        b.ID.Hex(),
		UserID:    b.UserID,
		UserEmail: b.UserEmail,
		Title:     b.Title,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Notified:  b.Notified,
		CreatedAt: b.CreatedAt,
	}
}

// ToBlockResponseList converts a slice of entity.Block to BlockResponse DTOs.
func ToBlockResponseList(blocks []*entity.Block) []BlockResponse {
	list := make([]BlockResponse, len(blocks))
	for i, b := range blocks {
		list[i] = ToBlockResponse(b)
	}
	return list
}
