package service

import (
	"context"
	"fmt"
	"time"

	"silentblock/internal/application/dto"
	"silentblock/internal/domain/entity"
	"silentblock/internal/domain/repository"
	appErrors "silentblock/internal/pkg/errors"

	"github.com/rs/zerolog"
)

// startTimeLayouts approximate the lenient timestamp handling of the web
// clients this API serves; RFC 3339 is canonical.
var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

type blockService struct {
	blockRepo   repository.BlockRepository
	triggerRepo repository.ScheduleTriggerRepository
	dispatcher  Dispatcher
	log         zerolog.Logger
}

// NewBlockService creates a new instance of BlockService implementation.
func NewBlockService(
	blockRepo repository.BlockRepository,
	triggerRepo repository.ScheduleTriggerRepository,
	dispatcher Dispatcher,
	log zerolog.Logger,
) BlockService {
	return &blockService{
		blockRepo:   blockRepo,
		triggerRepo: triggerRepo,
		dispatcher:  dispatcher,
		log:         log,
	}
}

func parseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range startTimeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// CreateBlock persists a new block and fans out the notification side
// effects. The Mongo write is authoritative; the trigger insert and the
// dispatch are best-effort and never fail the call.
func (s *blockService) CreateBlock(ctx context.Context, principal *entity.Principal, req dto.CreateBlockRequest) (string, error) {
	if req.StartTime == "" {
		return "", appErrors.ErrStartTimeRequired
	}
	startTime, err := parseTimestamp(req.StartTime)
	if err != nil {
		return "", fmt.Errorf("%w: %q", appErrors.ErrInvalidStartTime, req.StartTime)
	}

	title := req.Title
	if title == "" {
		title = entity.DefaultTitle
	}

	var endTime *time.Time
	if req.EndTime != "" {
		if t, err := parseTimestamp(req.EndTime); err == nil {
			endTime = &t
		} else {
			// Stored as null rather than rejecting; end_time is informational.
			s.log.Warn().Str("end_time", req.EndTime).Str("user_id", principal.ID).
				Msg("unparseable end_time dropped")
		}
	}

	block := &entity.Block{
		UserID:    principal.ID,
		UserEmail: principal.Email,
		Title:     title,
		StartTime: startTime,
		EndTime:   endTime,
		Notified:  false,
		CreatedAt: time.Now().UTC(),
	}

	blockID, err := s.blockRepo.Create(ctx, block)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", principal.ID).Msg("failed to create block")
		return "", fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info().Str("block_id", blockID).Str("user_id", principal.ID).Msg("block created")

	trigger := &entity.ScheduleTrigger{
		MongoID:       blockID,
		UserID:        principal.ID,
		ScheduledTime: startTime.UTC().Format(time.RFC3339),
	}
	if err := s.triggerRepo.Insert(ctx, trigger); err != nil {
		// The trigger store is a convenience index, not the source of truth.
		s.log.Warn().Err(err).Str("block_id", blockID).Msg("trigger insert failed (non-fatal)")
	}

	s.dispatcher.Dispatch(blockID)

	return blockID, nil
}

// ListBlocks retrieves a user's blocks ordered by start time ascending.
func (s *blockService) ListBlocks(ctx context.Context, userID string) ([]dto.BlockResponse, error) {
	blocks, err := s.blockRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to list blocks")
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToBlockResponseList(blocks), nil
}
