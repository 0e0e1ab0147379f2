package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"silentblock/internal/domain/entity"
	"silentblock/internal/domain/repository"
	"silentblock/internal/infrastructure/scheduler"
	appErrors "silentblock/internal/pkg/errors"

	"github.com/line/line-bot-sdk-go/v7/linebot"
	"github.com/rs/zerolog"
)

type notifierService struct {
	blockRepo repository.BlockRepository
	sender    PushSender
	sched     *scheduler.Scheduler
	recipient string
	lead      time.Duration
	interval  time.Duration
	log       zerolog.Logger
}

// NewNotifierService creates a new instance of NotifierService implementation.
// sched may be nil when only one-shot delivery is needed.
func NewNotifierService(
	blockRepo repository.BlockRepository,
	sender PushSender,
	sched *scheduler.Scheduler,
	recipient string,
	lead, interval time.Duration,
	log zerolog.Logger,
) NotifierService {
	return &notifierService{
		blockRepo: blockRepo,
		sender:    sender,
		sched:     sched,
		recipient: recipient,
		lead:      lead,
		interval:  interval,
		log:       log,
	}
}

// NotifyBlock delivers the notification for a single block. A missing or
// already-notified block is not an error; the dispatch that spawned this
// process raced something else and there is nothing left to do.
func (s *notifierService) NotifyBlock(ctx context.Context, blockID string) error {
	block, err := s.blockRepo.FindByID(ctx, blockID)
	if err != nil {
		if errors.Is(err, appErrors.ErrBlockNotFound) {
			s.log.Warn().Str("block_id", blockID).Msg("block gone before notification")
			return nil
		}
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if block.Notified {
		s.log.Debug().Str("block_id", blockID).Msg("block already notified")
		return nil
	}

	if wait := time.Until(block.StartTime.Add(-s.lead)); wait > 0 {
		s.log.Info().Str("block_id", blockID).Dur("wait", wait).Msg("waiting for notification window")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	return s.deliver(ctx, block)
}

// Sweep delivers notifications for every block due within the lead window.
// Per-block failures are logged and left for the next tick.
func (s *notifierService) Sweep(ctx context.Context) {
	due, err := s.blockRepo.FindDue(ctx, time.Now().Add(s.lead))
	if err != nil {
		s.log.Error().Err(err).Msg("failed to scan for due blocks")
		return
	}
	if len(due) == 0 {
		return
	}
	s.log.Info().Int("due", len(due)).Msg("sweeping due blocks")

	for _, block := range due {
		if err := s.deliver(ctx, block); err != nil {
			s.log.Error().Err(err).Str("block_id", block.ID.Hex()).Msg("delivery failed, will retry next sweep")
		}
	}
}

// StartSweep schedules Sweep on the cron scheduler.
func (s *notifierService) StartSweep() error {
	if s.sched == nil {
		return fmt.Errorf("%w: sweep requires a scheduler", appErrors.ErrInternalServer)
	}
	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := s.sched.AddJob(spec, func() {
		s.Sweep(context.Background())
	}); err != nil {
		return err
	}
	return nil
}

// Stop stops the sweep scheduler.
func (s *notifierService) Stop() {
	if s.sched != nil {
		s.sched.Stop()
	}
}

func (s *notifierService) deliver(ctx context.Context, block *entity.Block) error {
	blockID := block.ID.Hex()
	text := fmt.Sprintf("%q starts at %s", block.Title, block.StartTime.Format("2006/01/02 15:04"))

	if err := s.sender.PushMessages(s.recipient, linebot.NewTextMessage(text)); err != nil {
		return fmt.Errorf("failed to push notification for block %s: %w", blockID, err)
	}
	s.log.Info().Str("block_id", blockID).Msg("notification delivered")

	if err := s.blockRepo.MarkNotified(ctx, blockID); err != nil {
		// Delivered but not recorded; the next sweep may re-notify.
		return fmt.Errorf("failed to record notification for block %s: %w", blockID, err)
	}
	return nil
}
