package service

import (
	"context"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// NotifierService delivers notifications for blocks. It backs the notifier
// process in both its one-shot (dispatched per creation) and sweep modes.
type NotifierService interface {
	// NotifyBlock delivers the notification for a single block, waiting until
	// the lead window opens if the block starts in the future.
	NotifyBlock(ctx context.Context, blockID string) error
	// Sweep delivers notifications for every block due within the lead window.
	Sweep(ctx context.Context)
	// StartSweep schedules Sweep on the cron scheduler at the given interval.
	StartSweep() error
	// Stop stops the sweep scheduler.
	Stop()
}

// PushSender is the delivery seam used by NotifierService.
type PushSender interface {
	PushMessages(to string, messages ...linebot.SendingMessage) error
}
