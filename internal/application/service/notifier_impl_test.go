package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"silentblock/internal/domain/entity"

	"github.com/line/line-bot-sdk-go/v7/linebot"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeSender struct {
	err    error
	pushed []string
}

func (f *fakeSender) PushMessages(to string, messages ...linebot.SendingMessage) error {
	if f.err != nil {
		return f.err
	}
	f.pushed = append(f.pushed, to)
	return nil
}

func newNotifierForTest(repo *fakeBlockRepo, sender *fakeSender) NotifierService {
	return NewNotifierService(repo, sender, nil, "admin-user", 5*time.Minute, time.Minute, zerolog.Nop())
}

func dueBlock(start time.Time) *entity.Block {
	return &entity.Block{
		ID:        primitive.NewObjectID(),
		UserID:    "u1",
		Title:     entity.DefaultTitle,
		StartTime: start,
	}
}

func TestNotifyBlock_DeliversAndMarks(t *testing.T) {
	block := dueBlock(time.Now().Add(-time.Minute))
	repo := &fakeBlockRepo{blocks: []*entity.Block{block}}
	sender := &fakeSender{}
	notifier := newNotifierForTest(repo, sender)

	err := notifier.NotifyBlock(context.Background(), block.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, []string{"admin-user"}, sender.pushed)
	assert.True(t, block.Notified)
}

func TestNotifyBlock_MissingBlockIsNotAnError(t *testing.T) {
	repo := &fakeBlockRepo{}
	sender := &fakeSender{}
	notifier := newNotifierForTest(repo, sender)

	err := notifier.NotifyBlock(context.Background(), primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Empty(t, sender.pushed)
}

func TestNotifyBlock_AlreadyNotifiedSkips(t *testing.T) {
	block := dueBlock(time.Now().Add(-time.Minute))
	block.Notified = true
	repo := &fakeBlockRepo{blocks: []*entity.Block{block}}
	sender := &fakeSender{}
	notifier := newNotifierForTest(repo, sender)

	err := notifier.NotifyBlock(context.Background(), block.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, sender.pushed)
}

func TestSweep_DeliversDueBlocksOnly(t *testing.T) {
	due := dueBlock(time.Now().Add(-time.Minute))
	future := dueBlock(time.Now().Add(2 * time.Hour))
	repo := &fakeBlockRepo{blocks: []*entity.Block{due, future}}
	sender := &fakeSender{}
	notifier := newNotifierForTest(repo, sender)

	notifier.Sweep(context.Background())

	assert.Len(t, sender.pushed, 1)
	assert.True(t, due.Notified)
	assert.False(t, future.Notified)
}

func TestSweep_FailedDeliveryStaysDue(t *testing.T) {
	block := dueBlock(time.Now().Add(-time.Minute))
	repo := &fakeBlockRepo{blocks: []*entity.Block{block}}
	sender := &fakeSender{err: errors.New("push quota exceeded")}
	notifier := newNotifierForTest(repo, sender)

	notifier.Sweep(context.Background())

	assert.False(t, block.Notified, "failed delivery must leave the block for the next sweep")
}

func TestStartSweep_RequiresScheduler(t *testing.T) {
	notifier := newNotifierForTest(&fakeBlockRepo{}, &fakeSender{})
	assert.Error(t, notifier.StartSweep())
}
