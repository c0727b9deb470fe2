package workers

import (
	"context"
	"log/slog"
	"pairup/contract"
	"pairup/domain"
	"pairup/domain/event"
	"pairup/mocks"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotifier_Pushes_To_Online_Recipient(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockIRegistry(ctrl)
	sink := mocks.NewMockEventSink(ctrl)
	notifications := make(chan contract.Notification, 1)
	worker := NewNotifierWorker(registry, notifications, slog.Default())

	to := domain.IdentityID(uuid.NewString())
	evt := event.MatchFound{SessionID: uuid.New(), Topic: "go-interview", At: time.Now().UTC()}

	delivered := make(chan struct{})
	registry.EXPECT().Lookup(to).Return(sink, true)
	sink.EXPECT().Consume(gomock.Any(), evt).DoAndReturn(
		func(ctx context.Context, e event.DomainEvent) error {
			close(delivered)
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	// When a notification is queued
	notifications <- contract.Notification{To: to, Event: evt}

	// Then the sink receives it
	select {
	case <-delivered:
	case <-time.After(500 * time.Millisecond):
		req.Fail("notification was never delivered")
	}
}

func TestNotifier_Skips_Offline_Recipient(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockIRegistry(ctrl)
	notifications := make(chan contract.Notification, 1)
	worker := NewNotifierWorker(registry, notifications, slog.Default())

	to := domain.IdentityID(uuid.NewString())
	looked := make(chan struct{})
	registry.EXPECT().Lookup(to).DoAndReturn(
		func(domain.IdentityID) (contract.EventSink, bool) {
			close(looked)
			return nil, false
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	// When the recipient is offline
	notifications <- contract.Notification{To: to, Event: event.MatchFound{SessionID: uuid.New()}}

	// Then the lookup happens and nothing else; no sink, no panic
	select {
	case <-looked:
	case <-time.After(500 * time.Millisecond):
		req.Fail("worker never drained the queue")
	}
}

func TestNotifier_Stops_When_Queue_Closes(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockIRegistry(ctrl)
	notifications := make(chan contract.Notification)
	worker := NewNotifierWorker(registry, notifications, slog.Default())

	done := make(chan error, 1)
	go func() { done <- worker.Run(context.Background()) }()

	close(notifications)

	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(500 * time.Millisecond):
		req.Fail("worker should return once the queue closes")
	}
}
