package workers

import (
	"context"
	"log/slog"
	"pairup/domain"
	"pairup/mocks"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSweep_Reaps_Idle_Identity(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockIRegistry(ctrl)
	relay := mocks.NewMockIRelay(ctrl)
	pool := mocks.NewMockIWaitingPool(ctrl)

	idle := domain.IdentityID(uuid.NewString())
	reaped := make(chan struct{})

	registry.EXPECT().IdleIdentities(time.Minute).Return([]domain.IdentityID{idle}).MinTimes(1)
	relay.EXPECT().DropConnection(idle).MinTimes(1)
	pool.EXPECT().Leave(idle, gomock.Nil()).Return(1).MinTimes(1)
	registry.EXPECT().Evict(idle).DoAndReturn(func(domain.IdentityID) bool {
		select {
		case <-reaped:
		default:
			close(reaped)
		}
		return true
	}).MinTimes(1)

	worker := NewSweepWorker(registry, relay, pool, 10*time.Millisecond, time.Minute, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	// Then one sweep cycle walks disconnect, pool cleanup and eviction
	select {
	case <-reaped:
	case <-time.After(500 * time.Millisecond):
		req.Fail("idle identity was never reaped")
	}
}

func TestSweep_Leaves_Active_Identities_Alone(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockIRegistry(ctrl)
	relay := mocks.NewMockIRelay(ctrl)
	pool := mocks.NewMockIWaitingPool(ctrl)

	swept := make(chan struct{})
	registry.EXPECT().IdleIdentities(time.Minute).DoAndReturn(
		func(time.Duration) []domain.IdentityID {
			select {
			case <-swept:
			default:
				close(swept)
			}
			return nil
		}).MinTimes(1)

	worker := NewSweepWorker(registry, relay, pool, 10*time.Millisecond, time.Minute, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	// When nothing is idle, no disconnect or eviction ever fires
	select {
	case <-swept:
	case <-time.After(500 * time.Millisecond):
		req.Fail("sweep never ran")
	}
}
