package workers

import (
	"context"
	"log/slog"
	"time"

	"pairup/contract"
	"pairup/domain"
)

// SweepWorker periodically reaps registry entries that saw no activity for
// longer than the idle threshold. A transport that died without a close
// frame otherwise leaves a connection the matcher believes is reachable.
type SweepWorker struct {
	registry contract.IRegistry
	relay    contract.IRelay
	pool     contract.IWaitingPool
	interval time.Duration
	idleFor  time.Duration
	log      *slog.Logger
}

func NewSweepWorker(registry contract.IRegistry, relay contract.IRelay, pool contract.IWaitingPool,
	interval, idleFor time.Duration, log *slog.Logger) *SweepWorker {
	return &SweepWorker{
		registry: registry, relay: relay, pool: pool,
		interval: interval, idleFor: idleFor, log: log,
	}
}

func (w *SweepWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping sweep worker")
			return nil
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *SweepWorker) sweep() {
	idle := w.registry.IdleIdentities(w.idleFor)
	for _, id := range idle {
		w.log.Info("reaping idle connection", "identity", string(id))
		w.reap(id)
	}
}

// reap behaves like a disconnect: room peers are told, waiting entries are
// removed. The sessions themselves stay untouched.
func (w *SweepWorker) reap(id domain.IdentityID) {
	w.relay.DropConnection(id)
	w.pool.Leave(id, nil)
	w.registry.Evict(id)
}
