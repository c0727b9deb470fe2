package workers

import (
	"context"
	"log/slog"

	"pairup/contract"
)

// NotifierWorker drains the matcher's notification queue and pushes events
// through the registry. Keeping delivery out of the matcher means no
// registry lookup ever happens while a pool lock is held, and a slow client
// cannot stall a match.
type NotifierWorker struct {
	registry      contract.IRegistry
	notifications <-chan contract.Notification
	log           *slog.Logger
}

func NewNotifierWorker(registry contract.IRegistry, notifications <-chan contract.Notification, log *slog.Logger) *NotifierWorker {
	return &NotifierWorker{registry: registry, notifications: notifications, log: log}
}

func (w *NotifierWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping notifier worker")
			return nil
		case n, ok := <-w.notifications:
			if !ok {
				return nil
			}
			w.push(ctx, n)
		}
	}
}

// push is best-effort: an offline recipient still has its session, it will
// discover the match on its next status poll.
func (w *NotifierWorker) push(ctx context.Context, n contract.Notification) {
	sink, ok := w.registry.Lookup(n.To)
	if !ok {
		w.log.Debug("notification skipped, identity offline",
			"to", string(n.To), "kind", string(n.Event.EventKind()))
		return
	}
	if err := sink.Consume(ctx, n.Event); err != nil {
		w.log.Warn("notification delivery failed",
			"to", string(n.To), "kind", string(n.Event.EventKind()), "error", err)
	}
}
