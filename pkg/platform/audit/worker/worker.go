package worker

import (
	"context"
	"log/slog"

	audit "github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit"
)

// Worker drains an inbox of audit events into a store. A failed append is
// logged and the worker moves on; audit delivery never blocks the registry.
type Worker struct {
	store  audit.Store
	inbox  <-chan audit.Event
	logger *slog.Logger
}

func NewWorker(store audit.Store, inbox <-chan audit.Event, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{store: store, inbox: inbox, logger: logger}
}

// Run persists events until the inbox is closed and drained, or ctx is done.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.inbox:
			if !ok {
				return nil
			}
			if err := w.store.Append(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "failed to persist audit event",
					"action", event.Action,
					"subject", event.Subject,
					"error", err,
				)
			}
		}
	}
}
