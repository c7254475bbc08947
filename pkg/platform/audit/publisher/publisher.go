// Package publisher fronts an audit.Store with optional asynchronous
// buffering so registry operations never wait on audit persistence.
package publisher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	audit "github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit/worker"
)

type Publisher struct {
	store  audit.Store
	logger *slog.Logger

	bufferSize int
	inbox      chan audit.Event
	done       chan struct{}
	closeOnce  sync.Once
	mu         sync.RWMutex
	closed     bool
}

type Option func(*Publisher)

// WithAsyncBuffer switches the publisher to asynchronous delivery through a
// buffered channel. Events emitted while the buffer is full are dropped.
func WithAsyncBuffer(size int) Option {
	return func(p *Publisher) {
		if size > 0 {
			p.bufferSize = size
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		if logger != nil {
			p.logger = logger
		}
	}
}

func NewPublisher(store audit.Store, opts ...Option) *Publisher {
	p := &Publisher{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	if p.bufferSize > 0 {
		p.inbox = make(chan audit.Event, p.bufferSize)
		p.done = make(chan struct{})
		w := worker.NewWorker(store, p.inbox, p.logger)
		go func() {
			defer close(p.done)
			_ = w.Run(context.Background())
		}()
	}
	return p
}

// Emit stamps the event and hands it to the store, or to the async buffer.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.Category == "" {
		event.Category = audit.AuditEvent(event.Action).Category()
	}
	if p.inbox == nil {
		return p.store.Append(ctx, event)
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		p.logger.WarnContext(ctx, "audit publisher closed, dropping event", "action", event.Action)
		return nil
	}
	select {
	case p.inbox <- event:
	default:
		p.logger.WarnContext(ctx, "audit buffer full, dropping event",
			"action", event.Action,
			"subject", event.Subject,
		)
	}
	return nil
}

func (p *Publisher) List(ctx context.Context, subject string) ([]audit.Event, error) {
	return p.store.ListBySubject(ctx, subject)
}

func (p *Publisher) ListRecent(ctx context.Context, limit int) ([]audit.Event, error) {
	return p.store.ListRecent(ctx, limit)
}

// Close stops accepting events and waits for buffered events to drain.
func (p *Publisher) Close() {
	p.closeOnce.Do(func() {
		if p.inbox == nil {
			return
		}
		p.mu.Lock()
		p.closed = true
		close(p.inbox)
		p.mu.Unlock()
		<-p.done
	})
}
