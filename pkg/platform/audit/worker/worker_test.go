package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	audit "github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit/store/memory"
)

type failingStore struct {
	*memory.InMemoryStore
	failOn string
}

func (f failingStore) Append(ctx context.Context, e audit.Event) error {
	if e.Subject == f.failOn {
		return errors.New("boom")
	}
	return f.InMemoryStore.Append(ctx, e)
}

func TestWorker_DrainsUntilInboxClosed(t *testing.T) {
	store := failingStore{InMemoryStore: memory.NewInMemoryStore(), failOn: "bad"}
	inbox := make(chan audit.Event, 3)
	inbox <- audit.Event{Subject: "0"}
	inbox <- audit.Event{Subject: "bad"}
	inbox <- audit.Event{Subject: "1"}
	close(inbox)

	w := NewWorker(store, inbox, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, w.Run(context.Background()))

	events, err := store.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, events, 2, "a failed append must not stop the worker")
}

func TestWorker_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w := NewWorker(memory.NewInMemoryStore(), make(chan audit.Event), nil)
	assert.ErrorIs(t, w.Run(ctx), context.Canceled)
}
