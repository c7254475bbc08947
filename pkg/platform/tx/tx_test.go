package tx

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	_, ok := From(context.Background())
	assert.False(t, ok)

	ctx := WithTx(context.Background(), nil)
	_, ok = From(ctx)
	assert.False(t, ok, "nil tx is not stored")

	tx := &sql.Tx{}
	got, ok := From(WithTx(context.Background(), tx))
	assert.True(t, ok)
	assert.Same(t, tx, got)
}

func TestRunInTx_JoinsExistingTransaction(t *testing.T) {
	outer := &sql.Tx{}
	ctx := WithTx(context.Background(), outer)

	var seen *sql.Tx
	err := RunInTx(ctx, nil, func(ctx context.Context) error {
		seen, _ = From(ctx)
		return nil
	})
	assert.NoError(t, err)
	assert.Same(t, outer, seen, "nested call reuses the outer transaction without touching db")
}
